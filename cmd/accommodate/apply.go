package main

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/accommodate/internal/chrome"
	"github.com/alexisbeaulieu97/accommodate/internal/dom"
	"github.com/alexisbeaulieu97/accommodate/internal/engine"
	"github.com/alexisbeaulieu97/accommodate/internal/settings"
	"github.com/alexisbeaulieu97/accommodate/pkg/diff"
)

type applyOptions struct {
	InputPath  string
	OutputPath string
	Diff       bool
	Trigger    bool
}

func newApplyCmd(root *rootFlags) *cobra.Command {
	opts := applyOptions{}

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Apply the saved accommodations to an HTML document",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateApplyOptions(opts); err != nil {
				return err
			}

			ctx, app, err := newAppContext(cmd, root, "apply")
			if err != nil {
				return err
			}
			defer app.Close()

			return runApply(ctx, cmd, app, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.InputPath, "in", "i", "", "HTML document to accommodate")
	cmd.Flags().StringVarP(&opts.OutputPath, "out", "o", "", "Write the result here instead of stdout")
	cmd.Flags().BoolVar(&opts.Diff, "diff", false, "Print a unified diff instead of the document")
	cmd.Flags().BoolVar(&opts.Trigger, "trigger", false, "Include the accessibility options trigger button")
	cmd.MarkFlagRequired("in") //nolint:errcheck

	return cmd
}

func runApply(ctx context.Context, cmd *cobra.Command, app *AppContext, opts applyOptions) error {
	original, err := os.ReadFile(opts.InputPath)
	if err != nil {
		return newCommandError("apply", "reading "+opts.InputPath, err, "Check the file permissions and try again.")
	}

	doc, err := dom.Parse(bytes.NewReader(original))
	if err != nil {
		return newCommandError("apply", "parsing "+opts.InputPath, err, "Make sure the input is an HTML document.")
	}
	before := doc.String()

	// The document gets its own store so the rendering cannot persist anything.
	snapshot := settings.NewStore(app.Store.Get())
	eng := engine.Default(snapshot, doc, app.accommodationOptions(),
		engine.WithContext(ctx),
		engine.WithLogger(app.Logger),
		engine.WithMetrics(app.Metrics),
		engine.WithPublisher(app.Publisher),
	)
	eng.Mount()
	if opts.Trigger {
		chrome.RenderTrigger(doc, snapshot.Get(), app.Translator)
	}
	after := doc.String()

	for _, s := range eng.Statuses() {
		app.Logger.Debug("accommodation applied", "accommodation", s.Accommodation, "value", s.Value)
	}

	out := after
	if opts.Diff {
		out = diff.Unified([]byte(before), []byte(after), opts.InputPath, opts.InputPath+" (accommodated)")
	}

	if opts.OutputPath == "" {
		_, err = fmt.Fprint(cmd.OutOrStdout(), out)
		return err
	}
	if err := os.WriteFile(opts.OutputPath, []byte(out), 0o644); err != nil {
		return newCommandError("apply", "writing "+opts.OutputPath, err, "Check that the output directory exists and is writable.")
	}
	app.Logger.Info("document written", "path", opts.OutputPath)
	return nil
}
