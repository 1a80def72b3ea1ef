package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/accommodate/internal/settings"
)

type showOptions struct {
	jsonOutput bool
	paths      bool
}

func newShowCmd(root *rootFlags) *cobra.Command {
	opts := &showOptions{}

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the saved accommodation settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, app, err := newAppContext(cmd, root, "show")
			if err != nil {
				return err
			}
			defer app.Close()
			return runShow(cmd, app.Store.Get(), opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output settings as JSON")
	cmd.Flags().BoolVar(&opts.paths, "paths", false, "List every settings path with its value")

	return cmd
}

func runShow(cmd *cobra.Command, tree settings.Tree, opts *showOptions) error {
	out := cmd.OutOrStdout()

	switch {
	case opts.paths:
		for _, path := range settings.Paths() {
			v, err := settings.Lookup(tree, path)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s=%v\n", path, v)
		}
		return nil
	case opts.jsonOutput:
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(tree)
	default:
		encoder := yaml.NewEncoder(out)
		encoder.SetIndent(2)
		if err := encoder.Encode(tree); err != nil {
			return err
		}
		return encoder.Close()
	}
}
