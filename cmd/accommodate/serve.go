package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/accommodate/internal/chrome"
	"github.com/alexisbeaulieu97/accommodate/internal/dom"
	"github.com/alexisbeaulieu97/accommodate/internal/server"
)

type serveOptions struct {
	addr string
	root string
}

func newServeCmd(root *rootFlags) *cobra.Command {
	opts := &serveOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the settings API and accommodated pages over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, app, err := newAppContext(cmd, root, "serve")
			if err != nil {
				return err
			}
			defer app.Close()

			addr := app.Config.Server.Addr
			if opts.addr != "" {
				addr = opts.addr
			}
			pages := app.Config.Server.Root
			if opts.root != "" {
				pages = opts.root
			}

			ch := chrome.NewController(app.Store, dom.New(), app.Translator, app.Logger)
			defer ch.Close()

			srv := server.New(server.Options{
				Store:          app.Store,
				Profiles:       app.Profiles,
				Chrome:         ch,
				Metrics:        app.Metrics,
				Logger:         app.Logger,
				Root:           pages,
				Locale:         app.Config.Locale,
				Accommodations: app.accommodationOptions(),
			})

			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := srv.ListenAndServe(ctx, addr); err != nil {
				return newCommandError("serve", "listening on "+addr, err, "Pick a free address with --addr.")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", "", "Listen address (overrides server.addr)")
	cmd.Flags().StringVar(&opts.root, "root", "", "Directory of HTML pages served under /pages (overrides server.root)")

	return cmd
}
