package main

import (
	"errors"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/accommodate/internal/chrome"
	"github.com/alexisbeaulieu97/accommodate/internal/dom"
	"github.com/alexisbeaulieu97/accommodate/internal/tui"
)

var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

func newPanelCmd(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "panel",
		Short: "Open the interactive accommodation settings panel",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isTerminal() {
				return newCommandError("panel", "starting the settings panel",
					errors.New("stdin and stdout must be a terminal"),
					"Use 'accommodate set' or 'accommodate profile' in scripts.")
			}

			_, app, err := newAppContext(cmd, root, "panel")
			if err != nil {
				return err
			}
			defer app.Close()

			doc := dom.New()
			ch := chrome.NewController(app.Store, doc, app.Translator, app.Logger)
			defer ch.Close()

			app.Logger.Info("launching settings panel")
			model := tui.NewModel(tui.Deps{
				Store:      app.Store,
				Profiles:   app.Profiles,
				Chrome:     ch,
				Doc:        doc,
				Translator: app.Translator,
			})
			return tui.Run(model, tea.WithAltScreen())
		},
	}

	return cmd
}
