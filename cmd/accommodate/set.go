package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/accommodate/internal/settings"
)

func newSetCmd(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <path> <value>",
		Short: "Change one accommodation setting",
		Long: `Change one setting addressed by its dotted path, for example

  accommodate set colors.contrast dark
  accommodate set content.readableFont true

Run 'accommodate show --paths' to list every path.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, app, err := newAppContext(cmd, root, "set")
			if err != nil {
				return err
			}
			defer app.Close()
			return runSet(cmd, app, args[0], args[1])
		},
	}

	return cmd
}

func runSet(cmd *cobra.Command, app *AppContext, path, raw string) error {
	value, err := settings.ParseValue(path, raw)
	if err != nil {
		return newCommandError("set", fmt.Sprintf("parsing %s", path), err, "Run 'accommodate show --paths' to view valid paths.")
	}
	if err := app.Profiles.Update(path, value); err != nil {
		return newCommandError("set", fmt.Sprintf("updating %s", path), err, "Check the allowed values for this setting.")
	}

	v, _ := settings.Lookup(app.Store.Get(), path)
	fmt.Fprintf(cmd.OutOrStdout(), "%s=%v\n", path, v)
	return nil
}
