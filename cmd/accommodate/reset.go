package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newResetCmd(root *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Restore every accommodation to its default",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, app, err := newAppContext(cmd, root, "reset")
			if err != nil {
				return err
			}
			defer app.Close()

			app.Store.Reset()
			fmt.Fprintln(cmd.OutOrStdout(), "settings reset to defaults")
			return nil
		},
	}
}
