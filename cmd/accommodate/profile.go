package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/accommodate/internal/profiles"
)

type profileOptions struct {
	off bool
}

func newProfileCmd(root *rootFlags) *cobra.Command {
	opts := &profileOptions{}

	cmd := &cobra.Command{
		Use:       "profile <name>",
		Short:     "Activate or deactivate an accommodation profile",
		Long:      "Activate a profile and its preset accommodations. Available profiles: " + strings.Join(profiles.Names(), ", ") + ".",
		Args:      cobra.ExactArgs(1),
		ValidArgs: profiles.Names(),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, app, err := newAppContext(cmd, root, "profile")
			if err != nil {
				return err
			}
			defer app.Close()

			if err := app.Profiles.ActivateProfile(args[0], !opts.off); err != nil {
				return newCommandError("profile", fmt.Sprintf("switching profile %q", args[0]), err,
					"Use one of: "+strings.Join(profiles.Names(), ", ")+".")
			}

			active := app.Profiles.Active()
			if active == "" {
				active = "none"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "active profile: %s\n", active)
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.off, "off", false, "Deactivate the profile instead")

	return cmd
}
