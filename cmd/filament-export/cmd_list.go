package main

import (
	"fmt"

	"github.com/ruminaider/filament-export/internal/profiles"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available filament profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(false)
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.dir.Refresh(cmd.Context()); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		names := a.dir.Profiles()
		if len(names) == 0 {
			fmt.Fprintln(out, "No filament profiles found.")
			return nil
		}

		selected, _ := a.dir.Selection()
		for _, name := range names {
			marker := " "
			if name == selected {
				marker = "*"
			}

			p, err := a.local.ReadProfile(name)
			if err != nil {
				// Listed but unreadable; show the name so the user can fix it.
				a.logger.Warn("reading profile", "profile", name, "err", err)
				fmt.Fprintf(out, "%s %s: (unreadable)\n", marker, name)
				continue
			}
			fmt.Fprintf(out, "%s %s: %s\n", marker, name, profiles.ProfileSummary(p))
		}
		return nil
	},
}
