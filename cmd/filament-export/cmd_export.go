package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/x/term"
	"github.com/ruminaider/filament-export/internal/directory"
	"github.com/ruminaider/filament-export/internal/export"
	"github.com/ruminaider/filament-export/internal/host"
	"github.com/spf13/cobra"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export [name]",
	Short: "Export a filament profile as JSON",
	Long: `Export a filament profile as JSON. Without a name the first profile is used.
Without --out you are asked for the destination, prefilled with "<export_dir>/<name> profile.json".`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	a, err := newApp(false)
	if err != nil {
		return err
	}
	defer a.Close()

	ctx := cmd.Context()
	if err := a.dir.Refresh(ctx); err != nil {
		return err
	}

	if len(args) == 1 {
		if err := a.dir.Select(args[0]); err != nil {
			if !errors.Is(err, directory.ErrUnknownProfile) {
				return err
			}
			available := strings.Join(a.dir.Profiles(), ", ")
			if available == "" {
				return fmt.Errorf("profile %q not found (no profiles in %s)", args[0], a.cfg.ProfilesDir)
			}
			return fmt.Errorf("profile %q not found (available: %s)", args[0], available)
		}
	}
	if _, ok := a.dir.Selection(); !ok {
		return fmt.Errorf("no filament profiles found in %s", a.cfg.ProfilesDir)
	}

	var dialog host.SaveDialog
	switch {
	case exportOut != "":
		dialog = fixedPathDialog{path: exportOut}
	case term.IsTerminal(os.Stdin.Fd()):
		dialog = promptDialog{dir: a.cfg.ExportDir, logger: a.logger}
	default:
		return errors.New("--out is required when stdin is not a terminal")
	}

	res, err := a.controller(dialog).ExportSelected(ctx)
	if err != nil {
		return err
	}
	if res.Outcome == export.OutcomeExported {
		fmt.Fprintf(cmd.OutOrStdout(), "Exported %q to %s\n", res.Request.Profile, res.Request.Destination)
	}
	return nil
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Destination file (skips the prompt); a directory gets the default file name")
}
