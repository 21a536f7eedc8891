package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

var (
	configPath  string
	profilesDir string
	verbose     bool
)

var rootCmd = &cobra.Command{
	Use:   "filament-export",
	Short: "Pick a filament profile and export it to a file",
	Long:  "filament-export lists the filament profiles in a profiles directory and exports the selected one as JSON to a path you choose.",
	RunE:  runDefault,
	// Errors are printed once by main.
	SilenceErrors: true,
	SilenceUsage:  true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "filament-export %s\n", version)
	},
}

// runDefault opens the terminal UI, or falls back to list when stdin is not
// a terminal (piping, CI, scripts, etc.).
func runDefault(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(os.Stdin.Fd()) {
		return listCmd.RunE(cmd, args)
	}
	return uiCmd.RunE(cmd, args)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.filament-export/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&profilesDir, "profiles-dir", "", "Directory holding <name>.yaml profiles (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log at debug level")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(uiCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
