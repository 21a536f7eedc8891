package main

import (
	"context"
	"errors"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/term"
	"github.com/ruminaider/filament-export/cmd/filament-export/tui"
	"github.com/ruminaider/filament-export/internal/watch"
	"github.com/spf13/cobra"
)

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Open the interactive profile selector",
	RunE:  runUI,
}

func runUI(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(os.Stdin.Fd()) {
		return errors.New("the interactive selector needs a terminal; use list or export --out")
	}

	a, err := newApp(true)
	if err != nil {
		return err
	}
	defer a.Close()

	// Cancelled on exit so a save dialog or listener still waiting on the
	// UI returns.
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	var changes <-chan struct{}
	if a.cfg.WatchEnabled() {
		w, err := watch.New(a.cfg.ProfilesDir, watch.DefaultDebounce, a.logger)
		if err != nil {
			a.logger.Warn("not watching profiles directory", "dir", a.cfg.ProfilesDir, "err", err)
		} else {
			defer w.Close()
			changes = w.Changes()
		}
	}

	dialog := tui.NewDialog()
	model := tui.New(tui.Options{
		Context:    ctx,
		Store:      a.store,
		Directory:  a.dir,
		Controller: a.controller(dialog),
		Dialog:     dialog,
		ExportDir:  a.cfg.ExportDir,
		Watch:      changes,
		Logger:     a.logger,
	})

	a.logger.Info("ui started", "profiles_dir", a.cfg.ProfilesDir)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	}
	return nil
}
