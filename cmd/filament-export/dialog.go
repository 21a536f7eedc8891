package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/ruminaider/filament-export/internal/paths"
)

// fixedPathDialog answers every save request with the --out path. A path
// naming an existing directory gets the suggested file name appended.
type fixedPathDialog struct {
	path string
}

func (d fixedPathDialog) ChooseSavePath(_ context.Context, suggested, _ string) (string, bool) {
	p := strings.TrimSpace(d.path)
	if p == "" {
		return "", false
	}
	p = paths.Resolve(p)
	if info, err := os.Stat(p); err == nil && info.IsDir() {
		p = filepath.Join(p, suggested)
	}
	return p, true
}

// promptDialog asks for the destination with a huh input, prefilled with
// the suggested name inside dir. An existing file is only replaced after a
// confirmation. Esc and Ctrl+C cancel.
type promptDialog struct {
	dir    string
	logger *slog.Logger
}

func (d promptDialog) ChooseSavePath(ctx context.Context, suggested, title string) (string, bool) {
	path := suggestedPath(d.dir, suggested)
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				Description("Destination file").
				Value(&path).
				Validate(validateDestination),
		),
	).RunWithContext(ctx)
	if err != nil {
		d.dialogFailed(err)
		return "", false
	}
	path = paths.Resolve(strings.TrimSpace(path))

	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		overwrite := false
		err := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("%s already exists. Overwrite?", path)).
					Affirmative("Overwrite").
					Negative("Cancel").
					Value(&overwrite),
			),
		).RunWithContext(ctx)
		if err != nil {
			d.dialogFailed(err)
			return "", false
		}
		if !overwrite {
			return "", false
		}
	}
	return path, true
}

func (d promptDialog) dialogFailed(err error) {
	if errors.Is(err, huh.ErrUserAborted) || errors.Is(err, context.Canceled) {
		return
	}
	if d.logger != nil {
		d.logger.Warn("save dialog failed", "err", err)
	}
}

// suggestedPath joins the suggested file name onto dir, when one is set.
func suggestedPath(dir, suggested string) string {
	if dir == "" {
		return suggested
	}
	return filepath.Join(paths.Expand(dir), suggested)
}

func validateDestination(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return errors.New("destination is required")
	}
	if info, err := os.Stat(paths.Resolve(s)); err == nil && info.IsDir() {
		return errors.New("destination is a directory")
	}
	return nil
}
