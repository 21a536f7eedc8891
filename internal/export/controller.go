// Package export drives the save-and-export interaction for the selected
// filament profile.
package export

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ruminaider/filament-export/internal/host"
	"github.com/ruminaider/filament-export/internal/state"
	"github.com/tevino/abool"
)

// SuggestedFilename is the file name offered in the save dialog for a profile.
func SuggestedFilename(profile string) string {
	return profile + " profile.json"
}

// Request is one export: which profile goes to which path.
type Request struct {
	Profile     string
	Destination string
}

// Outcome classifies how an ExportSelected call ended.
type Outcome int

const (
	OutcomeSkipped   Outcome = iota // no selection, or another export running
	OutcomeCancelled                // save dialog closed without a path
	OutcomeExported
	OutcomeFailed
)

// String returns a short name for logs and status lines.
func (o Outcome) String() string {
	switch o {
	case OutcomeSkipped:
		return "skipped"
	case OutcomeCancelled:
		return "cancelled"
	case OutcomeExported:
		return "exported"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Result describes a finished ExportSelected call. Request is set once a
// path has been chosen.
type Result struct {
	Outcome Outcome
	Request Request
}

// Controller runs export interactions. At most one runs at a time.
type Controller struct {
	store    *state.Store
	dialog   host.SaveDialog
	exporter host.Exporter
	title    string
	logger   *slog.Logger
	busy     *abool.AtomicBool
}

// NewController returns a Controller reading the selection from store. title
// is passed to the save dialog. A nil logger discards logs.
func NewController(store *state.Store, dialog host.SaveDialog, exporter host.Exporter, title string, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Controller{
		store:    store,
		dialog:   dialog,
		exporter: exporter,
		title:    title,
		logger:   logger,
		busy:     abool.New(),
	}
}

// Busy reports whether an export interaction is in flight.
func (c *Controller) Busy() bool {
	return c.busy.IsSet()
}

// ExportSelected asks the save dialog for a destination and exports the
// selected profile there. Without a selection, or while another export is
// running, it does nothing. Closing the dialog without a path is a normal
// cancellation and returns a nil error. Export failures are returned; the
// profile list and selection are never modified.
func (c *Controller) ExportSelected(ctx context.Context) (Result, error) {
	name, ok := c.store.Snapshot().Selection()
	if !ok {
		c.logger.DebugContext(ctx, "export skipped, nothing selected")
		return Result{Outcome: OutcomeSkipped}, nil
	}
	if !c.busy.SetToIf(false, true) {
		c.logger.DebugContext(ctx, "export skipped, another export in flight", "profile", name)
		return Result{Outcome: OutcomeSkipped}, nil
	}
	defer func() {
		c.setPhase(state.PhaseIdle)
		c.busy.UnSet()
	}()

	c.setPhase(state.PhaseAwaitingPath)
	dest, ok := c.dialog.ChooseSavePath(ctx, SuggestedFilename(name), c.title)
	if !ok || dest == "" {
		c.logger.DebugContext(ctx, "export cancelled", "profile", name)
		return Result{Outcome: OutcomeCancelled}, nil
	}

	req := Request{Profile: name, Destination: dest}
	c.setPhase(state.PhaseAwaitingExportResult)
	if err := c.exporter.ExportProfile(ctx, req.Profile, req.Destination); err != nil {
		return Result{Outcome: OutcomeFailed, Request: req}, fmt.Errorf("exporting profile %q: %w", name, err)
	}

	return Result{Outcome: OutcomeExported, Request: req}, nil
}

func (c *Controller) setPhase(p state.Phase) {
	c.store.Update(func(s *state.Snapshot) {
		s.Phase = p
	})
}
