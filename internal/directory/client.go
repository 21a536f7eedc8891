// Package directory keeps the list of available filament profiles and the
// current selection in sync with the host.
package directory

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/ruminaider/filament-export/internal/host"
	"github.com/ruminaider/filament-export/internal/state"
)

// ErrUnknownProfile is returned by Select for names not in the current list.
var ErrUnknownProfile = errors.New("unknown profile")

// Client fetches profile names from the host and maintains the selection.
type Client struct {
	lister host.Lister
	store  *state.Store
	logger *slog.Logger
}

// NewClient returns a Client writing to store. A nil logger discards logs.
func NewClient(lister host.Lister, store *state.Store, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Client{lister: lister, store: store, logger: logger}
}

// Refresh replaces the profile list with the host's current listing. The
// selection is kept if it is still listed, otherwise it moves to the first
// profile, or is cleared when the list is empty. On failure the list and
// selection are left as they were.
func (c *Client) Refresh(ctx context.Context) error {
	names, err := c.lister.ListProfiles(ctx)
	if err != nil {
		c.logger.WarnContext(ctx, "refresh failed, keeping previous profile list", "err", err)
		return fmt.Errorf("listing profiles: %w", err)
	}

	names = slices.Clone(names)
	var selected string
	var hasSelection bool
	c.store.Update(func(s *state.Snapshot) {
		s.Profiles = names
		if !s.HasSelection || !slices.Contains(names, s.Selected) {
			s.Selected, s.HasSelection = "", false
			if len(names) > 0 {
				s.Selected, s.HasSelection = names[0], true
			}
		}
		selected, hasSelection = s.Selected, s.HasSelection
	})

	c.logger.DebugContext(ctx, "profiles refreshed",
		"count", len(names), "selected", selected, "has_selection", hasSelection)
	return nil
}

// Select makes name the current selection. name must be in the current list.
func (c *Client) Select(name string) error {
	var err error
	c.store.Update(func(s *state.Snapshot) {
		if !slices.Contains(s.Profiles, name) {
			err = fmt.Errorf("%w: %q", ErrUnknownProfile, name)
			return
		}
		s.Selected, s.HasSelection = name, true
	})
	return err
}

// Profiles returns the current profile list.
func (c *Client) Profiles() []string {
	return c.store.Snapshot().Profiles
}

// Selection returns the current selection, if any.
func (c *Client) Selection() (string, bool) {
	return c.store.Snapshot().Selection()
}
