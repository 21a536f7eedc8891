// Package host defines the capabilities the profile control consumes from
// the process that owns profile storage and file-system access.
package host

import (
	"context"
	"log/slog"
	"time"
)

// Lister returns the profile names the host currently offers, in display order.
type Lister interface {
	ListProfiles(ctx context.Context) ([]string, error)
}

// Exporter writes one named profile to a destination path.
type Exporter interface {
	ExportProfile(ctx context.Context, name, dest string) error
}

// SaveDialog asks the user for a destination path. It may block until the
// user answers. ok is false when no path was chosen; failures of the dialog
// itself are reported the same way.
type SaveDialog interface {
	ChooseSavePath(ctx context.Context, suggested, title string) (path string, ok bool)
}

// Profiles is a host that can both list and export profiles.
type Profiles interface {
	Lister
	Exporter
}

// WithLogging wraps p so that every call is logged at debug level and every
// failure at warn level.
func WithLogging(p Profiles, logger *slog.Logger) Profiles {
	return &loggedProfiles{next: p, logger: logger}
}

type loggedProfiles struct {
	next   Profiles
	logger *slog.Logger
}

func (l *loggedProfiles) ListProfiles(ctx context.Context) ([]string, error) {
	start := time.Now()
	names, err := l.next.ListProfiles(ctx)
	if err != nil {
		l.logger.WarnContext(ctx, "list profiles failed", "err", err, "took", time.Since(start))
		return nil, err
	}
	l.logger.DebugContext(ctx, "listed profiles", "count", len(names), "took", time.Since(start))
	return names, nil
}

func (l *loggedProfiles) ExportProfile(ctx context.Context, name, dest string) error {
	start := time.Now()
	err := l.next.ExportProfile(ctx, name, dest)
	if err != nil {
		l.logger.WarnContext(ctx, "export profile failed", "profile", name, "dest", dest, "err", err)
		return err
	}
	l.logger.InfoContext(ctx, "exported profile", "profile", name, "dest", dest, "took", time.Since(start))
	return nil
}
