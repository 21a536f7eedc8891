package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/ruminaider/filament-export/internal/config"
	"github.com/ruminaider/filament-export/internal/directory"
	"github.com/ruminaider/filament-export/internal/export"
	"github.com/ruminaider/filament-export/internal/host"
	"github.com/ruminaider/filament-export/internal/logging"
	"github.com/ruminaider/filament-export/internal/paths"
	"github.com/ruminaider/filament-export/internal/profiles"
	"github.com/ruminaider/filament-export/internal/state"
)

// app holds the pieces every command needs: config, logger, the local
// profile host and the shared client state.
type app struct {
	cfg    config.Config
	logger *slog.Logger
	closer io.Closer

	local *profiles.Store
	host  host.Profiles
	store *state.Store
	dir   *directory.Client
}

// newApp loads config and wires the profile host. With logToFile the logger
// appends to ~/.filament-export/filament-export.log instead of stderr, so a
// full-screen UI is not drawn over.
func newApp(logToFile bool) (*app, error) {
	path := configPath
	if path == "" {
		path = paths.ConfigFile()
	}
	cfg, err := config.Load(paths.Expand(path))
	if err != nil {
		return nil, err
	}
	if profilesDir != "" {
		cfg.ProfilesDir = paths.Expand(profilesDir)
	}

	level, levelErr := logging.ParseLevel(cfg.LogLevel)
	if verbose {
		level = slog.LevelDebug
	}

	var logger *slog.Logger
	var closer io.Closer
	if logToFile {
		logger, closer, err = logging.OpenFile(paths.LogFile(), level)
		if err != nil {
			return nil, err
		}
	} else {
		logger = logging.New(os.Stderr, level)
	}
	if levelErr != nil {
		logger.Warn("invalid log_level in config, using info", "err", levelErr)
	}
	logger.Debug("config loaded", "path", path, "profiles_dir", cfg.ProfilesDir, "export_dir", cfg.ExportDir)

	local := profiles.NewStore(cfg.ProfilesDir)
	h := host.WithLogging(local, logger)
	store := state.NewStore()

	return &app{
		cfg:    cfg,
		logger: logger,
		closer: closer,
		local:  local,
		host:   h,
		store:  store,
		dir:    directory.NewClient(h, store, logger),
	}, nil
}

// controller returns an export controller using dialog for the destination.
func (a *app) controller(dialog host.SaveDialog) *export.Controller {
	return export.NewController(a.store, dialog, a.host, a.cfg.DialogTitle, a.logger)
}

// Close releases the log file, if one was opened.
func (a *app) Close() error {
	if a.closer == nil {
		return nil
	}
	return a.closer.Close()
}
