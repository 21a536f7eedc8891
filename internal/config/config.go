package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ruminaider/filament-export/internal/paths"
	"go.yaml.in/yaml/v3"
)

// DefaultDialogTitle is shown on the save dialog when the config leaves it empty.
const DefaultDialogTitle = "Export filament profile"

// Config represents ~/.filament-export/config.yaml.
type Config struct {
	ProfilesDir string `yaml:"profiles_dir,omitempty"`
	ExportDir   string `yaml:"export_dir,omitempty"`
	DialogTitle string `yaml:"dialog_title,omitempty"`
	LogLevel    string `yaml:"log_level,omitempty"`
	Watch       *bool  `yaml:"watch,omitempty"`
}

// Default returns a Config with every field set to its default.
func Default() Config {
	watch := true
	return Config{
		ProfilesDir: paths.ProfilesDir(),
		DialogTitle: DefaultDialogTitle,
		LogLevel:    "info",
		Watch:       &watch,
	}
}

// Parse parses config.yaml bytes into a Config. Unset fields take their
// defaults and "~" in directory fields is expanded.
func Parse(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	return cfg.withDefaults(), nil
}

// Marshal serializes a Config to YAML bytes.
func Marshal(cfg Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// Load reads and parses the config file at path. A missing file yields Default().
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	return Parse(data)
}

// WatchEnabled reports whether the profiles directory should be watched.
func (c Config) WatchEnabled() bool {
	return c.Watch == nil || *c.Watch
}

func (c Config) withDefaults() Config {
	def := Default()
	if c.ProfilesDir == "" {
		c.ProfilesDir = def.ProfilesDir
	}
	if c.DialogTitle == "" {
		c.DialogTitle = def.DialogTitle
	}
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
	if c.Watch == nil {
		c.Watch = def.Watch
	}
	c.ProfilesDir = paths.Expand(c.ProfilesDir)
	c.ExportDir = paths.Expand(c.ExportDir)
	return c
}
