package paths

import (
	"os"
	"path/filepath"
	"strings"
)

func home() string {
	h, _ := os.UserHomeDir()
	return h
}

// DataDir returns ~/.filament-export.
func DataDir() string {
	return filepath.Join(home(), ".filament-export")
}

// ConfigFile returns ~/.filament-export/config.yaml.
func ConfigFile() string {
	return filepath.Join(DataDir(), "config.yaml")
}

// ProfilesDir returns ~/.filament-export/profiles.
func ProfilesDir() string {
	return filepath.Join(DataDir(), "profiles")
}

// LogFile returns ~/.filament-export/filament-export.log.
func LogFile() string {
	return filepath.Join(DataDir(), "filament-export.log")
}

// Expand replaces a leading "~" with the user's home directory.
func Expand(p string) string {
	if p == "~" {
		return home()
	}
	if strings.HasPrefix(p, "~/") {
		return filepath.Join(home(), p[2:])
	}
	return p
}

// Resolve expands "~" and makes p absolute relative to the working directory.
func Resolve(p string) string {
	p = Expand(p)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}
