package profiles_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/ruminaider/filament-export/internal/profiles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProfile(t *testing.T, dir, file, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, file), []byte(content), 0644))
}

func TestParseProfile(t *testing.T) {
	t.Run("nested settings", func(t *testing.T) {
		input := []byte(`filament_type: PLA
filament_vendor: Generic
nozzle_temperature: [220, 215]
cooling:
  fan_min: 30
  fan_max: 100
`)
		p, err := profiles.ParseProfile("PLA Basic", input)
		require.NoError(t, err)
		assert.Equal(t, "PLA Basic", p.Name)
		assert.Equal(t, "PLA", p.Settings["filament_type"])
		assert.Equal(t, []any{220, 215}, p.Settings["nozzle_temperature"])
		cooling, ok := p.Settings["cooling"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, 100, cooling["fan_max"])
	})

	t.Run("non-string keys are stringified", func(t *testing.T) {
		p, err := profiles.ParseProfile("x", []byte("layers:\n  1: fast\n  2: slow\n"))
		require.NoError(t, err)
		layers, ok := p.Settings["layers"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "fast", layers["1"])
	})

	t.Run("empty document", func(t *testing.T) {
		p, err := profiles.ParseProfile("empty", []byte(""))
		require.NoError(t, err)
		assert.Equal(t, "empty", p.Name)
		assert.Nil(t, p.Settings)
	})

	t.Run("top level must be a mapping", func(t *testing.T) {
		_, err := profiles.ParseProfile("list", []byte("- a\n- b\n"))
		assert.ErrorContains(t, err, "expected mapping")
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := profiles.ParseProfile("bad", []byte("{{{"))
		assert.Error(t, err)
	})
}

func TestValidateName(t *testing.T) {
	assert.NoError(t, profiles.ValidateName("PETG High-Flow"))
	assert.ErrorIs(t, profiles.ValidateName(""), profiles.ErrInvalidName)
	assert.ErrorIs(t, profiles.ValidateName("  "), profiles.ErrInvalidName)
	assert.ErrorIs(t, profiles.ValidateName("../etc/passwd"), profiles.ErrInvalidName)
	assert.ErrorIs(t, profiles.ValidateName(`a\b`), profiles.ErrInvalidName)
	assert.ErrorIs(t, profiles.ValidateName(".."), profiles.ErrInvalidName)
}

func TestProfileSummary(t *testing.T) {
	tests := []struct {
		name     string
		settings map[string]any
		want     string
	}{
		{"empty", nil, "0 settings"},
		{"type and vendor", map[string]any{"filament_type": "PETG", "filament_vendor": "Acme"}, "PETG by Acme, 2 settings"},
		{"type only", map[string]any{"filament_type": "PLA"}, "PLA, 1 setting"},
		{"vendor only", map[string]any{"filament_vendor": "Acme", "x": 1}, "Acme, 2 settings"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, profiles.ProfileSummary(profiles.Profile{Settings: tt.settings}))
		})
	}
}

func TestListProfiles(t *testing.T) {
	ctx := context.Background()

	t.Run("no profiles directory", func(t *testing.T) {
		s := profiles.NewStore(filepath.Join(t.TempDir(), "missing"))
		names, err := s.ListProfiles(ctx)
		require.NoError(t, err)
		assert.NotNil(t, names)
		assert.Empty(t, names)
	})

	t.Run("multiple profiles sorted", func(t *testing.T) {
		dir := t.TempDir()
		writeProfile(t, dir, "PLA Basic.yaml", "")
		writeProfile(t, dir, "ASA.yml", "")
		writeProfile(t, dir, "PETG High-Flow.yaml", "")

		names, err := profiles.NewStore(dir).ListProfiles(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"ASA", "PETG High-Flow", "PLA Basic"}, names)
	})

	t.Run("ignores non-yaml files, hidden files and subdirectories", func(t *testing.T) {
		dir := t.TempDir()
		writeProfile(t, dir, "PLA.yaml", "")
		writeProfile(t, dir, "notes.txt", "")
		writeProfile(t, dir, ".hidden.yaml", "")
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub.yaml"), 0755))

		names, err := profiles.NewStore(dir).ListProfiles(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"PLA"}, names)
	})

	t.Run("same name with both extensions listed once", func(t *testing.T) {
		dir := t.TempDir()
		writeProfile(t, dir, "PLA.yaml", "")
		writeProfile(t, dir, "PLA.yml", "")

		names, err := profiles.NewStore(dir).ListProfiles(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"PLA"}, names)
	})

	t.Run("cancelled context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := profiles.NewStore(t.TempDir()).ListProfiles(cctx)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestReadProfile(t *testing.T) {
	t.Run("prefers yaml over yml", func(t *testing.T) {
		dir := t.TempDir()
		writeProfile(t, dir, "PLA.yaml", "filament_type: PLA\n")
		writeProfile(t, dir, "PLA.yml", "filament_type: other\n")

		p, err := profiles.NewStore(dir).ReadProfile("PLA")
		require.NoError(t, err)
		assert.Equal(t, "PLA", p.Settings["filament_type"])
	})

	t.Run("missing profile", func(t *testing.T) {
		_, err := profiles.NewStore(t.TempDir()).ReadProfile("nonexistent")
		assert.ErrorIs(t, err, profiles.ErrNotFound)
	})

	t.Run("invalid name", func(t *testing.T) {
		_, err := profiles.NewStore(t.TempDir()).ReadProfile("../x")
		assert.ErrorIs(t, err, profiles.ErrInvalidName)
	})
}

func TestExportProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("writes json to destination", func(t *testing.T) {
		dir := t.TempDir()
		writeProfile(t, dir, "PETG High-Flow.yaml", "filament_type: PETG\nnozzle_temperature: 245\n")
		dest := filepath.Join(t.TempDir(), "PETG High-Flow profile.json")

		require.NoError(t, profiles.NewStore(dir).ExportProfile(ctx, "PETG High-Flow", dest))

		data, err := os.ReadFile(dest)
		require.NoError(t, err)
		var doc map[string]any
		require.NoError(t, json.Unmarshal(data, &doc))
		assert.Equal(t, "PETG High-Flow", doc["name"])
		assert.Equal(t, "PETG", doc["filament_type"])
		assert.Equal(t, float64(245), doc["nozzle_temperature"])
	})

	t.Run("keeps existing name setting", func(t *testing.T) {
		dir := t.TempDir()
		writeProfile(t, dir, "pla.yaml", "name: Bambu PLA Basic\n")
		dest := filepath.Join(t.TempDir(), "out.json")

		require.NoError(t, profiles.NewStore(dir).ExportProfile(ctx, "pla", dest))

		data, err := os.ReadFile(dest)
		require.NoError(t, err)
		assert.JSONEq(t, `{"name":"Bambu PLA Basic"}`, string(data))
	})

	t.Run("overwrites existing file", func(t *testing.T) {
		dir := t.TempDir()
		writeProfile(t, dir, "pla.yaml", "a: 1\n")
		dest := filepath.Join(t.TempDir(), "out.json")
		require.NoError(t, os.WriteFile(dest, []byte("old"), 0644))

		require.NoError(t, profiles.NewStore(dir).ExportProfile(ctx, "pla", dest))

		data, err := os.ReadFile(dest)
		require.NoError(t, err)
		assert.JSONEq(t, `{"a":1,"name":"pla"}`, string(data))
	})

	t.Run("unknown profile", func(t *testing.T) {
		dest := filepath.Join(t.TempDir(), "out.json")
		err := profiles.NewStore(t.TempDir()).ExportProfile(ctx, "ghost", dest)
		assert.ErrorIs(t, err, profiles.ErrNotFound)
		assert.NoFileExists(t, dest)
	})

	t.Run("destination is a directory", func(t *testing.T) {
		dir := t.TempDir()
		writeProfile(t, dir, "pla.yaml", "")
		err := profiles.NewStore(dir).ExportProfile(ctx, "pla", t.TempDir())
		assert.ErrorContains(t, err, "is a directory")
	})

	t.Run("missing parent directory", func(t *testing.T) {
		dir := t.TempDir()
		writeProfile(t, dir, "pla.yaml", "")
		dest := filepath.Join(t.TempDir(), "no", "such", "out.json")
		assert.Error(t, profiles.NewStore(dir).ExportProfile(ctx, "pla", dest))
	})

	t.Run("empty destination", func(t *testing.T) {
		err := profiles.NewStore(t.TempDir()).ExportProfile(ctx, "pla", "")
		assert.ErrorContains(t, err, "empty destination")
	})
}
