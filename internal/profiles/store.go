package profiles

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Store is a directory of filament profiles, one <name>.yaml (or .yml) file
// per profile. It is the local host for listing and exporting profiles.
type Store struct {
	dir string
}

// NewStore returns a Store rooted at dir. The directory need not exist.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the directory the store reads from.
func (s *Store) Dir() string {
	return s.dir
}

// IsProfileFile reports whether a file name looks like a profile file.
func IsProfileFile(name string) bool {
	if strings.HasPrefix(name, ".") {
		return false
	}
	ext := filepath.Ext(name)
	return ext == ".yaml" || ext == ".yml"
}

// ListProfiles returns sorted profile names by scanning the store directory.
// Returns an empty slice (not error) if the directory doesn't exist. A name
// present as both .yaml and .yml is listed once.
func (s *Store) ListProfiles(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("listing profiles: %w", err)
	}

	seen := make(map[string]bool, len(entries))
	names := []string{}
	for _, e := range entries {
		if e.IsDir() || !IsProfileFile(e.Name()) {
			continue
		}
		name := strings.TrimSuffix(e.Name(), filepath.Ext(e.Name()))
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}

	sort.Strings(names)
	return names, nil
}

// path resolves the file backing name, preferring .yaml over .yml.
func (s *Store) path(name string) (string, error) {
	if err := ValidateName(name); err != nil {
		return "", err
	}
	for _, ext := range []string{".yaml", ".yml"} {
		p := filepath.Join(s.dir, name+ext)
		info, err := os.Stat(p)
		if err == nil && !info.IsDir() {
			return p, nil
		}
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("reading profile %q: %w", name, err)
		}
	}
	return "", fmt.Errorf("%w: %q", ErrNotFound, name)
}

// ReadProfile reads and parses the named profile.
func (s *Store) ReadProfile(name string) (Profile, error) {
	p, err := s.path(name)
	if err != nil {
		return Profile{}, err
	}
	data, err := os.ReadFile(p)
	if err != nil {
		return Profile{}, fmt.Errorf("reading profile %q: %w", name, err)
	}
	return ParseProfile(name, data)
}

// EncodeExport renders a profile as the indented JSON document written by
// ExportProfile. The profile name is included under "name" unless the
// settings already carry one.
func EncodeExport(p Profile) ([]byte, error) {
	doc := make(map[string]any, len(p.Settings)+1)
	for k, v := range p.Settings {
		doc[k] = v
	}
	if _, ok := doc["name"]; !ok {
		doc["name"] = p.Name
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding profile %q: %w", p.Name, err)
	}
	return append(data, '\n'), nil
}

// ExportProfile writes the named profile as JSON to dest. The file is written
// to a temporary sibling first and renamed into place.
func (s *Store) ExportProfile(ctx context.Context, name, dest string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if dest == "" {
		return fmt.Errorf("exporting profile %q: empty destination", name)
	}
	if info, err := os.Stat(dest); err == nil && info.IsDir() {
		return fmt.Errorf("exporting profile %q: %s is a directory", name, dest)
	}

	p, err := s.ReadProfile(name)
	if err != nil {
		return err
	}
	data, err := EncodeExport(p)
	if err != nil {
		return err
	}

	return writeFile(dest, data)
}

func writeFile(dest string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(dest), ".filament-export-*")
	if err != nil {
		return fmt.Errorf("writing %s: %w", dest, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing %s: %w", dest, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("writing %s: %w", dest, err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("writing %s: %w", dest, err)
	}
	if err := os.Rename(tmpName, dest); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("writing %s: %w", dest, err)
	}
	return nil
}
