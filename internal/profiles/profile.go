package profiles

import (
	"errors"
	"fmt"
	"strings"

	"go.yaml.in/yaml/v3"
)

// ErrNotFound is returned when a named profile has no file in the store.
var ErrNotFound = errors.New("profile not found")

// ErrInvalidName is returned for names that cannot map to a file in the store.
var ErrInvalidName = errors.New("invalid profile name")

// Profile is one filament profile. Its settings are opaque to this tool:
// whatever mapping the YAML file holds is carried through to the export.
type Profile struct {
	Name     string
	Settings map[string]any
}

// ParseProfile parses a profile YAML document. An empty document is a valid
// profile with no settings.
func ParseProfile(name string, data []byte) (Profile, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Profile{}, fmt.Errorf("parsing profile %q: %w", name, err)
	}

	p := Profile{Name: name}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return p, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return Profile{}, fmt.Errorf("parsing profile %q: expected mapping at top level", name)
	}

	var raw map[string]any
	if err := root.Decode(&raw); err != nil {
		return Profile{}, fmt.Errorf("parsing profile %q: %w", name, err)
	}
	p.Settings = normalize(raw).(map[string]any)
	return p, nil
}

// normalize converts YAML mappings with non-string keys into string-keyed
// maps so the result can be encoded as JSON.
func normalize(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = normalize(item)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[fmt.Sprint(k)] = normalize(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = normalize(item)
		}
		return out
	default:
		return v
	}
}

// ValidateName rejects names that are empty or would escape the profiles
// directory.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: empty", ErrInvalidName)
	}
	if strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}

// ProfileSummary returns a one-line description used by `list`.
// Format: "<type> by <vendor>, N settings". Missing parts are skipped.
func ProfileSummary(p Profile) string {
	var parts []string

	kind, _ := p.Settings["filament_type"].(string)
	vendor, _ := p.Settings["filament_vendor"].(string)
	switch {
	case kind != "" && vendor != "":
		parts = append(parts, fmt.Sprintf("%s by %s", kind, vendor))
	case kind != "":
		parts = append(parts, kind)
	case vendor != "":
		parts = append(parts, vendor)
	}

	n := len(p.Settings)
	parts = append(parts, fmt.Sprintf("%d %s", n, pluralize("setting", n)))
	return strings.Join(parts, ", ")
}

// pluralize returns the singular or plural form depending on count.
func pluralize(word string, count int) string {
	if count == 1 {
		return word
	}
	return word + "s"
}
