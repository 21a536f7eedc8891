package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/ruminaider/filament-export/internal/view"
)

// StatusBar renders the bottom row with the profile count, the selection and
// keyboard shortcuts. Shortcuts that are disabled right now are dimmed.
type StatusBar struct {
	total         int
	selected      string
	selectEnabled bool
	exportEnabled bool
	width         int
}

// NewStatusBar creates a status bar with nothing selected.
func NewStatusBar() StatusBar {
	return StatusBar{}
}

// SetWidth sets the available width for rendering.
func (s *StatusBar) SetWidth(w int) {
	s.width = w
}

// Update refreshes the status bar from the current view.
func (s *StatusBar) Update(v view.View) {
	s.total = len(v.Options)
	s.selected = ""
	if i := v.SelectedIndex(); i >= 0 {
		s.selected = v.Options[i].Name
	}
	s.selectEnabled = v.SelectEnabled
	s.exportEnabled = v.ExportEnabled
}

// View renders the status bar.
func (s StatusBar) View() string {
	left := fmt.Sprintf("%d %s", s.total, pluralize("profile", s.total))
	if s.selected != "" {
		left = fmt.Sprintf("%s · %s", left, s.selected)
	}

	shortcuts := []string{
		s.key("↑/↓", s.selectEnabled) + ": select",
		s.key("r", true) + ": refresh",
		s.key("e", s.exportEnabled) + ": export",
		s.key("q", true) + ": quit",
	}
	right := strings.Join(shortcuts, " · ")

	leftWidth := ansi.StringWidth(left)
	rightWidth := ansi.StringWidth(right)
	availableWidth := s.width - 2 // account for StatusBarStyle padding
	gap := availableWidth - leftWidth - rightWidth
	if gap < 1 {
		gap = 1
	}

	content := left + strings.Repeat(" ", gap) + right
	if s.width <= 0 {
		return StatusBarStyle.Render(content)
	}
	return StatusBarStyle.Width(s.width).Render(content)
}

func (s StatusBar) key(k string, enabled bool) string {
	if enabled {
		return StatusBarKeyStyle.Render(k)
	}
	return StatusBarKeyDisabledStyle.Render(k)
}

// pluralize returns the singular or plural form depending on count.
func pluralize(word string, count int) string {
	if count == 1 {
		return word
	}
	return word + "s"
}
