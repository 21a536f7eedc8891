// Package view derives what the profile control displays from a state
// snapshot. Project is pure: the same snapshot always yields the same View.
package view

import "github.com/ruminaider/filament-export/internal/state"

// Placeholder is shown in place of the list when there are no profiles.
const Placeholder = "No profiles available"

// Option is one entry of the profile selector.
type Option struct {
	Name     string
	Selected bool
}

// View is the displayed state of the control.
type View struct {
	Options       []Option
	Placeholder   string // non-empty only when there are no options
	SelectEnabled bool
	ExportEnabled bool
	Busy          bool
	BusyLabel     string
}

// Project computes the View for a snapshot.
func Project(s state.Snapshot) View {
	v := View{
		Options: make([]Option, 0, len(s.Profiles)),
		Busy:    s.Phase != state.PhaseIdle,
	}
	for _, name := range s.Profiles {
		v.Options = append(v.Options, Option{
			Name:     name,
			Selected: s.HasSelection && name == s.Selected,
		})
	}

	if len(v.Options) == 0 {
		v.Placeholder = Placeholder
	}
	v.SelectEnabled = len(v.Options) > 0 && !v.Busy
	v.ExportEnabled = s.HasSelection && !v.Busy

	switch s.Phase {
	case state.PhaseAwaitingPath:
		v.BusyLabel = "Choosing destination..."
	case state.PhaseAwaitingExportResult:
		v.BusyLabel = "Exporting " + s.Selected + "..."
	}
	return v
}

// SelectedIndex returns the index of the selected option, or -1.
func (v View) SelectedIndex() int {
	for i, o := range v.Options {
		if o.Selected {
			return i
		}
	}
	return -1
}
