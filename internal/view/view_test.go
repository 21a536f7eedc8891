package view_test

import (
	"testing"

	"github.com/ruminaider/filament-export/internal/state"
	"github.com/ruminaider/filament-export/internal/view"
	"github.com/stretchr/testify/assert"
)

func TestProject_EmptyListShowsDisabledPlaceholder(t *testing.T) {
	v := view.Project(state.Snapshot{})

	assert.Empty(t, v.Options)
	assert.Equal(t, view.Placeholder, v.Placeholder)
	assert.False(t, v.SelectEnabled)
	assert.False(t, v.ExportEnabled)
	assert.Equal(t, -1, v.SelectedIndex())
}

func TestProject_MarksSelection(t *testing.T) {
	v := view.Project(state.Snapshot{
		Profiles:     []string{"PLA Basic", "PETG High-Flow"},
		Selected:     "PETG High-Flow",
		HasSelection: true,
	})

	assert.Equal(t, []view.Option{
		{Name: "PLA Basic"},
		{Name: "PETG High-Flow", Selected: true},
	}, v.Options)
	assert.Empty(t, v.Placeholder)
	assert.True(t, v.SelectEnabled)
	assert.True(t, v.ExportEnabled)
	assert.Equal(t, 1, v.SelectedIndex())
}

func TestProject_ExportDisabledWhileBusy(t *testing.T) {
	base := state.Snapshot{
		Profiles:     []string{"PLA Basic"},
		Selected:     "PLA Basic",
		HasSelection: true,
	}

	awaitingPath := base
	awaitingPath.Phase = state.PhaseAwaitingPath
	v := view.Project(awaitingPath)
	assert.True(t, v.Busy)
	assert.False(t, v.ExportEnabled)
	assert.False(t, v.SelectEnabled)
	assert.Equal(t, "Choosing destination...", v.BusyLabel)

	exporting := base
	exporting.Phase = state.PhaseAwaitingExportResult
	v = view.Project(exporting)
	assert.False(t, v.ExportEnabled)
	assert.Equal(t, "Exporting PLA Basic...", v.BusyLabel)
}

func TestProject_IsDeterministic(t *testing.T) {
	s := state.Snapshot{Profiles: []string{"a", "b"}, Selected: "b", HasSelection: true}
	assert.Equal(t, view.Project(s), view.Project(s))
}
