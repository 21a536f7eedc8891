package tui

import "github.com/ruminaider/filament-export/internal/export"

// --- Messages ---

// refreshDoneMsg carries the outcome of a profile list refresh.
type refreshDoneMsg struct{ err error }

// exportDoneMsg carries the outcome of one export interaction.
type exportDoneMsg struct {
	result export.Result
	err    error
}

// stateChangedMsg is sent when the shared state store was updated.
type stateChangedMsg struct{}

// profilesChangedMsg is sent when profile files changed on disk.
type profilesChangedMsg struct{}

// SaveDialogRequestMsg asks the UI to show the save dialog. The answer goes
// back on reply exactly once.
type SaveDialogRequestMsg struct {
	Suggested string
	Title     string
	reply     chan<- dialogReply
}

type dialogReply struct {
	path string
	ok   bool
}

// OverlayCloseMsg is emitted when any overlay is dismissed.
type OverlayCloseMsg struct {
	Result    string // Text result (for text input) or empty
	Confirmed bool   // true = OK/Submit, false = Cancel/Esc
}
