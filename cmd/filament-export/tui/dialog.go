package tui

import "context"

// Dialog is the save dialog used by the export controller while the terminal
// UI runs. ChooseSavePath hands a request to the UI loop and blocks until the
// user answers in the overlay, or ctx is done.
type Dialog struct {
	requests chan SaveDialogRequestMsg
}

// NewDialog returns a Dialog with no pending requests.
func NewDialog() *Dialog {
	return &Dialog{requests: make(chan SaveDialogRequestMsg)}
}

// ChooseSavePath implements host.SaveDialog.
func (d *Dialog) ChooseSavePath(ctx context.Context, suggested, title string) (string, bool) {
	reply := make(chan dialogReply, 1)
	req := SaveDialogRequestMsg{Suggested: suggested, Title: title, reply: reply}

	select {
	case d.requests <- req:
	case <-ctx.Done():
		return "", false
	}

	select {
	case r := <-reply:
		return r.path, r.ok
	case <-ctx.Done():
		return "", false
	}
}
