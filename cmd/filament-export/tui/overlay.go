package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

// OverlayType identifies the kind of modal overlay.
type OverlayType int

const (
	OverlayTextInput OverlayType = iota // Single-line text input (save path)
	OverlayConfirm                      // Yes/No confirmation (overwrite)
)

// Overlay renders a centered modal box on top of existing content.
type Overlay struct {
	overlayType OverlayType
	title       string
	message     string // body text (for Confirm)
	cursor      int    // Confirm button index: 0=Cancel, 1=OK
	input       textinput.Model
	width       int
	active      bool
}

// NewTextInputOverlay creates a text input dialog prefilled with value.
func NewTextInputOverlay(title, value string) Overlay {
	ti := textinput.New()
	ti.Placeholder = "path/to/profile.json"
	ti.CharLimit = 4096
	ti.Width = 40
	ti.SetValue(value)
	ti.CursorEnd()
	ti.Focus()
	return Overlay{
		overlayType: OverlayTextInput,
		title:       title,
		input:       ti,
		active:      true,
	}
}

// NewConfirmOverlay creates a confirmation dialog with Cancel/OK buttons.
// Cancel is focused so that Enter alone does not overwrite anything.
func NewConfirmOverlay(title, message string) Overlay {
	return Overlay{
		overlayType: OverlayConfirm,
		title:       title,
		message:     message,
		cursor:      0,
		active:      true,
	}
}

// Active returns whether the overlay is currently shown.
func (o Overlay) Active() bool {
	return o.active
}

// Type returns the overlay kind.
func (o Overlay) Type() OverlayType {
	return o.overlayType
}

// Value returns the current text of a text input overlay.
func (o Overlay) Value() string {
	return o.input.Value()
}

// Update handles key messages for the overlay.
func (o Overlay) Update(msg tea.Msg) (Overlay, tea.Cmd) {
	if !o.active {
		return o, nil
	}

	switch o.overlayType {
	case OverlayTextInput:
		return o.updateTextInput(msg)
	case OverlayConfirm:
		return o.updateConfirm(msg)
	}
	return o, nil
}

func (o Overlay) updateTextInput(msg tea.Msg) (Overlay, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "ctrl+c":
			o.active = false
			return o, closeOverlay("", false)
		case "enter":
			value := strings.TrimSpace(o.input.Value())
			if value == "" {
				return o, nil // don't submit empty
			}
			o.active = false
			return o, closeOverlay(value, true)
		}
	}

	// Delegate other keys to the text input.
	var cmd tea.Cmd
	o.input, cmd = o.input.Update(msg)
	return o, cmd
}

func (o Overlay) updateConfirm(msg tea.Msg) (Overlay, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "ctrl+c", "n":
			o.active = false
			return o, closeOverlay("", false)
		case "y":
			o.active = false
			return o, closeOverlay("", true)
		case "tab", "left", "right", "h", "l":
			o.cursor = 1 - o.cursor
		case "enter":
			o.active = false
			return o, closeOverlay("", o.cursor == 1)
		}
	}
	return o, nil
}

func closeOverlay(result string, confirmed bool) tea.Cmd {
	return func() tea.Msg {
		return OverlayCloseMsg{Result: result, Confirmed: confirmed}
	}
}

// View renders the overlay box. It does not composite over a background;
// that is the caller's responsibility using Composite().
func (o Overlay) View() string {
	if !o.active {
		return ""
	}

	var b strings.Builder
	b.WriteString(OverlayTitleStyle.Render(o.title))
	b.WriteString("\n\n")
	switch o.overlayType {
	case OverlayTextInput:
		b.WriteString(o.input.View())
		b.WriteString("\n\n")
		b.WriteString(OverlayHintStyle.Render("Enter: save  Esc: cancel"))
	case OverlayConfirm:
		b.WriteString(o.message)
		b.WriteString("\n\n")
		b.WriteString(o.renderButtons("Cancel", "Overwrite"))
	}
	return OverlayStyle.Render(b.String())
}

// renderButtons draws two side-by-side buttons with the cursor on one.
func (o Overlay) renderButtons(cancel, ok string) string {
	var cancelBtn, okBtn string
	if o.cursor == 0 {
		cancelBtn = OverlayButtonActiveStyle.Render(cancel)
		okBtn = OverlayButtonInactiveStyle.Render(ok)
	} else {
		cancelBtn = OverlayButtonInactiveStyle.Render(cancel)
		okBtn = OverlayButtonActiveStyle.Render(ok)
	}
	return cancelBtn + "  " + okBtn
}

// SetWidth sets the overlay box width and resizes the text input to fit.
func (o *Overlay) SetWidth(w int) {
	o.width = w
	if o.overlayType == OverlayTextInput {
		inputWidth := w - 6 // account for overlay padding and border
		if inputWidth < 20 {
			inputWidth = 20
		}
		o.input.Width = inputWidth
	}
}

// OverlayMaxWidth returns a reasonable overlay width for the terminal.
func OverlayMaxWidth(termWidth int) int {
	w := termWidth * 2 / 3
	if w < 40 {
		w = 40
	}
	if w > 72 {
		w = 72
	}
	return w
}

// Composite places the overlay box centered on top of the background string.
// The background is expected to be a fully rendered terminal frame.
func Composite(background string, overlay string, totalWidth, totalHeight int) string {
	if overlay == "" {
		return background
	}

	bgLines := strings.Split(background, "\n")

	// Pad background to fill the screen height.
	for len(bgLines) < totalHeight {
		bgLines = append(bgLines, "")
	}

	overlayLines := strings.Split(overlay, "\n")
	overlayWidth := 0
	for _, line := range overlayLines {
		if w := ansi.StringWidth(line); w > overlayWidth {
			overlayWidth = w
		}
	}

	startRow := (totalHeight - len(overlayLines)) / 2
	if startRow < 0 {
		startRow = 0
	}
	startCol := (totalWidth - overlayWidth) / 2
	if startCol < 0 {
		startCol = 0
	}

	for i, overlayLine := range overlayLines {
		row := startRow + i
		if row >= len(bgLines) {
			break
		}

		// Work on the visible text so ANSI sequences in the background are
		// never split.
		bgLine := ansi.Strip(bgLines[row])
		bgRunes := []rune(bgLine)

		leftPad := ""
		if startCol > 0 {
			if startCol <= len(bgRunes) {
				leftPad = string(bgRunes[:startCol])
			} else {
				leftPad = string(bgRunes) + strings.Repeat(" ", startCol-len(bgRunes))
			}
		}

		overlayEnd := startCol + ansi.StringWidth(overlayLine)
		rightPad := ""
		if overlayEnd < len(bgRunes) {
			rightPad = string(bgRunes[overlayEnd:])
		}

		bgLines[row] = leftPad + overlayLine + rightPad
	}

	if totalHeight > 0 && len(bgLines) > totalHeight {
		bgLines = bgLines[:totalHeight]
	}
	return strings.Join(bgLines, "\n")
}
