package tui

import (
	catppuccin "github.com/catppuccin/go"
	"github.com/charmbracelet/lipgloss"
)

// Catppuccin Mocha palette.
var flavor = catppuccin.Mocha

var (
	colorBase     = lipgloss.Color(flavor.Base().Hex)
	colorMantle   = lipgloss.Color(flavor.Mantle().Hex)
	colorSurface0 = lipgloss.Color(flavor.Surface0().Hex)
	colorSurface1 = lipgloss.Color(flavor.Surface1().Hex)
	colorText     = lipgloss.Color(flavor.Text().Hex)
	colorSubtext0 = lipgloss.Color(flavor.Subtext0().Hex)
	colorBlue     = lipgloss.Color(flavor.Blue().Hex)
	colorGreen    = lipgloss.Color(flavor.Green().Hex)
	colorRed      = lipgloss.Color(flavor.Red().Hex)
	colorYellow   = lipgloss.Color(flavor.Yellow().Hex)
	colorMauve    = lipgloss.Color(flavor.Mauve().Hex)
	colorOverlay0 = lipgloss.Color(flavor.Overlay0().Hex)
)

// Profile list styles.
var (
	// HeaderStyle is used for the title above the profile list.
	HeaderStyle = lipgloss.NewStyle().
			Foreground(colorMauve).
			Bold(true)

	// SelectedStyle is used for the selected profile.
	SelectedStyle = lipgloss.NewStyle().
			Foreground(colorGreen).
			Bold(true)

	// UnselectedStyle is used for other profiles.
	UnselectedStyle = lipgloss.NewStyle().
			Foreground(colorText)

	// DisabledStyle is used for the placeholder and for profiles while an
	// export is in flight.
	DisabledStyle = lipgloss.NewStyle().
			Foreground(colorOverlay0).
			Italic(true)

	// ContentPaneStyle wraps the main content area.
	ContentPaneStyle = lipgloss.NewStyle().
				PaddingLeft(1).
				PaddingRight(1)
)

// Status line styles.
var (
	// InfoStyle is used for the last successful outcome.
	InfoStyle = lipgloss.NewStyle().
			Foreground(colorGreen)

	// ErrorStyle is used for surfaced failures.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(colorRed)

	// BusyStyle is used while an export is in flight.
	BusyStyle = lipgloss.NewStyle().
			Foreground(colorYellow)
)

// Status bar styles.
var (
	// StatusBarStyle is the base style for the bottom status bar.
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0).
			Background(colorSurface0).
			Padding(0, 1)

	// StatusBarKeyStyle highlights keyboard shortcuts in the status bar.
	StatusBarKeyStyle = lipgloss.NewStyle().
				Foreground(colorYellow).
				Background(colorSurface0).
				Bold(true)

	// StatusBarKeyDisabledStyle is used for shortcuts that do nothing right now.
	StatusBarKeyDisabledStyle = lipgloss.NewStyle().
					Foreground(colorOverlay0).
					Background(colorSurface0)
)

// Overlay styles.
var (
	// OverlayStyle is the border and background for modal overlays.
	OverlayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBlue).
			Background(colorMantle).
			Foreground(colorText).
			Padding(1, 2)

	// OverlayTitleStyle is used for the title text in overlays.
	OverlayTitleStyle = lipgloss.NewStyle().
				Foreground(colorBlue).
				Bold(true)

	// OverlayHintStyle is used for key hints under overlay content.
	OverlayHintStyle = lipgloss.NewStyle().
				Foreground(colorOverlay0)

	// OverlayButtonActiveStyle is used for the focused button in overlays.
	OverlayButtonActiveStyle = lipgloss.NewStyle().
					Foreground(colorBase).
					Background(colorBlue).
					Padding(0, 2)

	// OverlayButtonInactiveStyle is used for the unfocused button in overlays.
	OverlayButtonInactiveStyle = lipgloss.NewStyle().
					Foreground(colorText).
					Background(colorSurface1).
					Padding(0, 2)
)
