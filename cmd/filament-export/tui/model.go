package tui

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ruminaider/filament-export/internal/directory"
	"github.com/ruminaider/filament-export/internal/export"
	"github.com/ruminaider/filament-export/internal/paths"
	"github.com/ruminaider/filament-export/internal/state"
	"github.com/ruminaider/filament-export/internal/view"
)

type statusKind int

const (
	statusNone statusKind = iota
	statusInfo
	statusError
)

// Options wires a Model to its collaborators.
type Options struct {
	Context    context.Context
	Store      *state.Store
	Directory  *directory.Client
	Controller *export.Controller
	Dialog     *Dialog
	ExportDir  string          // directory prefilled in the save dialog
	Watch      <-chan struct{} // optional profile file change signals
	Logger     *slog.Logger
}

// Model is the Bubble Tea model for the profile selector and export action.
type Model struct {
	ctx        context.Context
	store      *state.Store
	dir        *directory.Client
	controller *export.Controller
	dialog     *Dialog
	exportDir  string
	watch      <-chan struct{}
	changes    chan struct{}
	logger     *slog.Logger

	snap        state.Snapshot
	exporting   bool // export command issued and not yet finished
	overlay     Overlay
	reply       chan<- dialogReply
	pendingPath string // path awaiting overwrite confirmation
	status      string
	statusKind  statusKind
	statusBar   StatusBar
	width       int
	height      int
	Quitting    bool
}

// New creates a Model and subscribes it to store changes.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	changes := make(chan struct{}, 1)
	opts.Store.Subscribe(func(state.Snapshot) {
		select {
		case changes <- struct{}{}:
		default:
		}
	})

	return Model{
		ctx:        ctx,
		store:      opts.Store,
		dir:        opts.Directory,
		controller: opts.Controller,
		dialog:     opts.Dialog,
		exportDir:  opts.ExportDir,
		watch:      opts.Watch,
		changes:    changes,
		logger:     logger,
		snap:       opts.Store.Snapshot(),
		statusBar:  NewStatusBar(),
	}
}

// Init loads the profile list and starts listening for state changes, save
// dialog requests and file changes.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.refresh(), m.listenState(), m.listenDialog(), m.listenWatch())
}

// --- Commands ---

func (m Model) refresh() tea.Cmd {
	dir, ctx := m.dir, m.ctx
	return func() tea.Msg {
		return refreshDoneMsg{err: dir.Refresh(ctx)}
	}
}

func (m Model) exportSelected() tea.Cmd {
	controller, ctx := m.controller, m.ctx
	return func() tea.Msg {
		res, err := controller.ExportSelected(ctx)
		return exportDoneMsg{result: res, err: err}
	}
}

func (m Model) listenState() tea.Cmd {
	changes, ctx := m.changes, m.ctx
	return func() tea.Msg {
		select {
		case <-changes:
			return stateChangedMsg{}
		case <-ctx.Done():
			return nil
		}
	}
}

func (m Model) listenDialog() tea.Cmd {
	if m.dialog == nil {
		return nil
	}
	requests, ctx := m.dialog.requests, m.ctx
	return func() tea.Msg {
		select {
		case req := <-requests:
			return req
		case <-ctx.Done():
			return nil
		}
	}
}

func (m Model) listenWatch() tea.Cmd {
	if m.watch == nil {
		return nil
	}
	watch, ctx := m.watch, m.ctx
	return func() tea.Msg {
		select {
		case _, ok := <-watch:
			if !ok {
				return nil
			}
			return profilesChangedMsg{}
		case <-ctx.Done():
			return nil
		}
	}
}

// --- Update ---

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.statusBar.SetWidth(msg.Width)
		m.overlay.SetWidth(OverlayMaxWidth(msg.Width))
		return m, nil

	case stateChangedMsg:
		m.sync()
		return m, m.listenState()

	case refreshDoneMsg:
		m.sync()
		if msg.err != nil {
			m.setStatus(statusError, "Refresh failed: "+msg.err.Error())
		}
		return m, nil

	case profilesChangedMsg:
		return m, tea.Batch(m.refresh(), m.listenWatch())

	case SaveDialogRequestMsg:
		m.answer("", false)
		m.reply = msg.reply
		m.overlay = NewTextInputOverlay(msg.Title, m.defaultPath(msg.Suggested))
		m.overlay.SetWidth(OverlayMaxWidth(m.width))
		return m, m.listenDialog()

	case OverlayCloseMsg:
		return m.handleOverlayClose(msg), nil

	case exportDoneMsg:
		return m.handleExportDone(msg), nil

	case tea.KeyMsg:
		if m.overlay.Active() {
			var cmd tea.Cmd
			m.overlay, cmd = m.overlay.Update(msg)
			return m, cmd
		}
		return m.handleKey(msg)
	}

	if m.overlay.Active() {
		var cmd tea.Cmd
		m.overlay, cmd = m.overlay.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.Quitting = true
		return m, tea.Quit

	case "up", "k":
		m.move(-1)

	case "down", "j":
		m.move(1)

	case "r":
		return m, m.refresh()

	case "e", "enter":
		if !m.currentView().ExportEnabled {
			return m, nil
		}
		m.exporting = true
		m.setStatus(statusNone, "")
		return m, m.exportSelected()
	}
	return m, nil
}

func (m *Model) move(delta int) {
	v := m.currentView()
	if !v.SelectEnabled {
		return
	}
	i := v.SelectedIndex()
	next := i + delta
	if next < 0 || next >= len(v.Options) || next == i {
		return
	}
	if err := m.dir.Select(v.Options[next].Name); err != nil {
		m.logger.Warn("select failed", "profile", v.Options[next].Name, "err", err)
	}
	m.sync()
}

func (m Model) handleOverlayClose(msg OverlayCloseMsg) Model {
	switch m.overlay.Type() {
	case OverlayTextInput:
		if !msg.Confirmed {
			m.answer("", false)
			return m
		}
		path := paths.Resolve(msg.Result)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			m.pendingPath = path
			m.overlay = NewConfirmOverlay("File exists", fmt.Sprintf("Overwrite %s?", path))
			m.overlay.SetWidth(OverlayMaxWidth(m.width))
			return m
		}
		m.answer(path, true)

	case OverlayConfirm:
		path := m.pendingPath
		m.pendingPath = ""
		m.answer(path, msg.Confirmed)
	}
	return m
}

func (m Model) handleExportDone(msg exportDoneMsg) Model {
	m.exporting = false
	m.sync()

	res := msg.result
	switch res.Outcome {
	case export.OutcomeExported:
		m.setStatus(statusInfo, fmt.Sprintf("Exported %s to %s", res.Request.Profile, res.Request.Destination))
	case export.OutcomeFailed:
		m.logger.Error("export failed", "profile", res.Request.Profile, "dest", res.Request.Destination, "err", msg.err)
		m.setStatus(statusError, "Export failed: "+msg.err.Error())
	default:
		m.setStatus(statusNone, "")
	}
	return m
}

// answer replies to the pending save dialog request, if any.
func (m *Model) answer(path string, ok bool) {
	if m.reply == nil {
		return
	}
	m.reply <- dialogReply{path: path, ok: ok}
	m.reply = nil
}

func (m *Model) sync() {
	m.snap = m.store.Snapshot()
}

func (m *Model) setStatus(kind statusKind, text string) {
	m.statusKind = kind
	m.status = text
}

func (m Model) defaultPath(suggested string) string {
	if m.exportDir == "" {
		return suggested
	}
	return filepath.Join(m.exportDir, suggested)
}

// currentView projects the last synced snapshot. An export issued from this
// model counts as busy even before the controller reports a phase change.
func (m Model) currentView() view.View {
	v := view.Project(m.snap)
	if m.exporting {
		v.Busy = true
		v.SelectEnabled = false
		v.ExportEnabled = false
		if v.BusyLabel == "" {
			v.BusyLabel = "Exporting..."
		}
	}
	return v
}

// --- View ---

func (m Model) View() string {
	if m.Quitting {
		return ""
	}

	v := m.currentView()

	var b strings.Builder
	b.WriteString(HeaderStyle.Render("Filament profiles"))
	b.WriteString("\n\n")

	if v.Placeholder != "" {
		b.WriteString(DisabledStyle.Render(v.Placeholder))
		b.WriteString("\n")
	}
	for _, o := range v.Options {
		switch {
		case !v.SelectEnabled && o.Selected:
			b.WriteString(DisabledStyle.Render("> ● " + o.Name))
		case !v.SelectEnabled:
			b.WriteString(DisabledStyle.Render("  ○ " + o.Name))
		case o.Selected:
			b.WriteString(SelectedStyle.Render("> ● " + o.Name))
		default:
			b.WriteString(UnselectedStyle.Render("  ○ " + o.Name))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	switch {
	case v.Busy:
		b.WriteString(BusyStyle.Render(v.BusyLabel))
	case m.statusKind == statusInfo:
		b.WriteString(InfoStyle.Render(m.status))
	case m.statusKind == statusError:
		b.WriteString(ErrorStyle.Render(m.status))
	}

	frame := ContentPaneStyle.Render(b.String())
	if m.height > 0 {
		lines := strings.Count(frame, "\n") + 1
		if pad := m.height - 1 - lines; pad > 0 {
			frame += strings.Repeat("\n", pad)
		}
	}

	bar := m.statusBar
	bar.Update(v)
	frame += "\n" + bar.View()

	if m.overlay.Active() {
		return Composite(frame, m.overlay.View(), m.width, m.height)
	}
	return frame
}
