// Package tui provides the Bubble Tea browser: a horizontal cover
// strip synced to a detail pane of album metadata.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/coverstrip/coverstrip/internal/library"
	"github.com/coverstrip/coverstrip/internal/model"
	"github.com/coverstrip/coverstrip/internal/selection"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F8B500")).
			MarginBottom(1)

	coverStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#6C757D")).
			Padding(0, 1).
			Width(16).
			Align(lipgloss.Center)

	selectedCoverStyle = coverStyle.
				BorderForeground(lipgloss.Color("#4ECDC4")).
				Bold(true)

	detailBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(1, 2)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC")).
			Width(8)

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))
)

const maxLogs = 6

// Messages
type (
	// coverMsg delivers a resolved cover: the reference it was
	// requested for, the bytes, and whether an image was produced.
	coverMsg struct {
		Ref  string
		Data []byte
		OK   bool
	}

	// eventMsg carries one library event into the update loop.
	eventMsg library.Event
)

type deletedAlbum struct {
	album model.Album
	index int
}

// Model is the Bubble Tea model for the browser.
type Model struct {
	lib    *library.Library
	coord  *selection.Coordinator
	events <-chan library.Event

	spinner spinner.Model

	// covers tracks which references have resolved during this
	// session; resolution state is per-ref, never per-index.
	covers      map[string]bool
	fetchingRef string

	// undo holds deleted albums, most recent last.
	undo []deletedAlbum

	logs    []library.Event
	verbose bool

	ctx    context.Context
	cancel context.CancelFunc

	width int
}

// NewModel creates the browser model around an injected library.
// events may be nil if no event feed is wired.
func NewModel(lib *library.Library, events <-chan library.Event) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#4ECDC4"))

	ctx, cancel := context.WithCancel(context.Background())

	m := Model{
		lib:     lib,
		coord:   selection.New(nil),
		events:  events,
		spinner: sp,
		covers:  make(map[string]bool),
		ctx:     ctx,
		cancel:  cancel,
	}
	m.coord.SetAlbums(lib.Albums())
	if album := m.coord.ItemAt(m.coord.InitialIndex()); album.HasCover() {
		m.fetchingRef = album.CoverRef
	}
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.resolveCover(m.fetchingRef), m.waitForEvent())
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.cancel()
			return m, tea.Quit

		case "left", "h":
			return m.moveSelection(-1)

		case "right", "l":
			return m.moveSelection(1)

		case "home", "g":
			return m.jumpSelection(0)

		case "end", "G":
			return m.jumpSelection(m.coord.Count() - 1)

		case "x", "delete":
			return m.deleteSelected()

		case "u":
			return m.undoDelete()

		case "v":
			m.verbose = !m.verbose
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case coverMsg:
		// Record per-ref, even when the selection has moved on: the
		// bytes are cached, only this delivery may be stale.
		m.covers[msg.Ref] = msg.OK
		if msg.Ref == m.fetchingRef {
			m.fetchingRef = ""
		}
		if !msg.OK {
			// Forget the failure so revisiting the album retries.
			delete(m.covers, msg.Ref)
		}

	case eventMsg:
		ev := library.Event(msg)
		if ev.Level != library.LevelVerbose || m.verbose {
			m.logs = append(m.logs, ev)
			if len(m.logs) > maxLogs {
				m.logs = m.logs[len(m.logs)-maxLogs:]
			}
		}
		cmds = append(cmds, m.waitForEvent())
	}

	return m, tea.Batch(cmds...)
}

func (m Model) moveSelection(delta int) (tea.Model, tea.Cmd) {
	return m.jumpSelection(m.coord.InitialIndex() + delta)
}

func (m Model) jumpSelection(index int) (tea.Model, tea.Cmd) {
	// An out-of-range move is simply ignored; the coordinator keeps
	// the current selection.
	if err := m.coord.Select(index); err != nil {
		return m, nil
	}
	cmd := m.resolveCurrentCover()
	return m, cmd
}

func (m Model) deleteSelected() (tea.Model, tea.Cmd) {
	index := m.coord.InitialIndex()
	if index == selection.None {
		return m, nil
	}

	album := m.coord.ItemAt(index)
	if err := m.lib.DeleteAlbum(index); err != nil {
		return m, nil
	}
	m.undo = append(m.undo, deletedAlbum{album: album, index: index})
	m.coord.SetAlbums(m.lib.Albums())
	cmd := m.resolveCurrentCover()
	return m, cmd
}

func (m Model) undoDelete() (tea.Model, tea.Cmd) {
	if len(m.undo) == 0 {
		return m, nil
	}

	last := m.undo[len(m.undo)-1]
	m.undo = m.undo[:len(m.undo)-1]

	m.lib.AddAlbum(last.album, last.index)
	m.coord.SetAlbums(m.lib.Albums())
	_ = m.coord.Select(clampIndex(last.index, m.coord.Count()))
	cmd := m.resolveCurrentCover()
	return m, cmd
}

// resolveCurrentCover kicks off a background resolution for the
// selected album's cover. The completion message carries the reference
// so stale deliveries can be told apart from current ones.
func (m *Model) resolveCurrentCover() tea.Cmd {
	album := m.coord.ItemAt(m.coord.InitialIndex())
	ref := album.CoverRef
	if ref == "" {
		return nil
	}
	if _, done := m.covers[ref]; done {
		return nil
	}

	m.fetchingRef = ref
	return m.resolveCover(ref)
}

func (m Model) resolveCover(ref string) tea.Cmd {
	if ref == "" {
		return nil
	}
	lib, ctx := m.lib, m.ctx
	return func() tea.Msg {
		data, ok := lib.ResolveImage(ctx, ref)
		return coverMsg{Ref: ref, Data: data, OK: ok}
	}
}

// waitForEvent blocks on the library event feed and converts one event
// into a message. Re-issued after every receive.
func (m Model) waitForEvent() tea.Cmd {
	if m.events == nil {
		return nil
	}
	events := m.events
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return nil
		}
		return eventMsg(ev)
	}
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("coverstrip"))
	b.WriteString("\n")

	if m.coord.Count() == 0 {
		b.WriteString(dimStyle.Render("Library is empty."))
		b.WriteString("\n\n")
		if len(m.undo) > 0 {
			b.WriteString(dimStyle.Render("Press u to restore the last deleted album."))
			b.WriteString("\n")
		}
	} else {
		b.WriteString(m.viewStrip())
		b.WriteString("\n")
		b.WriteString(m.viewDetail())
		b.WriteString("\n")
	}

	b.WriteString(m.renderLogs())
	b.WriteString(dimStyle.Render(m.helpText()))

	return b.String()
}

func (m Model) viewStrip() string {
	selected := m.coord.InitialIndex()

	boxes := make([]string, 0, m.coord.Count())
	for i := 0; i < m.coord.Count(); i++ {
		album := m.coord.ItemAt(i)

		marker := "·"
		if m.covers[album.CoverRef] {
			marker = "●"
		} else if album.CoverRef == m.fetchingRef {
			marker = m.spinner.View()
		}

		content := fmt.Sprintf("%s\n%s", marker, truncate(album.Title, 12))

		style := coverStyle
		if i == selected {
			style = selectedCoverStyle
		}
		boxes = append(boxes, style.Render(content))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, boxes...)
}

func (m Model) viewDetail() string {
	labels, values := m.coord.DetailFields(m.coord.InitialIndex())
	if len(labels) == 0 {
		return ""
	}

	var b strings.Builder
	for i, label := range labels {
		b.WriteString(labelStyle.Render(label))
		b.WriteString(values[i])
		if i < len(labels)-1 {
			b.WriteString("\n")
		}
	}
	return detailBoxStyle.Render(b.String())
}

func (m Model) renderLogs() string {
	if len(m.logs) == 0 {
		return ""
	}

	var b strings.Builder
	for _, ev := range m.logs {
		var style lipgloss.Style
		prefix := "•"
		switch ev.Level {
		case library.LevelError:
			style = errorStyle
			prefix = "✗"
		case library.LevelWarning:
			style = warningStyle
			prefix = "!"
		default:
			style = dimStyle
		}
		b.WriteString(style.Render(prefix + " " + ev.Message))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) helpText() string {
	help := "←/→: browse • x: delete • q: quit"
	if len(m.undo) > 0 {
		help = "←/→: browse • x: delete • u: undo • q: quit"
	}
	return help
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}

func clampIndex(i, count int) int {
	if count == 0 {
		return selection.None
	}
	if i < 0 {
		return 0
	}
	if i >= count {
		return count - 1
	}
	return i
}

// Run starts the browser over an injected library. The events channel
// feeds library warnings into the log pane; pass nil to disable it.
func Run(lib *library.Library, events <-chan library.Event) error {
	p := tea.NewProgram(NewModel(lib, events), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
