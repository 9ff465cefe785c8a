package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/deckshow/internal/events"
	"github.com/agbru/deckshow/internal/mode"
)

// sidePanelText fills the part of the window an embedded deck leaves free.
const sidePanelText = "Embedded deck\n\nf  full screen\nq  quit"

// Status is the slide position shown in the header.
type Status interface {
	CurrentSlideIndex() int
	Len() int
}

// clockMsg refreshes the header clock.
type clockMsg time.Time

// Model is the root bubbletea model. It owns no presentation state: input is
// handed to the Host, which raises it on the bus, and View projects the
// region tree the engine maintains.
type Model struct {
	host   *Host
	modes  mode.State
	status Status
	header HeaderModel
	keymap KeyMap
}

// NewModel creates the model for host.
func NewModel(host *Host, modes mode.State, status Status, version string) Model {
	m := Model{
		host:   host,
		modes:  modes,
		status: status,
		header: NewHeaderModel(version),
		keymap: DefaultKeyMap(),
	}
	cols, _ := host.Size()
	m.header.SetWidth(cols)
	m.refreshHeader()
	return m
}

// Init returns the initial commands.
func (m Model) Init() tea.Cmd {
	return tea.Batch(append(m.host.drain(), clockCmd())...)
}

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keymap.Quit) {
			return m, tea.Quit
		}
		m.host.HandleKey(msg)

	case tea.WindowSizeMsg:
		m.host.HandleResize(msg.Width, msg.Height)
		m.header.SetWidth(msg.Width)

	case tea.MouseMsg:
		m.host.HandleMouse(msg)

	case RemoteMsg:
		m.host.HandleRemote(events.RemoteMessage(msg))

	case timerMsg:
		m.host.fire(msg.id)

	case clockMsg:
		cmds = append(cmds, clockCmd())
	}

	m.refreshHeader()
	cmds = append(cmds, m.host.drain()...)
	return m, tea.Batch(cmds...)
}

func (m *Model) refreshHeader() {
	m.header.SetSlide(m.status.CurrentSlideIndex(), m.status.Len())
	m.header.SetModes(m.modes, time.Now())
}

// View renders the window.
func (m Model) View() string {
	cols, _ := m.host.Size()
	if cols == 0 {
		return "Initializing..."
	}

	body := RenderPane(m.host.Deck())
	fullScreen := m.host.FullScreenElement() != nil
	if m.host.Embedded() && !fullScreen {
		_, _, w, h := m.host.Deck().Bounds()
		if rest := cols - w; rest > 2 && h > 2 {
			side := hostPaneStyle.
				Width(rest - hostPaneStyle.GetHorizontalBorderSize()).
				Height(h - hostPaneStyle.GetVerticalBorderSize()).
				Render(sidePanelText)
			body = lipgloss.JoinHorizontal(lipgloss.Top, body, side)
		}
	}
	if fullScreen {
		return body
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.header.View(), body)
}

// Run is the public entry point for the terminal host.
// It creates the bubbletea program, attaches the bridge and blocks until the
// user quits or ctx is done.
func Run(ctx context.Context, host *Host, bridge *Bridge, modes mode.State, status Status, version string) error {
	// Rebuild styles from the current ui theme (set by app.Run via InitTheme).
	initTUIStyles()

	model := NewModel(host, modes, status, version)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	bridge.ref.SetProgram(p)
	defer bridge.ref.SetProgram(nil)

	if _, err := p.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return fmt.Errorf("terminal host: %w", err)
	}
	return nil
}

// clockCmd returns a command that sends a clockMsg after one second.
func clockCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return clockMsg(t)
	})
}
