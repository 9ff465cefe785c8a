package tui

import (
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/deckshow/internal/ui"
)

// Style variables for the terminal host.
// Initialized from the ui theme system via initTUIStyles().
var (
	slideStyle     lipgloss.Style
	previewStyle   lipgloss.Style
	notesStyle     lipgloss.Style
	helpStyle      lipgloss.Style
	pauseStyle     lipgloss.Style
	blackoutStyle  lipgloss.Style
	widgetStyle    lipgloss.Style
	hostPaneStyle  lipgloss.Style
	headerStyle    lipgloss.Style
	titleStyle     lipgloss.Style
	versionStyle   lipgloss.Style
	elapsedStyle   lipgloss.Style
	modeStyle      lipgloss.Style
	statusDimStyle lipgloss.Style
)

// pageRenderer never emits colour, so printed pages are plain text.
var pageRenderer = lipgloss.NewRenderer(io.Discard)

func init() {
	initTUIStyles()
}

// initTUIStyles rebuilds all styles from the current ui theme.
// Called at package init and again from Run() after InitTheme has been invoked.
func initTUIStyles() {
	t := ui.GetCurrentTUITheme()

	slideStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Foreground(t.Text).
		Padding(0, 1)

	previewStyle = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(t.Dim).
		Foreground(t.Dim)

	notesStyle = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), true, false, false, false).
		BorderForeground(t.Dim).
		Foreground(t.Info)

	helpStyle = lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(t.Accent).
		Foreground(t.Text).
		Padding(1, 2)

	pauseStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Warning)

	blackoutStyle = lipgloss.NewStyle().
		Background(lipgloss.Color("#000000"))

	widgetStyle = lipgloss.NewStyle().
		Foreground(t.Accent)

	hostPaneStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Dim).
		Foreground(t.Dim).
		Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent).
		Background(t.Bg).
		Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent)

	versionStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	elapsedStyle = lipgloss.NewStyle().
		Foreground(t.Accent)

	modeStyle = lipgloss.NewStyle().
		Foreground(t.Warning).
		Bold(true)

	statusDimStyle = lipgloss.NewStyle().
		Foreground(t.Dim)
}
