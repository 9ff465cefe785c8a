package ui

import (
	"os"
	"strconv"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Theme is a colour scheme for line oriented output: export progress,
// summaries and error messages. Each colour field holds an ANSI escape code.
type Theme struct {
	// Name is the identifier accepted by SetTheme.
	Name string
	// Primary highlights counts and paths.
	Primary string
	// Secondary is used for less prominent text.
	Secondary string
	// Success marks a finished export.
	Success string
	// Warning marks degraded output, e.g. a slide rendered without notes.
	Warning string
	// Error marks failures.
	Error string
	// Bold is the escape code for bold text.
	Bold string
	// Reset clears all formatting.
	Reset string

	tui TUITheme
}

// TUITheme is the lipgloss palette of the terminal host.
type TUITheme struct {
	Bg      lipgloss.TerminalColor
	Text    lipgloss.TerminalColor
	Border  lipgloss.TerminalColor
	Accent  lipgloss.TerminalColor
	Warning lipgloss.TerminalColor
	Dim     lipgloss.TerminalColor
	Info    lipgloss.TerminalColor
}

func ansi256(n int) string { return "\033[38;5;" + strconv.Itoa(n) + "m" }

const (
	bold  = "\033[1m"
	reset = "\033[0m"
)

var (
	// DarkTheme suits dark terminal backgrounds.
	DarkTheme = Theme{
		Name: "dark", Bold: bold, Reset: reset,
		Primary: ansi256(75), Secondary: ansi256(246),
		Success: ansi256(114), Warning: ansi256(221), Error: ansi256(203),
		tui: TUITheme{
			Bg:      lipgloss.Color("#101418"),
			Text:    lipgloss.Color("#D8DEE9"),
			Border:  lipgloss.Color("#5E81AC"),
			Accent:  lipgloss.Color("#88C0D0"),
			Warning: lipgloss.Color("#EBCB8B"),
			Dim:     lipgloss.Color("#4C566A"),
			Info:    lipgloss.Color("#81A1C1"),
		},
	}

	// LightTheme suits light terminal backgrounds.
	LightTheme = Theme{
		Name: "light", Bold: bold, Reset: reset,
		Primary: ansi256(25), Secondary: ansi256(242),
		Success: ansi256(29), Warning: ansi256(136), Error: ansi256(160),
		tui: TUITheme{
			Bg:      lipgloss.Color("#FAFAF7"),
			Text:    lipgloss.Color("#2E3440"),
			Border:  lipgloss.Color("#3B6EA8"),
			Accent:  lipgloss.Color("#1D6A8A"),
			Warning: lipgloss.Color("#9A6700"),
			Dim:     lipgloss.Color("#9AA0A6"),
			Info:    lipgloss.Color("#2F5D9E"),
		},
	}

	// NoColorTheme disables colour. Used when NO_COLOR is set or --no-color
	// is given.
	NoColorTheme = Theme{Name: "none", tui: TUITheme{
		Bg: lipgloss.NoColor{}, Text: lipgloss.NoColor{}, Border: lipgloss.NoColor{},
		Accent: lipgloss.NoColor{}, Warning: lipgloss.NoColor{}, Dim: lipgloss.NoColor{},
		Info: lipgloss.NoColor{},
	}}
)

var (
	currentTheme = DarkTheme
	themeMutex   sync.RWMutex
)

// ThemeEnv selects the theme by name when colour is enabled.
const ThemeEnv = "DECKSHOW_THEME"

// TUI returns the lipgloss palette of t.
func (t Theme) TUI() TUITheme { return t.tui }

// Paint wraps s in color and the reset code. An empty color returns s.
func (t Theme) Paint(color, s string) string {
	if color == "" {
		return s
	}
	return color + s + t.Reset
}

// GetCurrentTUITheme returns the palette of the active theme.
func GetCurrentTUITheme() TUITheme {
	return GetCurrentTheme().tui
}

// GetCurrentTheme returns the currently active theme in a thread-safe manner.
func GetCurrentTheme() Theme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()
	return currentTheme
}

// SetCurrentTheme sets the currently active theme in a thread-safe manner.
// This is primarily used for testing purposes to restore state.
func SetCurrentTheme(t Theme) {
	themeMutex.Lock()
	defer themeMutex.Unlock()
	currentTheme = t
}

// SetTheme changes the active theme by name. Valid names are "dark",
// "light" and "none"; unknown names select the dark theme.
func SetTheme(name string) {
	themeMutex.Lock()
	defer themeMutex.Unlock()
	currentTheme = themeByName(name)
}

func themeByName(name string) Theme {
	switch name {
	case "light":
		return LightTheme
	case "none":
		return NoColorTheme
	default:
		return DarkTheme
	}
}

// InitTheme selects the theme from the noColor flag and the environment.
// It respects the NO_COLOR environment variable (https://no-color.org/):
// any value disables colour. Otherwise DECKSHOW_THEME names the theme.
func InitTheme(noColor bool) {
	themeMutex.Lock()
	defer themeMutex.Unlock()

	if noColor {
		currentTheme = NoColorTheme
		return
	}
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		currentTheme = NoColorTheme
		return
	}
	currentTheme = themeByName(os.Getenv(ThemeEnv))
}
