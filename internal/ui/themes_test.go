package ui

import (
	"os"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestInitTheme(t *testing.T) {
	defer SetCurrentTheme(GetCurrentTheme())

	tests := []struct {
		name    string
		noColor bool
		env     map[string]string
		want    string
	}{
		{"default", false, nil, "dark"},
		{"flag", true, nil, "none"},
		{"NO_COLOR", false, map[string]string{"NO_COLOR": ""}, "none"},
		{"theme env", false, map[string]string{ThemeEnv: "light"}, "light"},
		{"unknown theme", false, map[string]string{ThemeEnv: "neon"}, "dark"},
		{"NO_COLOR beats theme", false, map[string]string{"NO_COLOR": "1", ThemeEnv: "light"}, "none"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, set := os.LookupEnv("NO_COLOR"); set && tt.want != "none" {
				t.Skip("NO_COLOR is set in the test environment")
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			InitTheme(tt.noColor)
			if got := GetCurrentTheme().Name; got != tt.want {
				t.Errorf("theme = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGetCurrentTUITheme(t *testing.T) {
	defer SetCurrentTheme(GetCurrentTheme())

	SetTheme("none")
	if _, ok := GetCurrentTUITheme().Text.(lipgloss.NoColor); !ok {
		t.Error("no-color theme should use lipgloss.NoColor")
	}
	SetTheme("light")
	if GetCurrentTUITheme() != LightTheme.TUI() {
		t.Error("light palette not selected")
	}
}

func TestTheme_Paint(t *testing.T) {
	t.Parallel()
	if got := NoColorTheme.Paint(NoColorTheme.Success, "done"); got != "done" {
		t.Errorf("no-color Paint = %q", got)
	}
	want := DarkTheme.Success + "done" + DarkTheme.Reset
	if got := DarkTheme.Paint(DarkTheme.Success, "done"); got != want {
		t.Errorf("Paint = %q, want %q", got, want)
	}
}
