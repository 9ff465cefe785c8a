package e2e

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

const deckSource = `name: intro
# Terminal decks
???
Mention the remote control.
---
# Navigation
---
# Questions
`

// TestCLI_E2E builds the binary and runs it in export mode.
func TestCLI_E2E(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping binary build in short mode")
	}

	tmpDir := t.TempDir()
	binName := "deckshow"
	if runtime.GOOS == "windows" {
		binName = "deckshow.exe"
	}
	binPath := filepath.Join(tmpDir, binName)

	// go test runs from test/e2e; build from the module root.
	cmd := exec.Command("go", "build", "-o", binPath, "./cmd/deckshow")
	cmd.Dir = "../.."
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		t.Fatalf("Failed to build deckshow: %v", err)
	}

	deckPath := filepath.Join(tmpDir, "talk.md")
	if err := os.WriteFile(deckPath, []byte(deckSource), 0o600); err != nil {
		t.Fatal(err)
	}
	exportPath := filepath.Join(tmpDir, "talk.txt")

	tests := []struct {
		name     string
		args     []string
		wantOut  string // substring match (case-insensitive)
		wantCode int
	}{
		{
			name:     "Help",
			args:     []string{"--help"},
			wantOut:  "usage",
			wantCode: 0,
		},
		{
			name:     "Version Flag",
			args:     []string{"--version"},
			wantOut:  "deckshow",
			wantCode: 0,
		},
		{
			name:     "Export To Stdout",
			args:     []string{"--print", "-", deckPath},
			wantOut:  "# Navigation",
			wantCode: 0,
		},
		{
			name:     "Portrait Export Carries Notes",
			args:     []string{"--print", "-", "--portrait", deckPath},
			wantOut:  "Mention the remote control.",
			wantCode: 0,
		},
		{
			name:     "Export To File",
			args:     []string{"--print", exportPath, deckPath},
			wantOut:  "Exported 3 pages",
			wantCode: 0,
		},
		{
			name:     "Wide Ratio From Environment",
			args:     []string{"--print", "-", deckPath},
			wantOut:  "# Questions",
			wantCode: 0,
		},
		{
			name:     "Missing Deck",
			args:     []string{"--print", "-", filepath.Join(tmpDir, "missing.md")},
			wantOut:  "loading deck",
			wantCode: 2,
		},
		{
			name:     "No Deck Argument",
			args:     []string{},
			wantOut:  "configuration error",
			wantCode: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := exec.Command(binPath, tt.args...)
			cmd.Env = append(os.Environ(), "NO_COLOR=1")
			if tt.name == "Wide Ratio From Environment" {
				cmd.Env = append(cmd.Env, "DECKSHOW_OPT_RATIO=16:9")
			}
			output, err := cmd.CombinedOutput()
			outStr := string(output)

			if tt.wantCode == 0 {
				if err != nil {
					t.Errorf("Command failed unexpectedly: %v\nOutput: %s", err, outStr)
				}
			} else if exitErr, ok := err.(*exec.ExitError); !ok || exitErr.ExitCode() != tt.wantCode {
				t.Errorf("exit = %v, want code %d\nOutput: %s", err, tt.wantCode, outStr)
			}

			if tt.wantOut != "" && !strings.Contains(strings.ToLower(outStr), strings.ToLower(tt.wantOut)) {
				t.Errorf("Output missing expected string.\nExpected: %q\nGot:\n%s", tt.wantOut, outStr)
			}
		})
	}
}
