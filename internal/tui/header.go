package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/deckshow/internal/format"
	"github.com/agbru/deckshow/internal/mode"
)

// HeaderModel renders the status line: title, slide position, active modes
// and the presentation clock. The clock stops while the deck is paused.
type HeaderModel struct {
	startTime time.Time
	pausedAt  time.Time
	paused    time.Duration
	version   string
	width     int
	slide     int
	total     int
	modes     []string
}

// NewHeaderModel creates a new header.
func NewHeaderModel(version string) HeaderModel {
	return HeaderModel{
		startTime: time.Now(),
		version:   version,
	}
}

// SetWidth updates the available width.
func (h *HeaderModel) SetWidth(w int) {
	h.width = w
}

// SetSlide records the 0-based shown slide and the slide count.
func (h *HeaderModel) SetSlide(i, total int) {
	h.slide, h.total = i, total
}

// SetModes records the active modes and freezes or resumes the clock when
// pause mode changes.
func (h *HeaderModel) SetModes(state mode.State, now time.Time) {
	h.modes = h.modes[:0]
	for _, m := range mode.All {
		if state.Active(m) {
			h.modes = append(h.modes, string(m))
		}
	}
	paused := state.Active(mode.Paused)
	switch {
	case paused && h.pausedAt.IsZero():
		h.pausedAt = now
	case !paused && !h.pausedAt.IsZero():
		h.paused += now.Sub(h.pausedAt)
		h.pausedAt = time.Time{}
	}
}

// Elapsed returns the clock value at now.
func (h HeaderModel) Elapsed(now time.Time) time.Duration {
	if !h.pausedAt.IsZero() {
		now = h.pausedAt
	}
	return now.Sub(h.startTime) - h.paused
}

// View renders the header.
func (h HeaderModel) View() string {
	titleText := "deckshow"
	if h.version != "" && h.version != "dev" {
		titleText += " " + h.version
	}
	title := titleStyle.Render(titleText)
	pipe := versionStyle.Render(" | ")

	position := statusDimStyle.Render("no slides")
	if h.total > 0 {
		position = fmt.Sprintf("%d / %d", h.slide+1, h.total)
	}
	leftPart := title + pipe + position
	if len(h.modes) > 0 {
		leftPart += pipe + modeStyle.Render(strings.Join(h.modes, " "))
	}

	clock := elapsedStyle.Render(format.FormatClock(h.Elapsed(time.Now())))

	innerWidth := max(h.width-2, 0)
	gap := max(innerWidth-lipgloss.Width(leftPart)-lipgloss.Width(clock), 1)

	return headerStyle.Width(h.width).MaxWidth(h.width).Render(leftPart + strings.Repeat(" ", gap) + clock)
}
