package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/deckshow/internal/mode"
	"github.com/agbru/deckshow/internal/orchestration"
	"github.com/agbru/deckshow/internal/surface"
	"github.com/agbru/deckshow/internal/view"
)

// cells converts a length in engine units to whole cells.
func cells(units, cell float64) int {
	if units <= 0 || math.IsNaN(units) || math.IsInf(units, 0) {
		return 0
	}
	return int(math.Round(units / cell))
}

// RenderPane projects the deck region tree of p onto a block of exactly the
// pane's size. Mode classes on the container decide what is drawn.
func RenderPane(p *Pane) string {
	_, _, w, h := p.Bounds()
	return renderContainer(p.Region(), w, h)
}

func renderContainer(container *surface.Region, w, h int) string {
	if w <= 0 || h <= 0 {
		return ""
	}
	active := func(m mode.Mode) bool { return container.HasClass(m.Class()) }

	switch {
	case active(mode.Blackout):
		return blackoutStyle.Width(w).Height(h).Render("")
	case active(mode.Paused):
		text := "Paused"
		if r := container.FindClass(orchestration.ClassPauseText); r != nil {
			text = r.Content()
		}
		return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, pauseStyle.Render(text))
	case active(mode.Help):
		if r := container.FindClass(orchestration.ClassHelp); r != nil {
			return renderHelp(r, w, h)
		}
	}

	mirrored := active(mode.Mirrored)
	slides := container.FindClass(orchestration.ClassSlidesArea)
	if slides == nil {
		return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, "")
	}
	if !active(mode.Presenter) {
		return renderSlidesArea(slides, w, h, mirrored)
	}

	sw, _ := slides.Size()
	slidesW := min(cells(sw, CellWidth), w)
	left := renderSlidesArea(slides, slidesW, h, mirrored)

	rightW := w - slidesW
	if rightW <= 0 {
		return left
	}
	var previewBlock string
	previewH := 0
	if preview := container.FindClass(orchestration.ClassPreviewArea); preview != nil {
		_, ph := preview.Size()
		previewH = min(cells(ph, CellHeight), h)
		previewBlock = renderPreview(preview, rightW, previewH)
	}
	notesH := h - previewH
	var notesBlock string
	if notes := container.FindClass(view.ClassNotesArea); notes != nil && notesH > 1 {
		notesBlock = notesStyle.Width(rightW).Height(notesH - 1).MaxHeight(notesH).Render(notes.Content())
	}
	right := lipgloss.JoinVertical(lipgloss.Left, previewBlock, notesBlock)
	right = lipgloss.Place(rightW, h, lipgloss.Left, lipgloss.Top, right)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}

// renderSlidesArea draws the visible slide at its transform and the widgets
// on the last line.
func renderSlidesArea(area *surface.Region, w, h int, mirrored bool) string {
	if w <= 0 || h <= 0 {
		return ""
	}
	var slide *surface.Region
	var widgets []string
	for _, child := range area.Children() {
		if child.HasClass(view.ClassContainer) {
			if child.HasClass(view.ClassVisible) {
				slide = child.FindClass(view.ClassScaler)
			}
			continue
		}
		if c := child.Content(); c != "" {
			widgets = append(widgets, widgetStyle.Render(c))
		}
	}

	block := lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, "")
	if slide != nil {
		block = renderScaled(slide, w, h, slideStyle, mirrored)
	}
	if len(widgets) == 0 {
		return block
	}
	lines := strings.Split(block, "\n")
	footer := lipgloss.NewStyle().Width(w).MaxWidth(w).Render(strings.Join(widgets, "  "))
	lines[len(lines)-1] = footer
	return strings.Join(lines, "\n")
}

func renderPreview(area *surface.Region, w, h int) string {
	children := area.Children()
	if len(children) == 0 || w <= 0 || h <= 0 {
		return lipgloss.Place(max(w, 0), max(h, 0), lipgloss.Left, lipgloss.Top, "")
	}
	sc := children[0].FindClass(view.ClassScaler)
	if sc == nil {
		return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, "")
	}
	return renderScaled(sc, w, h, previewStyle, false)
}

// renderScaled draws r as a bordered box of its scaled size at its offset
// inside a w by h block.
func renderScaled(r *surface.Region, w, h int, style lipgloss.Style, mirrored bool) string {
	t := r.Transform()
	bw, bh := r.Size()

	left := min(cells(t.Left, CellWidth), max(w-2, 0))
	top := min(cells(t.Top, CellHeight), max(h-2, 0))
	boxW := max(min(cells(bw*t.Scale, CellWidth), w-left), 2)
	boxH := max(min(cells(bh*t.Scale, CellHeight), h-top), 2)

	content := r.Content()
	align := lipgloss.Left
	if mirrored {
		content = mirrorText(content)
		align = lipgloss.Right
	}
	frameW, frameH := style.GetHorizontalFrameSize(), style.GetVerticalFrameSize()
	box := style.
		Width(max(boxW-style.GetHorizontalBorderSize(), 0)).
		Height(max(boxH-style.GetVerticalBorderSize(), 0)).
		MaxWidth(boxW).
		MaxHeight(boxH).
		Align(align).
		Render(clip(content, boxW-frameW, boxH-frameH))

	placed := lipgloss.NewStyle().MarginLeft(left).MarginTop(top).Render(box)
	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, placed)
}

func renderHelp(r *surface.Region, w, h int) string {
	t := r.Transform()
	bw, _ := r.Size()
	boxW := min(max(cells(bw*t.Scale, CellWidth), 20), w)
	box := helpStyle.Width(max(boxW-helpStyle.GetHorizontalBorderSize(), 0)).MaxHeight(h).Render(r.Content())
	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, box)
}

// clip keeps at most rows lines of s, each at most cols wide.
func clip(s string, cols, rows int) string {
	if cols <= 0 || rows <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > rows {
		lines = lines[:rows]
	}
	for i, l := range lines {
		if r := []rune(l); len(r) > cols {
			lines[i] = string(r[:cols])
		}
	}
	return strings.Join(lines, "\n")
}

// mirrorText reverses every line of s so it reads as in a mirror.
func mirrorText(s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		r := []rune(l)
		for a, b := 0, len(r)-1; a < b; a, b = a+1, b-1 {
			r[a], r[b] = r[b], r[a]
		}
		lines[i] = string(r)
	}
	return strings.Join(lines, "\n")
}

// RenderPage draws one slide on a page of the print event's size. Portrait
// pages carry the notes below the slide, at the offset the print layout wrote.
// It only reads the regions and may run concurrently for different views.
func RenderPage(v *view.SlideView, p orchestration.PrintEvent) (string, error) {
	w, h := cells(p.PageWidth, CellWidth), cells(p.PageHeight, CellHeight)
	if w < 2 || h < 2 {
		return "", fmt.Errorf("page %gx%g is smaller than one cell", p.PageWidth, p.PageHeight)
	}
	style := pageRenderer.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	page := renderScaled(v.Scalable(), w, h, style, false)
	if !p.Portrait {
		return trimRight(page), nil
	}

	lines := strings.Split(page, "\n")
	row := cells(v.Notes().Transform().Top, CellHeight)
	for i, note := range strings.Split(clip(v.Notes().Content(), w, h), "\n") {
		if row+i >= len(lines) {
			break
		}
		lines[row+i] = note
	}
	return trimRight(strings.Join(lines, "\n")), nil
}

// trimRight drops trailing blanks of every line and trailing empty lines.
func trimRight(s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}
