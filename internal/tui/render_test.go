package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/deckshow/internal/geometry"
	"github.com/agbru/deckshow/internal/mode"
	"github.com/agbru/deckshow/internal/orchestration"
	"github.com/agbru/deckshow/internal/scaler"
	"github.com/agbru/deckshow/internal/surface"
	"github.com/agbru/deckshow/internal/view"
)

type stubSlide struct {
	index          int
	content, notes string
}

func (s stubSlide) Index() int      { return s.index }
func (s stubSlide) Content() string { return s.content }
func (s stubSlide) Notes() string   { return s.notes }

// testContainer builds the region tree the engine maintains: a slides area
// with one visible slide and a widget, a preview area, notes, help and pause.
func testContainer(classes ...string) *surface.Region {
	root := surface.NewRegion("root", orchestration.ClassContainer)
	for _, c := range classes {
		root.AddClass(c)
	}

	slides := surface.NewRegion("slides", orchestration.ClassSlidesArea)
	slides.SetSize(480, 320)
	shown := surface.NewRegion("slide-0", view.ClassContainer, view.ClassVisible)
	sc := surface.NewRegion("slide-0-scaler", view.ClassScaler)
	sc.SetSize(320, 240)
	sc.SetTransform(surface.Transform{Scale: 1, Left: 16, Top: 16})
	sc.SetContent("Hello deck")
	shown.Append(sc)
	hidden := surface.NewRegion("slide-1", view.ClassContainer)
	other := surface.NewRegion("slide-1-scaler", view.ClassScaler)
	other.SetContent("Second slide")
	hidden.Append(other)
	widget := surface.NewRegion("number")
	widget.SetContent("1 / 2")
	slides.Append(shown)
	slides.Append(hidden)
	slides.Append(widget)
	root.Append(slides)

	preview := surface.NewRegion("preview", orchestration.ClassPreviewArea)
	preview.SetSize(320, 128)
	next := surface.NewRegion("preview-1", view.ClassContainer)
	nextScaler := surface.NewRegion("preview-1-scaler", view.ClassScaler)
	nextScaler.SetSize(160, 96)
	nextScaler.SetTransform(surface.Transform{Scale: 1})
	nextScaler.SetContent("Up next")
	next.Append(nextScaler)
	preview.Append(next)
	root.Append(preview)

	notes := surface.NewRegion("notes", view.ClassNotesArea)
	notes.SetContent("Speaker notes")
	root.Append(notes)

	help := surface.NewRegion("help", orchestration.ClassHelp)
	help.SetSize(400, 200)
	help.SetTransform(surface.Transform{Scale: 1})
	help.SetContent("Keyboard shortcuts")
	root.Append(help)

	pause := surface.NewRegion("pause", orchestration.ClassPause)
	text := surface.NewRegion("pause-text", orchestration.ClassPauseText)
	text.SetContent("Paused")
	pause.Append(text)
	root.Append(pause)
	return root
}

func assertBlock(t *testing.T, out string, w, h int) {
	t.Helper()
	if got := lipgloss.Height(out); got != h {
		t.Errorf("height = %d, want %d", got, h)
	}
	if got := lipgloss.Width(out); got > w {
		t.Errorf("width = %d, want at most %d", got, w)
	}
}

func TestRenderContainer_Normal(t *testing.T) {
	out := renderContainer(testContainer(), 60, 20)
	assertBlock(t, out, 60, 20)

	if !strings.Contains(out, "Hello deck") {
		t.Error("visible slide not drawn")
	}
	if strings.Contains(out, "Second slide") {
		t.Error("hidden slide drawn")
	}
	if strings.Contains(out, "Speaker notes") || strings.Contains(out, "Up next") {
		t.Error("presenter regions drawn outside presenter mode")
	}
	lines := strings.Split(out, "\n")
	if !strings.Contains(lines[len(lines)-1], "1 / 2") {
		t.Errorf("widgets not on the last line: %q", lines[len(lines)-1])
	}
}

func TestRenderContainer_Overlays(t *testing.T) {
	tests := []struct {
		name    string
		mode    mode.Mode
		want    string
		notWant string
	}{
		{"blackout", mode.Blackout, "", "Hello deck"},
		{"paused", mode.Paused, "Paused", "Hello deck"},
		{"help", mode.Help, "Keyboard shortcuts", "Hello deck"},
		{"mirrored", mode.Mirrored, "kced olleH", "Hello deck"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := renderContainer(testContainer(tt.mode.Class()), 60, 20)
			assertBlock(t, out, 60, 20)
			if tt.want != "" && !strings.Contains(out, tt.want) {
				t.Errorf("output missing %q", tt.want)
			}
			if strings.Contains(out, tt.notWant) {
				t.Errorf("output unexpectedly contains %q", tt.notWant)
			}
		})
	}
}

func TestRenderContainer_Presenter(t *testing.T) {
	out := renderContainer(testContainer(mode.Presenter.Class()), 100, 20)
	assertBlock(t, out, 100, 20)

	for _, want := range []string{"Hello deck", "Up next", "Speaker notes"} {
		if !strings.Contains(out, want) {
			t.Errorf("presenter view missing %q", want)
		}
	}
}

func TestRenderContainer_Degenerate(t *testing.T) {
	if out := renderContainer(testContainer(), 0, 10); out != "" {
		t.Errorf("zero width rendered %q", out)
	}
	empty := surface.NewRegion("root", orchestration.ClassContainer)
	assertBlock(t, renderContainer(empty, 10, 4), 10, 4)
}

func TestRenderPane(t *testing.T) {
	h := NewHost(40, 11)
	h.Deck().Region().Append(testContainer().Children()[0])
	assertBlock(t, RenderPane(h.Deck()), 40, 10)
}

func TestRenderPage(t *testing.T) {
	sc := scaler.New()
	v := view.NewSlideView(stubSlide{content: "# Title", notes: "Remember the demo"}, sc)
	v.Scale(geometry.Box{Width: 908, Height: 681})

	page, err := RenderPage(v, orchestration.PrintEvent{PageWidth: 908, PageHeight: 681})
	if err != nil {
		t.Fatalf("RenderPage: %v", err)
	}
	if !strings.Contains(page, "# Title") {
		t.Error("page missing slide content")
	}
	if strings.Contains(page, "Remember the demo") {
		t.Error("landscape page should not carry notes")
	}
	if strings.Contains(page, "\x1b[") {
		t.Error("page contains escape sequences")
	}
	for i, l := range strings.Split(page, "\n") {
		if strings.HasSuffix(l, " ") {
			t.Errorf("line %d has trailing blanks", i)
		}
	}
}

func TestRenderPage_PortraitNotes(t *testing.T) {
	sc := scaler.New()
	v := view.NewSlideView(stubSlide{content: "# Title", notes: "Remember the demo"}, sc)
	slideHeight := 681 * orchestration.PortraitSlideHeightRatio
	v.Scale(geometry.Box{Width: 908, Height: slideHeight})
	v.Scalable().SetTop(orchestration.PortraitSlideTop)
	v.Notes().SetTop(slideHeight + orchestration.PortraitNotesGap)

	page, err := RenderPage(v, orchestration.PrintEvent{PageWidth: 908, PageHeight: 681, Portrait: true})
	if err != nil {
		t.Fatalf("RenderPage: %v", err)
	}
	lines := strings.Split(page, "\n")
	row := cells(slideHeight+orchestration.PortraitNotesGap, CellHeight)
	if row >= len(lines) || lines[row] != "Remember the demo" {
		t.Errorf("notes not at row %d:\n%s", row, page)
	}
}

func TestRenderPage_TooSmall(t *testing.T) {
	v := view.NewSlideView(stubSlide{content: "x"}, scaler.New())
	if _, err := RenderPage(v, orchestration.PrintEvent{PageWidth: 4, PageHeight: 4}); err == nil {
		t.Error("expected an error for a page smaller than a cell")
	}
}

func TestClip(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in         string
		cols, rows int
		want       string
	}{
		{"abc\ndef\nghi", 2, 2, "ab\nde"},
		{"héllo", 3, 1, "hél"},
		{"abc", 0, 1, ""},
		{"abc", 5, 5, "abc"},
	}
	for _, tt := range tests {
		if got := clip(tt.in, tt.cols, tt.rows); got != tt.want {
			t.Errorf("clip(%q, %d, %d) = %q, want %q", tt.in, tt.cols, tt.rows, got, tt.want)
		}
	}
}

func TestMirrorText(t *testing.T) {
	t.Parallel()
	if got := mirrorText("ab\ncde"); got != "ba\nedc" {
		t.Errorf("mirrorText = %q", got)
	}
}

func TestCells(t *testing.T) {
	t.Parallel()
	tests := []struct {
		units, cell float64
		want        int
	}{
		{80, CellWidth, 10},
		{84, CellWidth, 11},
		{-5, CellWidth, 0},
		{0, CellHeight, 0},
	}
	for _, tt := range tests {
		if got := cells(tt.units, tt.cell); got != tt.want {
			t.Errorf("cells(%v, %v) = %d, want %d", tt.units, tt.cell, got, tt.want)
		}
	}
}
