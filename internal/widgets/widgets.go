// Package widgets provides the slide chrome attached to the slides area:
// the progress bar, the slide number and the navigation controls.
package widgets

import (
	"fmt"
	"strings"

	"github.com/agbru/deckshow/internal/events"
	"github.com/agbru/deckshow/internal/orchestration"
	"github.com/agbru/deckshow/internal/surface"
)

// Region classes of the widgets.
const (
	ClassProgressBar = "remark-progress-bar"
	ClassSlideNumber = "remark-slide-number"
	ClassControls    = "remark-controls"
)

// ProgressBarWidth is the width of the progress bar in cells.
const ProgressBarWidth = 40

// Bar draws a progress bar of length cells filled to fraction.
func Bar(fraction float64, length int) string {
	if fraction > 1.0 {
		fraction = 1.0
	}
	if fraction < 0.0 {
		fraction = 0.0
	}
	count := int(fraction * float64(length))
	var builder strings.Builder
	builder.Grow(length * 3)
	for i := 0; i < length; i++ {
		if i < count {
			builder.WriteRune('█')
		} else {
			builder.WriteRune('░')
		}
	}
	return builder.String()
}

// Factory builds the default widgets.
type Factory struct{}

// NewFactory returns the default widget factory.
func NewFactory() Factory { return Factory{} }

// ProgressBar returns a bar that tracks the shown slide.
func (Factory) ProgressBar(bus *events.Bus, show orchestration.SlideShow) orchestration.Widget {
	w := &ProgressBar{region: surface.NewRegion("progress-bar", ClassProgressBar), show: show}
	w.render(show.CurrentSlideIndex())
	bus.On(events.AfterShowSlide, w.handleShown)
	return w
}

// SlideNumber returns the "current / total" counter.
func (Factory) SlideNumber(bus *events.Bus, show orchestration.SlideShow) orchestration.Widget {
	w := &SlideNumber{region: surface.NewRegion("slide-number", ClassSlideNumber), show: show}
	w.render(show.CurrentSlideIndex())
	bus.On(events.AfterShowSlide, w.handleShown)
	return w
}

// Controls returns the navigation controls for the configured layout.
func (Factory) Controls(bus *events.Bus, show orchestration.SlideShow, opts orchestration.Options) orchestration.Widget {
	w := &Controls{
		region:     surface.NewRegion("controls", ClassControls),
		show:       show,
		layout:     opts.ControlsLayout,
		backArrows: opts.ControlsBackArrows,
		tutorial:   opts.ControlsTutorial,
	}
	w.region.SetAttr("layout", w.layout)
	w.render(show.CurrentSlideIndex())
	bus.On(events.AfterShowSlide, w.handleShown)
	return w
}

// ProgressBar shows how far through the deck the viewer is.
type ProgressBar struct {
	region *surface.Region
	show   orchestration.SlideShow
}

func (w *ProgressBar) Region() *surface.Region { return w.region }

func (w *ProgressBar) handleShown(ev events.Event) error {
	i, _ := ev.Int(0)
	w.render(i)
	return nil
}

func (w *ProgressBar) render(i int) {
	total := len(w.show.Slides())
	fraction := 0.0
	if total > 0 && i >= 0 {
		fraction = float64(i+1) / float64(total)
	}
	w.region.SetAttr("progress", fmt.Sprintf("%.3f", fraction))
	w.region.SetContent(Bar(fraction, ProgressBarWidth))
}

// SlideNumber shows the 1-based position of the shown slide.
type SlideNumber struct {
	region *surface.Region
	show   orchestration.SlideShow
}

func (w *SlideNumber) Region() *surface.Region { return w.region }

func (w *SlideNumber) handleShown(ev events.Event) error {
	i, _ := ev.Int(0)
	w.render(i)
	return nil
}

func (w *SlideNumber) render(i int) {
	if i < 0 {
		w.region.SetContent("")
		return
	}
	w.region.SetContent(fmt.Sprintf("%d / %d", i+1, len(w.show.Slides())))
}

// Controls shows where navigation leads.
type Controls struct {
	region     *surface.Region
	show       orchestration.SlideShow
	layout     string
	backArrows bool
	tutorial   bool
	navigated  bool
}

func (w *Controls) Region() *surface.Region { return w.region }

func (w *Controls) handleShown(ev events.Event) error {
	i, _ := ev.Int(0)
	if i > 0 {
		w.navigated = true
	}
	w.render(i)
	return nil
}

func (w *Controls) render(i int) {
	total := len(w.show.Slides())
	var b strings.Builder

	if w.backArrows {
		if i > 0 {
			b.WriteString("‹ ")
		} else {
			b.WriteString("  ")
		}
	}
	switch w.layout {
	case "dots":
		for j := 0; j < total; j++ {
			if j > 0 {
				b.WriteByte(' ')
			}
			if j == i {
				b.WriteRune('●')
			} else {
				b.WriteRune('○')
			}
		}
	default:
		if i+1 < total {
			b.WriteString("›")
		}
	}
	if w.backArrows && w.layout == "dots" && i+1 < total {
		b.WriteString(" ›")
	}
	if w.tutorial && !w.navigated {
		b.WriteString("  ← → to navigate")
	}
	w.region.SetContent(b.String())
}

var (
	_ orchestration.WidgetFactory = Factory{}
	_ orchestration.Widget        = (*ProgressBar)(nil)
	_ orchestration.Widget        = (*SlideNumber)(nil)
	_ orchestration.Widget        = (*Controls)(nil)
)
