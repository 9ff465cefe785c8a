package view

import (
	"strconv"

	"github.com/agbru/deckshow/internal/geometry"
	"github.com/agbru/deckshow/internal/surface"
)

// State is the display state of a SlideView.
type State int

const (
	Hidden State = iota
	Shown
	Before
	After
)

func (s State) String() string {
	switch s {
	case Shown:
		return "shown"
	case Before:
		return "before"
	case After:
		return "after"
	default:
		return "hidden"
	}
}

// Region classes written by SlideView.
const (
	ClassContainer = "remark-slide-container"
	ClassScaler    = "remark-slide-scaler"
	ClassNotes     = "remark-slide-notes"
	ClassVisible   = "remark-visible"
	ClassFading    = "remark-fading"
	ClassBefore    = "remark-slide-container--before"
	ClassAfter     = "remark-slide-container--after"
)

var stateClasses = map[State]string{
	Hidden: ClassFading,
	Shown:  ClassVisible,
	Before: ClassBefore,
	After:  ClassAfter,
}

// Slide is the read-only slide handle the views wrap.
type Slide interface {
	Index() int
	Content() string
	Notes() string
}

// Fitter sizes and scales a region into a target box.
type Fitter interface {
	ScaleToFit(region *surface.Region, target geometry.Box)
	Dimensions() geometry.Box
}

// SlideView is the transient wrapper of one slide.
type SlideView struct {
	index     int
	state     State
	container *surface.Region
	scalable  *surface.Region
	notes     *surface.Region
	fitter    Fitter
}

// NewSlideView builds the regions for slide in the hidden state.
func NewSlideView(slide Slide, fitter Fitter) *SlideView {
	id := "slide-" + strconv.Itoa(slide.Index())
	v := &SlideView{
		index:     slide.Index(),
		container: surface.NewRegion(id, ClassContainer),
		scalable:  surface.NewRegion(id+"-scaler", ClassScaler),
		notes:     surface.NewRegion(id+"-notes", ClassNotes),
		fitter:    fitter,
	}
	v.scalable.SetContent(slide.Content())
	v.notes.SetContent(slide.Notes())
	v.container.Append(v.scalable)
	v.setState(Hidden)
	return v
}

// Index returns the slide index.
func (v *SlideView) Index() int { return v.index }

// State returns the display state.
func (v *SlideView) State() State { return v.state }

// Container returns the outer region attached to the slides area.
func (v *SlideView) Container() *surface.Region { return v.container }

// Scalable returns the region carrying the scale transform.
func (v *SlideView) Scalable() *surface.Region { return v.scalable }

// Notes returns the notes region.
func (v *SlideView) Notes() *surface.Region { return v.notes }

// Show marks the view shown.
func (v *SlideView) Show() { v.setState(Shown) }

// Hide marks the view hidden.
func (v *SlideView) Hide() { v.setState(Hidden) }

// Prev marks the view as preceding the shown one.
func (v *SlideView) Prev() { v.setState(Before) }

// Next marks the view as following the shown one.
func (v *SlideView) Next() { v.setState(After) }

// Scale fits the scalable region into target.
func (v *SlideView) Scale(target geometry.Box) {
	v.fitter.ScaleToFit(v.scalable, target)
}

func (v *SlideView) setState(s State) {
	v.state = s
	for st, class := range stateClasses {
		v.container.SetClass(class, st == s)
	}
}
