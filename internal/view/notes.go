package view

import (
	"errors"

	"github.com/agbru/deckshow/internal/events"
	"github.com/agbru/deckshow/internal/surface"
)

// ClassNotesArea marks the region holding the notes of the shown slide.
const ClassNotesArea = "remark-notes-area"

// NotesView copies the notes of the shown slide into the notes area.
type NotesView struct {
	area  *surface.Region
	views func() []*SlideView
}

// NewNotesView creates the notes area and subscribes to afterShowSlide.
func NewNotesView(bus events.Subscriber, views func() []*SlideView) *NotesView {
	n := &NotesView{
		area:  surface.NewRegion("notes-area", ClassNotesArea),
		views: views,
	}
	bus.On(events.AfterShowSlide, n.handleShown)
	return n
}

// Area returns the notes area region.
func (n *NotesView) Area() *surface.Region { return n.area }

func (n *NotesView) handleShown(ev events.Event) error {
	i, ok := ev.Int(0)
	if !ok {
		return errors.New("afterShowSlide: missing slide index")
	}
	views := n.views()
	if i < 0 || i >= len(views) {
		n.area.SetContent("")
		return nil
	}
	n.area.SetContent(views[i].Notes().Content())
	return nil
}
