package view

import (
	"errors"

	apperrors "github.com/agbru/deckshow/internal/errors"
	"github.com/agbru/deckshow/internal/events"
	"github.com/agbru/deckshow/internal/geometry"
	"github.com/agbru/deckshow/internal/logging"
	"github.com/agbru/deckshow/internal/surface"
)

// Source is the deck authority as seen by the manager.
type Source interface {
	Slides() []Slide
	CurrentSlideIndex() int
}

// Manager owns the SlideView list.
type Manager struct {
	bus         events.Emitter
	source      Source
	fitter      Fitter
	slidesArea  *surface.Region
	previewArea *surface.Region
	views       []*SlideView
	logger      logging.Logger
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithLogger sets the manager logger.
func WithLogger(l logging.Logger) ManagerOption {
	return func(m *Manager) { m.logger = l }
}

// NewManager creates a manager with no views. Call Update to build them.
func NewManager(bus events.Emitter, source Source, fitter Fitter, slidesArea, previewArea *surface.Region, opts ...ManagerOption) *Manager {
	m := &Manager{
		bus:         bus,
		source:      source,
		fitter:      fitter,
		slidesArea:  slidesArea,
		previewArea: previewArea,
		logger:      logging.Nop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Update rebuilds the views and shows the current slide.
func (m *Manager) Update() error {
	m.Rebuild()
	return m.ShowCurrent()
}

// Rebuild discards every view and builds one per slide of the deck, in
// index order. The new views are attached but neither scaled nor shown.
func (m *Manager) Rebuild() {
	for _, v := range m.views {
		m.slidesArea.Remove(v.Container())
	}

	slides := m.source.Slides()
	views := make([]*SlideView, 0, len(slides))
	for _, s := range slides {
		v := NewSlideView(s, m.fitter)
		m.slidesArea.Append(v.Container())
		views = append(views, v)
	}
	m.views = views
	m.logger.Debug("slide views rebuilt", logging.Int("views", len(views)))
}

// ShowCurrent shows the deck's current slide, if it has one.
func (m *Manager) ShowCurrent() error {
	if current := m.source.CurrentSlideIndex(); current > -1 {
		return m.Show(current)
	}
	return nil
}

// Show shows view i, refreshes the preview area and recomputes the
// before/after state of every other view.
func (m *Manager) Show(i int) error {
	if err := m.check(i); err != nil {
		return err
	}
	var errs []error
	errs = append(errs, m.bus.Emit(events.BeforeShowSlide, i))
	m.views[i].Show()

	m.previewArea.Clear()
	if i+1 < len(m.views) {
		m.previewArea.Append(m.views[i+1].Container().Clone())
	}
	errs = append(errs, m.bus.Emit(events.AfterShowSlide, i))

	for j, v := range m.views {
		switch {
		case j < i:
			v.Prev()
		case j > i:
			v.Next()
		}
	}
	return errors.Join(errs...)
}

// Hide hides view i.
func (m *Manager) Hide(i int) error {
	if err := m.check(i); err != nil {
		return err
	}
	var errs []error
	errs = append(errs, m.bus.Emit(events.BeforeHideSlide, i))
	m.views[i].Hide()
	errs = append(errs, m.bus.Emit(events.AfterHideSlide, i))
	return errors.Join(errs...)
}

// Scale fits every view into target.
func (m *Manager) Scale(target geometry.Box) {
	for _, v := range m.views {
		v.Scale(target)
	}
}

// ScalePreview fits the preview copy, if any, into target.
func (m *Manager) ScalePreview(target geometry.Box) {
	children := m.previewArea.Children()
	if len(children) == 0 {
		return
	}
	if sc := children[0].FindClass(ClassScaler); sc != nil {
		m.fitter.ScaleToFit(sc, target)
	}
}

// Views returns a snapshot of the view list.
func (m *Manager) Views() []*SlideView {
	out := make([]*SlideView, len(m.views))
	copy(out, m.views)
	return out
}

// Len returns the number of views.
func (m *Manager) Len() int { return len(m.views) }

func (m *Manager) check(i int) error {
	if i < 0 || i >= len(m.views) {
		return &apperrors.InvalidSlideIndexError{Index: i, Count: len(m.views)}
	}
	return nil
}
