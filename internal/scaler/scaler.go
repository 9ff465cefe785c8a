// Package scaler computes the uniform scale factor that fits slide content
// into a target box and writes it onto surface regions.
package scaler

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	apperrors "github.com/agbru/deckshow/internal/errors"
	"github.com/agbru/deckshow/internal/geometry"
	"github.com/agbru/deckshow/internal/logging"
	"github.com/agbru/deckshow/internal/surface"
)

const (
	// ReferenceWidth and ReferenceHeight are the base content box at 4:3.
	ReferenceWidth  = 908
	ReferenceHeight = 681

	// DefaultRatio is the aspect ratio used when none is configured.
	DefaultRatio = "4:3"
)

// Ratio is a parsed "W:H" aspect ratio.
type Ratio struct {
	Width  float64
	Height float64
}

// Value returns Width/Height.
func (r Ratio) Value() float64 { return r.Width / r.Height }

func (r Ratio) String() string {
	return strconv.FormatFloat(r.Width, 'g', -1, 64) + ":" + strconv.FormatFloat(r.Height, 'g', -1, 64)
}

// ParseRatio parses a "W:H" string with positive components.
func ParseRatio(s string) (Ratio, error) {
	w, h, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return Ratio{}, apperrors.ValidationError{Field: "ratio", Message: fmt.Sprintf("%q is not of the form W:H", s)}
	}
	wf, err1 := strconv.ParseFloat(strings.TrimSpace(w), 64)
	hf, err2 := strconv.ParseFloat(strings.TrimSpace(h), 64)
	if err1 != nil || err2 != nil || !(wf > 0) || !(hf > 0) || math.IsInf(wf, 0) || math.IsInf(hf, 0) {
		return Ratio{}, apperrors.ValidationError{Field: "ratio", Message: fmt.Sprintf("%q must have two positive numbers", s)}
	}
	return Ratio{Width: wf, Height: hf}, nil
}

// DimensionsFor returns the base content box for ratio r.
func DimensionsFor(r Ratio) geometry.Box {
	return geometry.Box{
		Width:  math.Floor(ReferenceWidth / (4.0 / 3.0) * r.Value()),
		Height: ReferenceHeight,
	}
}

// Observer is notified of every computed factor.
type Observer func(factor float64, degenerate bool)

// Option configures a Scaler.
type Option func(*Scaler)

// WithMaxScale caps the factor. Zero or negative disables the cap.
func WithMaxScale(max float64) Option {
	return func(s *Scaler) { s.maxScale = max }
}

// WithLogger sets the logger used to report degenerate geometry.
func WithLogger(l logging.Logger) Option {
	return func(s *Scaler) { s.logger = l }
}

// WithObserver installs a factor observer.
func WithObserver(o Observer) Option {
	return func(s *Scaler) { s.observer = o }
}

// Scaler fits content boxes into target boxes.
type Scaler struct {
	ratio      Ratio
	dimensions geometry.Box
	maxScale   float64
	logger     logging.Logger
	observer   Observer
}

// New creates a Scaler for the default 4:3 ratio.
func New(opts ...Option) *Scaler {
	r, _ := ParseRatio(DefaultRatio)
	s := &Scaler{
		ratio:      r,
		dimensions: DimensionsFor(r),
		logger:     logging.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetRatio switches the base content box to ratio. An invalid ratio keeps
// the previous one.
func (s *Scaler) SetRatio(ratio string) error {
	r, err := ParseRatio(ratio)
	if err != nil {
		return err
	}
	s.ratio = r
	s.dimensions = DimensionsFor(r)
	return nil
}

// Ratio returns the current aspect ratio.
func (s *Scaler) Ratio() Ratio { return s.ratio }

// Dimensions returns the base content box for the current ratio.
func (s *Scaler) Dimensions() geometry.Box { return s.dimensions }

// ComputeScale returns min(target.W/content.W, target.H/content.H), capped by
// the configured maximum. A zero, negative or non-finite dimension on either
// box yields 1 and a *apperrors.DegenerateGeometryError.
func (s *Scaler) ComputeScale(content, target geometry.Box) (float64, error) {
	if content.Degenerate() || target.Degenerate() {
		return 1, &apperrors.DegenerateGeometryError{
			ContentWidth:  content.Width,
			ContentHeight: content.Height,
			TargetWidth:   target.Width,
			TargetHeight:  target.Height,
		}
	}
	factor := math.Min(target.Width/content.Width, target.Height/content.Height)
	if s.maxScale > 0 && factor > s.maxScale {
		factor = s.maxScale
	}
	return factor, nil
}

// ScaleToFit sizes region to the base dimensions and writes the factor and
// centring offsets that fit it into target. Degenerate geometry is logged
// and rendered at factor 1.
func (s *Scaler) ScaleToFit(region *surface.Region, target geometry.Box) {
	base := s.dimensions
	factor, err := s.ComputeScale(base, target)
	if err != nil {
		s.logger.Warn("scale to fit skipped",
			logging.String("region", region.ID()),
			logging.Err(err),
		)
	}
	if s.observer != nil {
		s.observer(factor, err != nil)
	}

	left, top := 0.0, 0.0
	if err == nil {
		left = math.Max(0, (target.Width-base.Width*factor)/2)
		top = math.Max(0, (target.Height-base.Height*factor)/2)
	}
	region.SetSize(base.Width, base.Height)
	region.SetTransform(surface.Transform{Scale: factor, Left: left, Top: top})
}
