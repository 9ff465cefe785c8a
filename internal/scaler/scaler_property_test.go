package scaler

import (
	"math"
	"testing"

	"github.com/agbru/deckshow/internal/geometry"
	"github.com/agbru/deckshow/internal/surface"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestComputeScale_Properties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	dim := gen.Float64Range(1, 10000)

	properties.Property("scaled content fits the target", prop.ForAll(
		func(cw, ch, tw, th float64) bool {
			s := New()
			f, err := s.ComputeScale(geometry.Box{Width: cw, Height: ch}, geometry.Box{Width: tw, Height: th})
			if err != nil {
				return false
			}
			const eps = 1e-9
			return cw*f <= tw*(1+eps) && ch*f <= th*(1+eps)
		},
		dim, dim, dim, dim,
	))

	properties.Property("factor is positive and finite", prop.ForAll(
		func(cw, ch, tw, th float64) bool {
			f, _ := New().ComputeScale(geometry.Box{Width: cw, Height: ch}, geometry.Box{Width: tw, Height: th})
			return f > 0 && !math.IsInf(f, 0) && !math.IsNaN(f)
		},
		gen.Float64Range(-10, 10000), dim, gen.Float64Range(-10, 10000), dim,
	))

	properties.Property("cap is never exceeded", prop.ForAll(
		func(max, tw, th float64) bool {
			f, err := New(WithMaxScale(max)).ComputeScale(geometry.Box{Width: 10, Height: 10}, geometry.Box{Width: tw, Height: th})
			return err == nil && f <= max
		},
		gen.Float64Range(0.1, 5), dim, dim,
	))

	properties.Property("centring offsets are never negative", prop.ForAll(
		func(tw, th float64) bool {
			r := surface.NewRegion("p")
			New().ScaleToFit(r, geometry.Box{Width: tw, Height: th})
			tr := r.Transform()
			return tr.Left >= 0 && tr.Top >= 0
		},
		dim, dim,
	))

	properties.TestingRun(t)
}
