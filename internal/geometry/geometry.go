// Package geometry holds the value types shared by the scaler, the view
// lifecycle and the orchestration engine: boxes, target geometries and page
// orientation.
package geometry

import (
	"fmt"
	"math"
)

// Orientation is the orientation of the current target box.
type Orientation int

const (
	// Landscape is the default screen and print orientation.
	Landscape Orientation = iota
	// Portrait is used for print while presenter mode is active.
	Portrait
)

// String returns the lower-case name of the orientation.
func (o Orientation) String() string {
	switch o {
	case Portrait:
		return "portrait"
	default:
		return "landscape"
	}
}

// ParseOrientation converts "portrait" or "landscape" to an Orientation.
func ParseOrientation(s string) (Orientation, error) {
	switch s {
	case "portrait":
		return Portrait, nil
	case "landscape", "":
		return Landscape, nil
	}
	return Landscape, fmt.Errorf("unknown orientation %q", s)
}

// Box is a width/height pair in abstract surface units.
type Box struct {
	Width  float64
	Height float64
}

// Degenerate reports whether the box cannot take part in a scale
// computation: a zero, negative, NaN or infinite dimension.
func (b Box) Degenerate() bool {
	return !usable(b.Width) || !usable(b.Height)
}

// Half returns the horizontal midpoint of the box.
func (b Box) Half() float64 {
	return b.Width / 2
}

// Scale returns the box multiplied by factor.
func (b Box) Scale(factor float64) Box {
	return Box{Width: b.Width * factor, Height: b.Height * factor}
}

// Key returns a compact "WxH" representation used to detect size changes.
func (b Box) Key() string {
	return fmt.Sprintf("%gx%g", b.Width, b.Height)
}

func usable(v float64) bool {
	return v > 0 && !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Geometry describes the current target box: the screen container, or a
// print page while a print notification is being handled.
type Geometry struct {
	Width       float64
	Height      float64
	Orientation Orientation
}

// Box returns the width/height part of the geometry.
func (g Geometry) Box() Box {
	return Box{Width: g.Width, Height: g.Height}
}

// FromBox builds a geometry whose orientation follows the aspect of b.
func FromBox(b Box) Geometry {
	o := Landscape
	if b.Height > b.Width {
		o = Portrait
	}
	return Geometry{Width: b.Width, Height: b.Height, Orientation: o}
}
