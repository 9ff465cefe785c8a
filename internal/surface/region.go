// Package surface provides the retained region tree the engine writes to.
// Host renderers (the terminal UI, the print exporter) read it back and
// project it onto their own output.
package surface

import (
	"sort"
	"strings"
)

// Transform is the scale and offset applied to a region's content.
type Transform struct {
	Scale float64
	Left  float64
	Top   float64
}

// Region is one node of the render tree. It is not safe for concurrent use;
// the engine and the host renderer share it on a single goroutine.
type Region struct {
	id        string
	classes   map[string]struct{}
	attrs     map[string]string
	width     float64
	height    float64
	transform Transform
	content   string
	children  []*Region
	parent    *Region
}

// NewRegion creates a detached region with the given classes.
func NewRegion(id string, classes ...string) *Region {
	r := &Region{
		id:        id,
		classes:   make(map[string]struct{}),
		attrs:     make(map[string]string),
		transform: Transform{Scale: 1},
	}
	for _, c := range classes {
		r.AddClass(c)
	}
	return r
}

// ID returns the region identifier.
func (r *Region) ID() string { return r.id }

// AddClass adds every whitespace separated class in c.
func (r *Region) AddClass(c string) {
	for _, f := range strings.Fields(c) {
		r.classes[f] = struct{}{}
	}
}

// RemoveClass removes class c.
func (r *Region) RemoveClass(c string) { delete(r.classes, c) }

// SetClass adds c when on, removes it otherwise.
func (r *Region) SetClass(c string, on bool) {
	if on {
		r.AddClass(c)
		return
	}
	r.RemoveClass(c)
}

// HasClass reports whether the region carries class c.
func (r *Region) HasClass(c string) bool {
	_, ok := r.classes[c]
	return ok
}

// Classes returns the sorted class list.
func (r *Region) Classes() []string {
	out := make([]string, 0, len(r.classes))
	for c := range r.classes {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// SetAttr sets an attribute. An empty value removes it.
func (r *Region) SetAttr(key, value string) {
	if value == "" {
		delete(r.attrs, key)
		return
	}
	r.attrs[key] = value
}

// Attr returns an attribute value.
func (r *Region) Attr(key string) (string, bool) {
	v, ok := r.attrs[key]
	return v, ok
}

// SetSize sets the unscaled size of the region.
func (r *Region) SetSize(width, height float64) {
	r.width, r.height = width, height
}

// Size returns the unscaled size of the region.
func (r *Region) Size() (width, height float64) { return r.width, r.height }

// SetTransform replaces the region transform.
func (r *Region) SetTransform(t Transform) { r.transform = t }

// SetTop overrides only the vertical offset.
func (r *Region) SetTop(top float64) { r.transform.Top = top }

// Transform returns the region transform.
func (r *Region) Transform() Transform { return r.transform }

// SetContent replaces the text content.
func (r *Region) SetContent(s string) { r.content = s }

// Content returns the text content.
func (r *Region) Content() string { return r.content }

// Append attaches child as the last child, detaching it from any previous parent.
func (r *Region) Append(child *Region) {
	if child.parent != nil {
		child.parent.Remove(child)
	}
	child.parent = r
	r.children = append(r.children, child)
}

// Remove detaches child. It is a no-op when child is not attached to r.
func (r *Region) Remove(child *Region) {
	for i, c := range r.children {
		if c == child {
			r.children = append(r.children[:i:i], r.children[i+1:]...)
			child.parent = nil
			return
		}
	}
}

// Clear detaches every child.
func (r *Region) Clear() {
	for _, c := range r.children {
		c.parent = nil
	}
	r.children = nil
}

// Children returns a copy of the child list.
func (r *Region) Children() []*Region {
	out := make([]*Region, len(r.children))
	copy(out, r.children)
	return out
}

// Parent returns the parent region, or nil when detached.
func (r *Region) Parent() *Region { return r.parent }

// Find returns the first descendant (depth first, self included) with id.
func (r *Region) Find(id string) *Region {
	if r.id == id {
		return r
	}
	for _, c := range r.children {
		if f := c.Find(id); f != nil {
			return f
		}
	}
	return nil
}

// FindClass returns the first descendant (depth first, self included) with class c.
func (r *Region) FindClass(c string) *Region {
	if r.HasClass(c) {
		return r
	}
	for _, ch := range r.children {
		if f := ch.FindClass(c); f != nil {
			return f
		}
	}
	return nil
}

// Clone returns a detached deep copy of the region and its subtree.
func (r *Region) Clone() *Region {
	c := &Region{
		id:        r.id,
		classes:   make(map[string]struct{}, len(r.classes)),
		attrs:     make(map[string]string, len(r.attrs)),
		width:     r.width,
		height:    r.height,
		transform: r.transform,
		content:   r.content,
	}
	for k := range r.classes {
		c.classes[k] = struct{}{}
	}
	for k, v := range r.attrs {
		c.attrs[k] = v
	}
	for _, ch := range r.children {
		c.Append(ch.Clone())
	}
	return c
}
