package surface

import (
	"reflect"
	"testing"
)

func TestRegion_Classes(t *testing.T) {
	t.Parallel()
	r := NewRegion("container", "remark-container", "remark-presenter-mode")

	if !r.HasClass("remark-container") {
		t.Error("expected remark-container class")
	}
	r.SetClass("remark-blackout-mode", true)
	r.SetClass("remark-presenter-mode", false)

	want := []string{"remark-blackout-mode", "remark-container"}
	if got := r.Classes(); !reflect.DeepEqual(got, want) {
		t.Errorf("Classes() = %v, want %v", got, want)
	}
}

func TestRegion_Attrs(t *testing.T) {
	t.Parallel()
	r := NewRegion("slides")
	r.SetAttr("transition", "fade")
	if v, ok := r.Attr("transition"); !ok || v != "fade" {
		t.Errorf("Attr(transition) = %q, %v", v, ok)
	}
	r.SetAttr("transition", "")
	if _, ok := r.Attr("transition"); ok {
		t.Error("empty value should remove the attribute")
	}
}

func TestRegion_AppendRemove(t *testing.T) {
	t.Parallel()
	a := NewRegion("a")
	b := NewRegion("b")
	child := NewRegion("child")

	a.Append(child)
	if child.Parent() != a {
		t.Fatal("child parent should be a")
	}
	b.Append(child)
	if len(a.Children()) != 0 {
		t.Errorf("a still has %d children after reparent", len(a.Children()))
	}
	if child.Parent() != b {
		t.Error("child parent should be b")
	}

	b.Remove(NewRegion("stranger"))
	if len(b.Children()) != 1 {
		t.Error("removing a stranger must not change children")
	}
	b.Clear()
	if len(b.Children()) != 0 || child.Parent() != nil {
		t.Error("Clear should detach every child")
	}
}

func TestRegion_FindAndClone(t *testing.T) {
	t.Parallel()
	root := NewRegion("root")
	inner := NewRegion("inner", "remark-slide-scaler")
	inner.SetContent("# Title")
	inner.SetSize(908, 681)
	inner.SetTransform(Transform{Scale: 0.5, Left: 10, Top: 4})
	root.Append(inner)

	if root.Find("inner") != inner {
		t.Error("Find(inner) failed")
	}
	if root.FindClass("remark-slide-scaler") != inner {
		t.Error("FindClass failed")
	}
	if root.Find("missing") != nil {
		t.Error("Find(missing) should be nil")
	}

	clone := root.Clone()
	ci := clone.Find("inner")
	if ci == inner || ci == nil {
		t.Fatal("clone must deep copy children")
	}
	if ci.Content() != "# Title" || ci.Transform().Scale != 0.5 {
		t.Errorf("clone lost state: %q %+v", ci.Content(), ci.Transform())
	}
	ci.SetContent("changed")
	if inner.Content() != "# Title" {
		t.Error("mutating the clone changed the original")
	}
	if clone.Parent() != nil {
		t.Error("clone should be detached")
	}
}

func TestRegion_DefaultTransform(t *testing.T) {
	t.Parallel()
	r := NewRegion("x")
	if r.Transform().Scale != 1 {
		t.Errorf("default scale = %v, want 1", r.Transform().Scale)
	}
	r.SetTop(20)
	if r.Transform().Top != 20 {
		t.Errorf("Top = %v, want 20", r.Transform().Top)
	}
}
