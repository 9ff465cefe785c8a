package view

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestManager_ShowProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("before/after follow the shown index", prop.ForAll(
		func(n int, seq []int) bool {
			f := newFixture(n, 0)
			if err := f.mgr.Update(); err != nil {
				return false
			}
			for _, raw := range seq {
				idx := raw % n
				if err := f.mgr.Show(idx); err != nil {
					return false
				}
				for j, v := range f.mgr.Views() {
					switch {
					case j < idx && v.State() != Before,
						j == idx && v.State() != Shown,
						j > idx && v.State() != After:
						return false
					}
				}
			}
			return true
		},
		gen.IntRange(1, 12),
		gen.SliceOf(gen.IntRange(0, 1000)),
	))

	properties.TestingRun(t)
}
