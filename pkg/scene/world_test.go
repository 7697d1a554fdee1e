package scene

import (
	"math"
	"testing"

	"github.com/df07/go-shader-raytracer/pkg/core"
	"github.com/df07/go-shader-raytracer/pkg/geometry"
	"github.com/df07/go-shader-raytracer/pkg/material"
)

// newTestWorld builds the two concentric spheres lit from the upper left
// that most shading tests use
func newTestWorld() *World {
	w := NewWorld(geometry.NewCamera(11, 11, math.Pi/2))
	w.AddLight(material.NewPointLight(core.Point(-10, 10, -10), core.White))

	outer := geometry.NewSphere()
	outer.Material.Colour = core.NewColour(0.8, 1.0, 0.6)
	outer.Material.Diffuse = 0.7
	outer.Material.Specular = 0.2
	w.AddShape(outer)

	inner := geometry.NewSphere()
	inner.SetTransform(core.Scaling(0.5, 0.5, 0.5))
	w.AddShape(inner)

	return w
}

func TestWorld_AddShapeAssignsIndex(t *testing.T) {
	w := NewWorld(geometry.NewCamera(10, 10, math.Pi/2))

	kinds := []geometry.ShapeKind{geometry.Sphere, geometry.Plane, geometry.Cube, geometry.Sphere, geometry.Plane}
	for i, kind := range kinds {
		s := geometry.NewShape(kind)
		// A stale index from elsewhere must be overwritten
		s.Index = 99
		if got := w.AddShape(s); got != uint32(i) {
			t.Errorf("AddShape returned %d, expected %d", got, i)
		}
	}

	for i, s := range w.Shapes() {
		if s.Index != uint32(i) {
			t.Errorf("shapes[%d].Index = %d", i, s.Index)
		}
	}

	view := w.Freeze()
	for i := 0; i < view.ShapeCount(); i++ {
		if got := view.Shape(uint32(i)).Index; got != uint32(i) {
			t.Errorf("view shape %d has index %d", i, got)
		}
	}
}

func TestWorld_AddPatternReturnsIndex(t *testing.T) {
	w := NewWorld(geometry.NewCamera(10, 10, math.Pi/2))

	first := w.AddPattern(material.NewStripePattern(core.White, core.Black))
	second := w.AddPattern(material.NewRingPattern(core.White, core.Black))
	if first != 0 || second != 1 {
		t.Errorf("Expected pattern indices 0 and 1, got %d and %d", first, second)
	}
	if len(w.Patterns()) != 2 {
		t.Errorf("Expected 2 patterns, got %d", len(w.Patterns()))
	}
}

func TestWorld_FreezeCopiesArrays(t *testing.T) {
	w := newTestWorld()
	view := w.Freeze()

	w.Shapes()[0].Material.Ambient = 1
	if view.Shape(0).Material.Ambient != 0.1 {
		t.Error("Mutating the world after Freeze changed the view")
	}
	if view.LightCount() != 1 || view.ShapeCount() != 2 || view.PatternCount() != 0 {
		t.Errorf("Unexpected view counts: %d lights, %d shapes, %d patterns",
			view.LightCount(), view.ShapeCount(), view.PatternCount())
	}
}

func TestWorld_ContractViolations(t *testing.T) {
	if !core.DebugChecks {
		t.Skip("contract checks compiled out")
	}

	tests := []struct {
		name   string
		action func(w *World)
	}{
		{"add after freeze", func(w *World) {
			w.Freeze()
			w.AddShape(geometry.NewSphere())
		}},
		{"invalid material", func(w *World) {
			s := geometry.NewSphere()
			s.Material.Diffuse = 1.5
			w.AddShape(s)
		}},
		{"dangling pattern", func(w *World) {
			s := geometry.NewSphere()
			s.Material.PatternIndex = 3
			w.AddShape(s)
			w.Freeze()
		}},
		{"shape index out of range", func(w *World) {
			view := w.Freeze()
			view.Shape(uint32(view.ShapeCount()))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("Expected a contract violation panic")
				}
			}()
			tt.action(newTestWorld())
		})
	}
}
