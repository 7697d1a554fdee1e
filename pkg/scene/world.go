package scene

import (
	"slices"

	"github.com/df07/go-shader-raytracer/pkg/core"
	"github.com/df07/go-shader-raytracer/pkg/geometry"
	"github.com/df07/go-shader-raytracer/pkg/material"
)

// World collects the shapes, lights and patterns of a scene while it is
// being built. Construction is single-threaded; once Freeze has been called
// the World must not be modified.
type World struct {
	Camera geometry.Camera

	shapes   []geometry.Shape
	lights   []material.PointLight
	patterns []material.Pattern
	frozen   bool
}

// NewWorld creates an empty world seen through camera
func NewWorld(camera geometry.Camera) *World {
	return &World{Camera: camera}
}

// AddShape appends a shape and returns its index. The shape's Index field
// is overwritten so it always matches its position in the world.
func (w *World) AddShape(s geometry.Shape) uint32 {
	if core.DebugChecks {
		core.Assert(!w.frozen, "AddShape after Freeze")
		err := s.Material.Validate()
		core.Assert(err == nil, "shape %d: %v", len(w.shapes), err)
	}

	s.Index = uint32(len(w.shapes))
	w.shapes = append(w.shapes, s)
	return s.Index
}

// AddLight appends a point light
func (w *World) AddLight(l material.PointLight) {
	if core.DebugChecks {
		core.Assert(!w.frozen, "AddLight after Freeze")
	}
	w.lights = append(w.lights, l)
}

// AddPattern appends a pattern and returns the index a Material refers to
// it by
func (w *World) AddPattern(p material.Pattern) int32 {
	if core.DebugChecks {
		core.Assert(!w.frozen, "AddPattern after Freeze")
	}
	w.patterns = append(w.patterns, p)
	return int32(len(w.patterns) - 1)
}

// Shapes returns the shapes added so far
func (w *World) Shapes() []geometry.Shape {
	return w.shapes
}

// Lights returns the lights added so far
func (w *World) Lights() []material.PointLight {
	return w.lights
}

// Patterns returns the patterns added so far
func (w *World) Patterns() []material.Pattern {
	return w.patterns
}

// Freeze returns an immutable snapshot of the world for rendering. Every
// material pattern reference must resolve by now.
func (w *World) Freeze() WorldView {
	if core.DebugChecks {
		for i := range w.shapes {
			idx := w.shapes[i].Material.PatternIndex
			core.Assert(idx < int32(len(w.patterns)), "shape %d references pattern %d of %d", i, idx, len(w.patterns))
		}
	}

	w.frozen = true
	return WorldView{
		camera:   w.Camera,
		shapes:   slices.Clone(w.shapes),
		lights:   slices.Clone(w.lights),
		patterns: slices.Clone(w.patterns),
	}
}
