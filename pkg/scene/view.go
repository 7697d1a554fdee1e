package scene

import (
	"github.com/df07/go-shader-raytracer/pkg/core"
	"github.com/df07/go-shader-raytracer/pkg/geometry"
	"github.com/df07/go-shader-raytracer/pkg/material"
	"github.com/go-gl/mathgl/mgl32"
)

// ReflectionDepth bounds the number of rays traced per pixel
const ReflectionDepth = 5

// WorldView is the frozen, read-only form of a World. All methods are safe
// to call concurrently and none of them allocate.
type WorldView struct {
	camera   geometry.Camera
	shapes   []geometry.Shape
	lights   []material.PointLight
	patterns []material.Pattern
}

// Camera returns the camera the view renders through
func (v *WorldView) Camera() geometry.Camera {
	return v.camera
}

// WithCamera returns a view over the same scene data seen through camera
func (v *WorldView) WithCamera(camera geometry.Camera) WorldView {
	view := *v
	view.camera = camera
	return view
}

// ShapeCount returns the number of shapes
func (v *WorldView) ShapeCount() int { return len(v.shapes) }

// LightCount returns the number of lights
func (v *WorldView) LightCount() int { return len(v.lights) }

// PatternCount returns the number of patterns
func (v *WorldView) PatternCount() int { return len(v.patterns) }

// Shape returns the shape at index i. The result must not be modified.
// Precondition: i < ShapeCount().
func (v *WorldView) Shape(i uint32) *geometry.Shape {
	if core.DebugChecks && int(i) >= len(v.shapes) {
		core.Violation("shape index %d out of range [0, %d)", i, len(v.shapes))
	}
	return &v.shapes[i]
}

// Light returns the light at index i
func (v *WorldView) Light(i int) material.PointLight {
	return v.lights[i]
}

// Pattern returns the pattern at index i
func (v *WorldView) Pattern(i int) material.Pattern {
	return v.patterns[i]
}

// Intersect collects the intersections of ray with every shape into xs
func (v *WorldView) Intersect(ray core.Ray, xs *core.Intersections) {
	for i := range v.shapes {
		v.shapes[i].Intersect(ray, xs)
	}
}

// IsShadowed reports whether any shape lies between point and a light at
// lightPosition
func (v *WorldView) IsShadowed(lightPosition, point mgl32.Vec4) bool {
	toLight := lightPosition.Sub(point)
	distanceSquared := toLight.Dot(toLight)

	var xs core.Intersections
	v.Intersect(core.NewRay(point, toLight.Normalize()), &xs)
	if !xs.HasHit() {
		return false
	}

	// A hit beyond the light does not block it
	t := xs.Hit().T
	return t*t < distanceSquared
}

// ShadeHit returns the local colour at comps summed over every light
func (v *WorldView) ShadeHit(comps *Comps) core.Colour {
	shape := v.Shape(comps.Shape)
	m := &shape.Material
	base := m.ColourAt(v.patterns, shape.ObjectPoint(comps.Point))

	colour := core.Black
	for i := range v.lights {
		light := v.lights[i]
		shadowed := v.IsShadowed(light.Position, comps.OverPoint)
		colour = colour.Add(m.LightingColour(base, light, comps.OverPoint, comps.Eye, comps.Normal, shadowed))
	}
	return colour
}

// ColorAt traces ray and returns its unclamped colour. Reflected and
// refracted rays are queued instead of recursed into; at most
// ReflectionDepth rays are traced and rays carrying less than Epsilon of
// the pixel are never queued.
func (v *WorldView) ColorAt(ray core.Ray) core.Colour {
	return v.colorAt(ray, nil)
}

// colorAt is ColorAt with an optional callback invoked for every traced ray
// with its bounce number and carried weight
func (v *WorldView) colorAt(first core.Ray, visit func(bounce int, weight float32)) core.Colour {
	colour := core.Black
	var queue RayQueue
	var xs core.Intersections
	queue.Push(first, 1)

	for bounce := 0; bounce < ReflectionDepth && !queue.IsEmpty(); bounce++ {
		ray, weight := queue.Pop()
		if visit != nil {
			visit(bounce, weight)
		}

		xs.Clear()
		v.Intersect(ray, &xs)
		if !xs.HasHit() {
			continue
		}

		comps := v.PrepareComps(xs.Hit(), ray, &xs)
		colour = colour.Add(v.ShadeHit(&comps).Multiply(weight))

		m := &v.Shape(comps.Shape).Material
		if reflectWeight := weight * m.Reflective; reflectWeight >= core.Epsilon {
			queue.Push(core.NewRay(comps.OverPoint, comps.Reflect), reflectWeight)
		}
		if refractWeight := weight * m.Transparency; refractWeight >= core.Epsilon {
			if direction, ok := refracted(&comps); ok {
				queue.Push(core.NewRay(comps.UnderPoint, direction), refractWeight)
			}
		}
	}
	return colour
}

// PixelColour renders one pixel through the view's camera
func (v *WorldView) PixelColour(x, y int) core.Colour {
	return v.ColorAt(v.camera.RayForPixel(float32(x), float32(y)))
}
