package scene

import (
	"math"

	"github.com/df07/go-shader-raytracer/pkg/core"
	"github.com/df07/go-shader-raytracer/pkg/geometry"
	"github.com/df07/go-shader-raytracer/pkg/material"
	"github.com/go-gl/mathgl/mgl32"
)

// baseWorld creates a world with the camera behind the origin looking
// slightly down and one white light above and to the left
func baseWorld(width, height int) *World {
	camera := geometry.NewCamera(width, height, math.Pi/3)
	camera.SetTransform(core.ViewTransform(core.Point(0, 1.5, -5), core.Point(0, 1, 0), core.Vector(0, 1, 0)))

	w := NewWorld(camera)
	w.AddLight(material.NewPointLight(core.Point(-10, 10, -10), core.White))
	return w
}

// NewDefaultScene creates three matte spheres on a floor
func NewDefaultScene(width, height int) *World {
	w := baseWorld(width, height)

	floor := geometry.NewPlane()
	floor.Material.Colour = core.NewColour(1, 0.9, 0.9)
	floor.Material.Specular = 0
	w.AddShape(floor)

	middle := geometry.NewSphere()
	middle.SetTransform(core.Translation(-0.5, 1, 0.5))
	middle.Material.Colour = core.NewColour(0.1, 1, 0.5)
	middle.Material.Diffuse = 0.7
	middle.Material.Specular = 0.3
	w.AddShape(middle)

	right := geometry.NewSphere()
	right.SetTransform(core.Chain(core.Scaling(0.5, 0.5, 0.5), core.Translation(1.5, 0.5, -0.5)))
	right.Material.Colour = core.NewColour(0.5, 1, 0.1)
	right.Material.Diffuse = 0.7
	right.Material.Specular = 0.3
	w.AddShape(right)

	left := geometry.NewSphere()
	left.SetTransform(core.Chain(core.Scaling(0.33, 0.33, 0.33), core.Translation(-1.5, 0.33, -0.75)))
	left.Material.Colour = core.NewColour(1, 0.8, 0.1)
	left.Material.Diffuse = 0.7
	left.Material.Specular = 0.3
	w.AddShape(left)

	return w
}

// NewPatternsScene shows every pattern kind on slightly reflective spheres
// over a ringed, half-mirrored floor
func NewPatternsScene(width, height int) *World {
	w := baseWorld(width, height)

	grey := core.NewColour(0.5, 0.5, 0.5)
	red := core.NewColour(0.8, 0.2, 0.2)

	glossy := func(transform ...mgl32.Mat4) geometry.Shape {
		s := geometry.NewSphere()
		s.SetTransform(core.Chain(transform...))
		s.Material.Diffuse = 0.7
		s.Material.Specular = 0.3
		s.Material.Reflective = 0.15
		return s
	}

	middle := glossy(core.Translation(-0.5, 1, 0.5))
	middle.Material.Colour = core.NewColour(0.1, 1, 0.5)
	middle.Material.PatternIndex = w.AddPattern(material.NewStripePattern(grey, red))
	w.AddShape(middle)

	left := glossy(core.Scaling(0.33, 0.33, 0.33), core.Translation(-1.5, 0.33, -0.75))
	left.Material.PatternIndex = w.AddPattern(material.NewStripePattern(grey, red))
	w.AddShape(left)

	gradient := material.NewGradientPattern(core.NewColour(0, 0, 1), core.NewColour(1, 0, 0))
	gradient.TransformInverse = core.Chain(core.Translation(1, 0, 0), core.Scaling(0.5, 0.5, 0.5))
	right := glossy(core.Scaling(0.5, 0.5, 0.5), core.Translation(1.5, 0.5, -0.5))
	right.Material.PatternIndex = w.AddPattern(gradient)
	w.AddShape(right)

	checker := material.NewCheckerPattern(core.White, core.NewColour(0, 1, 0))
	checker.SetTransform(core.Scaling(0.25, 0.25, 0.25))
	back := glossy(core.Translation(2, 1, 4))
	back.Material.PatternIndex = w.AddPattern(checker)
	w.AddShape(back)

	rings := material.NewRingPattern(grey, red)
	rings.SetTransform(core.RotationY(-math.Pi / 2))
	floor := geometry.NewPlane()
	floor.Material.Specular = 0
	floor.Material.Reflective = 0.5
	floor.Material.PatternIndex = w.AddPattern(rings)
	w.AddShape(floor)

	return w
}

// NewMirrorsScene places a sphere between two facing mirrors so its
// reflections repeat until the bounce budget runs out
func NewMirrorsScene(width, height int) *World {
	camera := geometry.NewCamera(width, height, math.Pi/3)
	camera.SetTransform(core.ViewTransform(core.Point(0.5, 1.5, -2.5), core.Point(0, 1, 0), core.Vector(0, 1, 0)))

	// The light has to sit between the mirrors or they shadow everything
	w := NewWorld(camera)
	w.AddLight(material.NewPointLight(core.Point(0, 3, -4), core.White))

	floor := geometry.NewPlane()
	floor.Material.Specular = 0
	floor.Material.PatternIndex = w.AddPattern(material.NewCheckerPattern(core.NewColour(0.35, 0.35, 0.35), core.NewColour(0.65, 0.65, 0.65)))
	w.AddShape(floor)

	for _, x := range []float32{-2, 2} {
		mirror := geometry.NewPlane()
		mirror.SetTransform(core.Chain(core.RotationZ(math.Pi/2), core.Translation(x, 0, 0)))
		mirror.Material.Colour = core.NewColour(0.1, 0.1, 0.1)
		mirror.Material.Diffuse = 0.1
		mirror.Material.Specular = 1
		mirror.Material.Shininess = 300
		mirror.Material.Reflective = 0.9
		w.AddShape(mirror)
	}

	ball := geometry.NewSphere()
	ball.SetTransform(core.Chain(core.Scaling(0.5, 0.5, 0.5), core.Translation(0, 0.5, 1)))
	ball.Material.Colour = core.NewColour(0.9, 0.2, 0.1)
	ball.Material.Diffuse = 0.7
	ball.Material.Specular = 0.3
	w.AddShape(ball)

	return w
}

// NewGlassScene shows a hollow glass sphere in front of a striped wall
func NewGlassScene(width, height int) *World {
	w := baseWorld(width, height)

	floor := geometry.NewPlane()
	floor.Material.Specular = 0
	floor.Material.Reflective = 0.1
	floor.Material.PatternIndex = w.AddPattern(material.NewCheckerPattern(core.White, core.Black))
	w.AddShape(floor)

	stripes := material.NewStripePattern(core.NewColour(0.2, 0.3, 0.8), core.NewColour(0.9, 0.9, 0.9))
	stripes.SetTransform(core.Scaling(0.5, 1, 1))
	wall := geometry.NewPlane()
	wall.SetTransform(core.Chain(core.RotationX(math.Pi/2), core.Translation(0, 0, 6)))
	wall.Material.Specular = 0
	wall.Material.PatternIndex = w.AddPattern(stripes)
	w.AddShape(wall)

	glass := glassSphere()
	glass.SetTransform(core.Translation(0, 1, 0))
	glass.Material.Colour = core.NewColour(0.05, 0.05, 0.05)
	glass.Material.Reflective = 0.9
	glass.Material.Shininess = 300
	w.AddShape(glass)

	bubble := glassSphere()
	bubble.SetTransform(core.Chain(core.Scaling(0.5, 0.5, 0.5), core.Translation(0, 1, 0)))
	bubble.Material.Colour = core.NewColour(0.05, 0.05, 0.05)
	bubble.Material.RefractiveIndex = 1.00029
	bubble.Material.Reflective = 0.9
	bubble.Material.Shininess = 300
	w.AddShape(bubble)

	return w
}

// glassSphere returns a fully transparent sphere with the index of glass
func glassSphere() geometry.Shape {
	s := geometry.NewSphere()
	s.Material.Diffuse = 0.1
	s.Material.Transparency = 1
	s.Material.RefractiveIndex = 1.5
	return s
}
