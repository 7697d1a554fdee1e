package material

import (
	"math"
	"testing"

	"github.com/df07/go-shader-raytracer/pkg/core"
)

func TestLighting_ReferenceValues(t *testing.T) {
	m := DefaultMaterial()
	position := core.Origin
	normal := core.Vector(0, 0, -1)
	half := float32(math.Sqrt2 / 2)

	tests := []struct {
		name     string
		eye      [3]float32
		light    [3]float32
		inShadow bool
		expected float32
	}{
		{"eye between light and surface", [3]float32{0, 0, -1}, [3]float32{0, 0, -10}, false, 1.9},
		{"eye offset 45 degrees", [3]float32{0, half, -half}, [3]float32{0, 0, -10}, false, 1.0},
		{"light offset 45 degrees", [3]float32{0, 0, -1}, [3]float32{0, 10, -10}, false, 0.7364},
		{"eye in reflection path", [3]float32{0, -half, -half}, [3]float32{0, 10, -10}, false, 1.6364},
		{"light behind surface", [3]float32{0, 0, -1}, [3]float32{0, 0, 10}, false, 0.1},
		{"surface in shadow", [3]float32{0, 0, -1}, [3]float32{0, 0, -10}, true, 0.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			light := NewPointLight(core.Point(tt.light[0], tt.light[1], tt.light[2]), core.White)
			eye := core.Vector(tt.eye[0], tt.eye[1], tt.eye[2])

			got := m.Lighting(light, position, eye, normal, tt.inShadow)
			expected := core.NewColour(tt.expected, tt.expected, tt.expected)
			if !got.ApproxEqual(expected, 1e-3) {
				t.Errorf("Expected %v, got %v", expected.Vec3(), got.Vec3())
			}
		})
	}
}

func TestLighting_AmbientAlwaysPresent(t *testing.T) {
	m := DefaultMaterial()
	m.Colour = core.NewColour(1, 0.5, 0.25)
	light := NewPointLight(core.Point(0, 0, 10), core.White)

	got := m.Lighting(light, core.Origin, core.Vector(0, 0, -1), core.Vector(0, 0, -1), false)
	expected := core.NewColour(0.1, 0.05, 0.025)
	if !got.ApproxEqual(expected, 1e-6) {
		t.Errorf("Expected ambient only %v, got %v", expected.Vec3(), got.Vec3())
	}
}

func TestLightingColour_UsesBaseColour(t *testing.T) {
	m := DefaultMaterial()
	m.Ambient, m.Diffuse, m.Specular = 1, 0, 0
	light := NewPointLight(core.Point(0, 0, -10), core.White)

	base := core.NewColour(0, 1, 0)
	got := m.LightingColour(base, light, core.Origin, core.Vector(0, 0, -1), core.Vector(0, 0, -1), false)
	if !got.ApproxEqual(base, 1e-6) {
		t.Errorf("Expected base colour %v, got %v", base.Vec3(), got.Vec3())
	}
}

func TestLighting_LightIntensity(t *testing.T) {
	m := DefaultMaterial()
	eye := core.Vector(0, 0, -1)
	normal := core.Vector(0, 0, -1)

	tests := []struct {
		name      string
		intensity core.Colour
		inShadow  bool
		expected  core.Colour
	}{
		{"overbright light lit", core.NewColour(2, 2, 2), false, core.NewColour(3.7, 3.7, 3.7)},
		{"overbright light in shadow", core.NewColour(2, 2, 2), true, core.NewColour(0.1, 0.1, 0.1)},
		{"black light lit", core.Black, false, core.NewColour(0.1, 0.1, 0.1)},
		{"black light in shadow", core.Black, true, core.NewColour(0.1, 0.1, 0.1)},
		{"red light lit", core.NewColour(1, 0, 0), false, core.NewColour(1.9, 0.1, 0.1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			light := NewPointLight(core.Point(0, 0, -10), tt.intensity)
			got := m.Lighting(light, core.Origin, eye, normal, tt.inShadow)
			if !got.ApproxEqual(tt.expected, 1e-4) {
				t.Errorf("Expected %v, got %v", tt.expected.Vec3(), got.Vec3())
			}
		})
	}
}
