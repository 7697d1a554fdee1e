package loaders

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-shader-raytracer/pkg/core"
	"github.com/df07/go-shader-raytracer/pkg/geometry"
	"github.com/df07/go-shader-raytracer/pkg/material"
)

const cameraYAML = `
- add: camera
  width: 100
  height: 50
  field-of-view: 1.0471975
  from: [0, 1.5, -5]
  to: [0, 1, 0]
  up: [0, 1, 0]
`

func TestParseScene_Complete(t *testing.T) {
	content := cameraYAML + `
- add: light
  at: [-10, 10, -10]
  intensity: [1.5, 1.5, 1.5]

- add: plane
  material:
    color: [1, 0.9, 0.9]
    specular: 0
    pattern:
      type: checkers
      colors:
        - [1, 1, 1]
        - [0, 0, 0]
      transform:
        - [scale, 0.5, 0.5, 0.5]

- add: sphere
  transform:
    - [translate, -0.5, 1, 0.5]
  material:
    color: [0.1, 1, 0.5]
    diffuse: 0.7
    reflective: 0.25
    transparency: 0.5
    refractive-index: 1.5

- add: cube
  transform:
    - [rotate-y, 0.5]
    - [shear, 1, 0, 0, 0, 0, 0]
`
	world, err := ParseScene([]byte(content))
	if err != nil {
		t.Fatalf("ParseScene failed: %v", err)
	}

	if w, h := world.Camera.Size(); w != 100 || h != 50 {
		t.Errorf("Expected 100x50 camera, got %dx%d", w, h)
	}
	if math.Abs(float64(world.Camera.FieldOfView()-math.Pi/3)) > 1e-5 {
		t.Errorf("Expected field of view pi/3, got %f", world.Camera.FieldOfView())
	}

	lights := world.Lights()
	if len(lights) != 1 || lights[0].Intensity != core.NewColour(1.5, 1.5, 1.5) {
		t.Fatalf("Expected one overbright light, got %+v", lights)
	}
	if !core.ApproxEqualVec4(lights[0].Position, core.Point(-10, 10, -10), 1e-6) {
		t.Errorf("Unexpected light position %v", lights[0].Position)
	}

	shapes := world.Shapes()
	if len(shapes) != 3 {
		t.Fatalf("Expected 3 shapes, got %d", len(shapes))
	}
	kinds := []geometry.ShapeKind{geometry.Plane, geometry.Sphere, geometry.Cube}
	for i, kind := range kinds {
		if shapes[i].Kind != kind || shapes[i].Index != uint32(i) {
			t.Errorf("Shape %d: expected %s at index %d, got %s at %d", i, kind, i, shapes[i].Kind, shapes[i].Index)
		}
	}

	plane := shapes[0].Material
	if plane.PatternIndex != 0 || len(world.Patterns()) != 1 {
		t.Fatalf("Expected the plane to reference pattern 0, got %d of %d", plane.PatternIndex, len(world.Patterns()))
	}
	if p := world.Patterns()[0]; p.Kind != material.Checker || p.B != core.Black {
		t.Errorf("Unexpected pattern %+v", p)
	}
	if plane.Specular != 0 || plane.Diffuse != 0.9 {
		t.Errorf("Expected specular 0 over default diffuse, got %+v", plane)
	}

	sphere := shapes[1]
	if sphere.Material.RefractiveIndex != 1.5 || sphere.Material.Transparency != 0.5 || sphere.Material.Reflective != 0.25 {
		t.Errorf("Unexpected sphere material %+v", sphere.Material)
	}
	if !core.ApproxEqualVec4(sphere.ObjectPoint(core.Point(-0.5, 1, 0.5)), core.Origin, 1e-6) {
		t.Error("Sphere transform not applied")
	}
}

func TestParseScene_DefineAndExtend(t *testing.T) {
	content := cameraYAML + `
- define: white-material
  value:
    color: [1, 1, 1]
    diffuse: 0.7
    specular: 0.0

- define: blue-material
  extend: white-material
  value:
    color: [0.537, 0.831, 0.914]

- define: standard-transform
  value:
    - [translate, 1, -1, 1]
    - [scale, 0.5, 0.5, 0.5]

- define: large-object
  value:
    - standard-transform
    - [scale, 3.5, 3.5, 3.5]

- add: cube
  material: blue-material
  transform:
    - large-object
    - [translate, 8.5, 1.5, -0.5]
`
	world, err := ParseScene([]byte(content))
	if err != nil {
		t.Fatalf("ParseScene failed: %v", err)
	}

	cube := world.Shapes()[0]
	m := cube.Material
	if !m.Colour.ApproxEqual(core.NewColour(0.537, 0.831, 0.914), 1e-6) {
		t.Errorf("Expected extended colour, got %v", m.Colour.Vec3())
	}
	if m.Diffuse != 0.7 || m.Specular != 0 {
		t.Errorf("Expected inherited diffuse/specular, got %+v", m)
	}

	// translate(1,-1,1), scale 0.5, scale 3.5, translate(8.5,1.5,-0.5)
	expected := core.Chain(
		core.Translation(1, -1, 1),
		core.Scaling(0.5, 0.5, 0.5),
		core.Scaling(3.5, 3.5, 3.5),
		core.Translation(8.5, 1.5, -0.5),
	)
	if !core.ApproxEqualMat4(cube.Transform(), expected, 1e-4) {
		t.Errorf("Expected transform %v, got %v", expected, cube.Transform())
	}

	// (0,0,0) -> (1,-1,1) -> (0.5,-0.5,0.5) -> (1.75,-1.75,1.75) -> (10.25,-0.25,1.25)
	world0 := cube.Transform().Mul4x1(core.Origin)
	if !core.ApproxEqualVec4(world0, core.Point(10.25, -0.25, 1.25), 1e-4) {
		t.Errorf("Expected origin to map to (10.25, -0.25, 1.25), got %v", world0)
	}
}

func TestParseScene_Errors(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected error
	}{
		{"syntax error", "- add: camera\n  width: [1, 2\n", ErrScanFailed},
		{"empty document", "", ErrInvalidData},
		{"not a list", "add: camera\n", ErrInvalidData},
		{"missing camera", "- add: light\n  at: [0, 0, 0]\n  intensity: [1, 1, 1]\n", ErrInvalidCameraSize},
		{"zero width", strings.Replace(cameraYAML, "width: 100", "width: 0", 1), ErrInvalidCameraSize},
		{"negative height", strings.Replace(cameraYAML, "height: 50", "height: -5", 1), ErrInvalidCameraSize},
		{"fractional width", strings.Replace(cameraYAML, "width: 100", "width: 10.5", 1), ErrInvalidData},
		{"missing field of view", strings.Replace(cameraYAML, "field-of-view: 1.0471975", "", 1), ErrInvalidData},
		{"unknown object", cameraYAML + "- add: teapot\n", ErrInvalidData},
		{"missing add", cameraYAML + "- colour: red\n", ErrInvalidData},
		{"short vector", cameraYAML + "- add: light\n  at: [0, 0]\n  intensity: [1, 1, 1]\n", ErrInvalidData},
		{"undefined material", cameraYAML + "- add: sphere\n  material: missing\n", ErrInvalidData},
		{"undefined extend", cameraYAML + "- define: a\n  extend: b\n  value:\n    diffuse: 0.5\n", ErrInvalidData},
		{"out of range material", cameraYAML + "- add: sphere\n  material:\n    diffuse: 1.5\n", ErrInvalidData},
		{"negative refractive index", cameraYAML + "- add: sphere\n  material:\n    refractive-index: -1\n", ErrInvalidData},
		{"unknown pattern", cameraYAML + "- add: sphere\n  material:\n    pattern:\n      type: plaid\n      colors: [[1, 1, 1], [0, 0, 0]]\n", ErrInvalidData},
		{"unknown transform", cameraYAML + "- add: sphere\n  transform:\n    - [twist, 1]\n", ErrInvalidData},
		{"wrong arity", cameraYAML + "- add: sphere\n  transform:\n    - [translate, 1, 2]\n", ErrInvalidData},
		{"non-numeric argument", cameraYAML + "- add: sphere\n  transform:\n    - [scale, a, 1, 1]\n", ErrInvalidData},
		{"self-referencing define", cameraYAML + "- define: loop\n  value:\n    - loop\n- add: sphere\n  transform:\n    - loop\n", ErrInvalidData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			world, err := ParseScene([]byte(tt.content))
			if err == nil {
				t.Fatalf("Expected error, got world with %d shapes", len(world.Shapes()))
			}
			if !errors.Is(err, tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, err)
			}
		})
	}
}

func TestParseScene_MaterialErrorWrapsCause(t *testing.T) {
	_, err := ParseScene([]byte(cameraYAML + "- add: sphere\n  material:\n    ambient: 2\n"))
	if !errors.Is(err, material.ErrInvalidMaterial) {
		t.Errorf("Expected the material error to be wrapped, got %v", err)
	}
}

func TestLoadSceneFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yml")
	if err := os.WriteFile(path, []byte(cameraYAML+"- add: sphere\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	world, err := LoadSceneFile(path)
	if err != nil {
		t.Fatalf("LoadSceneFile failed: %v", err)
	}
	if len(world.Shapes()) != 1 {
		t.Errorf("Expected 1 shape, got %d", len(world.Shapes()))
	}

	if _, err := LoadSceneFile(filepath.Join(t.TempDir(), "missing.yml")); err == nil {
		t.Error("Expected error for a missing file")
	}
}

func TestLoadScene_RendersLikeBuiltWorld(t *testing.T) {
	world, err := LoadScene(strings.NewReader(cameraYAML + `
- add: light
  at: [-10, 10, -10]
  intensity: [1, 1, 1]
- add: sphere
  transform:
    - [translate, 0, 1, 0]
`))
	if err != nil {
		t.Fatalf("LoadScene failed: %v", err)
	}

	view := world.Freeze()
	if c := view.PixelColour(50, 25); c.R+c.G+c.B == 0 {
		t.Error("Expected the sphere at the centre of the image")
	}
}
