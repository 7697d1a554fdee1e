package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-shader-raytracer/pkg/core"
)

func TestCamera_PixelSize(t *testing.T) {
	tests := []struct {
		name          string
		hsize, vsize  int
		expectedPixel float32
	}{
		{"horizontal canvas", 200, 125, 0.01},
		{"vertical canvas", 125, 200, 0.01},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCamera(tt.hsize, tt.vsize, math.Pi/2)
			if math.Abs(float64(c.PixelSize()-tt.expectedPixel)) > 1e-5 {
				t.Errorf("Expected pixel size %f, got %f", tt.expectedPixel, c.PixelSize())
			}
		})
	}
}

func TestCamera_Resize(t *testing.T) {
	c := NewCamera(200, 125, math.Pi/2)
	c.Resize(125, 200)

	if w, h := c.Size(); w != 125 || h != 200 {
		t.Errorf("Expected 125x200, got %dx%d", w, h)
	}
	if math.Abs(float64(c.HalfHeight()-1)) > 1e-6 {
		t.Errorf("Expected half height 1 on a vertical canvas, got %f", c.HalfHeight())
	}
	if math.Abs(float64(c.HalfWidth()-0.625)) > 1e-6 {
		t.Errorf("Expected half width 0.625, got %f", c.HalfWidth())
	}
}

func TestCamera_RayForPixel(t *testing.T) {
	tests := []struct {
		name      string
		x, y      float32
		transform bool
		origin    [3]float32
		direction [3]float32
	}{
		{"centre of canvas", 100, 50, false, [3]float32{0, 0, 0}, [3]float32{0, 0, -1}},
		{"corner of canvas", 0, 0, false, [3]float32{0, 0, 0}, [3]float32{0.66519, 0.33259, -0.66851}},
		{"transformed camera", 100, 50, true, [3]float32{0, 2, -5}, [3]float32{math.Sqrt2 / 2, 0, -math.Sqrt2 / 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCamera(201, 101, math.Pi/2)
			if tt.transform {
				c.SetTransform(core.RotationY(math.Pi / 4).Mul4(core.Translation(0, -2, 5)))
			}

			ray := c.RayForPixel(tt.x, tt.y)
			origin := core.Point(tt.origin[0], tt.origin[1], tt.origin[2])
			direction := core.Vector(tt.direction[0], tt.direction[1], tt.direction[2])
			if !core.ApproxEqualVec4(ray.Origin, origin, 1e-4) {
				t.Errorf("Expected origin %v, got %v", origin, ray.Origin)
			}
			if !core.ApproxEqualVec4(ray.Direction, direction, 1e-4) {
				t.Errorf("Expected direction %v, got %v", direction, ray.Direction)
			}
		})
	}
}

func TestCamera_TransformRoundTrip(t *testing.T) {
	c := NewCamera(10, 10, math.Pi/3)
	view := core.ViewTransform(core.Point(1, 3, 2), core.Point(4, -2, 8), core.Vector(1, 1, 0))
	c.SetTransform(view)

	if !core.ApproxEqualMat4(c.Transform(), view, 1e-4) {
		t.Errorf("Expected %v, got %v", view, c.Transform())
	}
	if !core.ApproxEqualMat4(c.TransformInverse(), view.Inv(), 1e-5) {
		t.Error("Stored inverse does not match the placement transform")
	}
}

func TestCamera_AccessorsOnReturnedValue(t *testing.T) {
	if w, h := NewCamera(20, 10, math.Pi/2).Size(); w != 20 || h != 10 {
		t.Errorf("Expected 20x10, got %dx%d", w, h)
	}
	if fov := NewCamera(20, 10, math.Pi/2).FieldOfView(); fov != math.Pi/2 {
		t.Errorf("Expected field of view %v, got %v", float32(math.Pi/2), fov)
	}
}
