package material

import (
	"github.com/df07/go-shader-raytracer/pkg/core"
	"github.com/go-gl/mathgl/mgl32"
)

// PointLight is an infinitely small light with no falloff. Intensity is not
// clamped so a scene can overexpose.
type PointLight struct {
	Position  mgl32.Vec4
	Intensity core.Colour
}

// NewPointLight creates a light at position with the given intensity
func NewPointLight(position mgl32.Vec4, intensity core.Colour) PointLight {
	return PointLight{Position: position, Intensity: intensity}
}

// AppendBinary appends the 32-byte storage-buffer form of the light
func (l PointLight) AppendBinary(b []byte) ([]byte, error) {
	b = core.AppendVec4(b, l.Position)
	return l.Intensity.AppendBinary(b)
}
