package material

import (
	"errors"
	"fmt"

	"github.com/df07/go-shader-raytracer/pkg/core"
	"github.com/go-gl/mathgl/mgl32"
)

// NoPattern marks a material that uses its flat colour
const NoPattern int32 = -1

// ErrInvalidMaterial is returned by Validate for out-of-range coefficients
var ErrInvalidMaterial = errors.New("invalid material")

// Material holds the Phong surface coefficients of a shape. The layout is
// 48 bytes with the colour slot first so it can be embedded in a Shape at a
// 16-byte boundary.
type Material struct {
	Colour          core.Colour
	PatternIndex    int32
	Ambient         float32
	Diffuse         float32
	Specular        float32
	Shininess       float32
	Reflective      float32
	Transparency    float32
	RefractiveIndex float32
}

// DefaultMaterial returns a white, non-reflective, opaque material
func DefaultMaterial() Material {
	return Material{
		Colour:          core.White,
		PatternIndex:    NoPattern,
		Ambient:         0.1,
		Diffuse:         0.9,
		Specular:        0.9,
		Shininess:       200,
		Reflective:      0,
		Transparency:    0,
		RefractiveIndex: 1,
	}
}

// HasPattern reports whether the material references a pattern
func (m Material) HasPattern() bool {
	return m.PatternIndex != NoPattern
}

// Validate checks that every fractional coefficient and colour channel lies
// in [0, 1] and that shininess and refractive index are non-negative
func (m Material) Validate() error {
	if !m.Colour.IsFraction() {
		return fmt.Errorf("%w: colour %v outside [0, 1]", ErrInvalidMaterial, m.Colour.Vec3())
	}

	fractions := []struct {
		name  string
		value float32
	}{
		{"ambient", m.Ambient},
		{"diffuse", m.Diffuse},
		{"specular", m.Specular},
		{"reflective", m.Reflective},
		{"transparency", m.Transparency},
	}
	for _, f := range fractions {
		if !core.IsFraction(f.value) {
			return fmt.Errorf("%w: %s %g outside [0, 1]", ErrInvalidMaterial, f.name, f.value)
		}
	}

	if m.Shininess < 0 {
		return fmt.Errorf("%w: negative shininess %g", ErrInvalidMaterial, m.Shininess)
	}
	if m.RefractiveIndex < 0 {
		return fmt.Errorf("%w: negative refractive index %g", ErrInvalidMaterial, m.RefractiveIndex)
	}
	if m.PatternIndex < NoPattern {
		return fmt.Errorf("%w: pattern index %d", ErrInvalidMaterial, m.PatternIndex)
	}
	return nil
}

// ColourAt returns the base colour at an object-space point: the flat colour,
// or the referenced pattern evaluated at that point
func (m Material) ColourAt(patterns []Pattern, objectPoint mgl32.Vec4) core.Colour {
	if m.PatternIndex == NoPattern {
		return m.Colour
	}
	if core.DebugChecks && int(m.PatternIndex) >= len(patterns) {
		core.Violation("pattern index %d out of range [0, %d)", m.PatternIndex, len(patterns))
	}
	return patterns[m.PatternIndex].At(objectPoint)
}

// AppendBinary appends the 48-byte storage-buffer form of the material
func (m Material) AppendBinary(b []byte) ([]byte, error) {
	b, err := m.Colour.AppendBinary(b)
	if err != nil {
		return nil, err
	}
	b = core.AppendInt32(b, m.PatternIndex)
	for _, f := range [...]float32{
		m.Ambient, m.Diffuse, m.Specular, m.Shininess,
		m.Reflective, m.Transparency, m.RefractiveIndex,
	} {
		b = core.AppendFloat32(b, f)
	}
	return b, nil
}
