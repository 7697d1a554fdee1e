package material

import (
	"fmt"
	"math"

	"github.com/df07/go-shader-raytracer/pkg/core"
	"github.com/go-gl/mathgl/mgl32"
)

// PatternKind selects the colour function of a Pattern
type PatternKind uint32

const (
	Solid PatternKind = iota
	Stripes
	Gradient
	Rings
	Checker
)

func (k PatternKind) String() string {
	switch k {
	case Solid:
		return "solid"
	case Stripes:
		return "stripes"
	case Gradient:
		return "gradient"
	case Rings:
		return "rings"
	case Checker:
		return "checker"
	default:
		return fmt.Sprintf("PatternKind(%d)", uint32(k))
	}
}

// Pattern is a procedural two-colour function of an object-space point.
// 112 bytes; the matrix sits at offset 48.
type Pattern struct {
	A                core.Colour
	B                core.Colour
	Kind             PatternKind
	_                [3]uint32
	TransformInverse mgl32.Mat4
}

// NewPattern creates a pattern of the given kind with an identity transform
func NewPattern(kind PatternKind, a, b core.Colour) Pattern {
	return Pattern{A: a, B: b, Kind: kind, TransformInverse: mgl32.Ident4()}
}

// NewSolidPattern creates a pattern that is a everywhere
func NewSolidPattern(a core.Colour) Pattern {
	return NewPattern(Solid, a, a)
}

// NewStripePattern alternates a and b across unit steps of x
func NewStripePattern(a, b core.Colour) Pattern {
	return NewPattern(Stripes, a, b)
}

// NewGradientPattern blends from a to b across each unit of x
func NewGradientPattern(a, b core.Colour) Pattern {
	return NewPattern(Gradient, a, b)
}

// NewRingPattern alternates a and b in concentric rings in the xz plane
func NewRingPattern(a, b core.Colour) Pattern {
	return NewPattern(Rings, a, b)
}

// NewCheckerPattern alternates a and b in unit cubes
func NewCheckerPattern(a, b core.Colour) Pattern {
	return NewPattern(Checker, a, b)
}

// SetTransform places the pattern relative to its shape's object space
func (p *Pattern) SetTransform(m mgl32.Mat4) {
	p.TransformInverse = m.Inv()
}

// At evaluates the pattern at an object-space point
func (p Pattern) At(objectPoint mgl32.Vec4) core.Colour {
	local := p.TransformInverse.Mul4x1(objectPoint)

	switch p.Kind {
	case Stripes:
		if isEven(floor(local.X())) {
			return p.A
		}
		return p.B
	case Gradient:
		x := local.X()
		fraction := x - float32(math.Floor(float64(x)))
		return p.A.Add(p.B.Subtract(p.A).Multiply(fraction))
	case Rings:
		x, z := float64(local.X()), float64(local.Z())
		if isEven(floor(float32(math.Sqrt(x*x + z*z)))) {
			return p.A
		}
		return p.B
	case Checker:
		if isEven(floor(local.X()) + floor(local.Y()) + floor(local.Z())) {
			return p.A
		}
		return p.B
	default:
		return p.A
	}
}

// AppendBinary appends the 112-byte storage-buffer form of the pattern
func (p Pattern) AppendBinary(b []byte) ([]byte, error) {
	b, err := p.A.AppendBinary(b)
	if err != nil {
		return nil, err
	}
	if b, err = p.B.AppendBinary(b); err != nil {
		return nil, err
	}
	b = core.AppendUint32(b, uint32(p.Kind))
	b = core.AppendPadding(b, 3)
	return core.AppendMat4(b, p.TransformInverse), nil
}

func floor(x float32) int64 {
	return int64(math.Floor(float64(x)))
}

func isEven(n int64) bool {
	return n&1 == 0
}
