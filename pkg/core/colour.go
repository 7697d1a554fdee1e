package core

import "github.com/go-gl/mathgl/mgl32"

// Colour is a linear RGB value. The trailing padding word makes it occupy a
// full 16-byte float3 slot so arrays of structs containing a Colour have the
// same layout in host memory and in a storage buffer.
type Colour struct {
	R, G, B float32
	_       float32
}

// Black is the zero colour
var Black = Colour{}

// White is full intensity on every channel
var White = NewColour(1, 1, 1)

// NewColour creates a new Colour
func NewColour(r, g, b float32) Colour {
	return Colour{R: r, G: g, B: b}
}

// Add returns the channel-wise sum of two colours
func (c Colour) Add(other Colour) Colour {
	return Colour{R: c.R + other.R, G: c.G + other.G, B: c.B + other.B}
}

// Subtract returns the channel-wise difference of two colours
func (c Colour) Subtract(other Colour) Colour {
	return Colour{R: c.R - other.R, G: c.G - other.G, B: c.B - other.B}
}

// Multiply returns the colour scaled by a scalar
func (c Colour) Multiply(scalar float32) Colour {
	return Colour{R: c.R * scalar, G: c.G * scalar, B: c.B * scalar}
}

// MultiplyColour returns the Hadamard product of two colours
func (c Colour) MultiplyColour(other Colour) Colour {
	return Colour{R: c.R * other.R, G: c.G * other.G, B: c.B * other.B}
}

// Clamp returns a colour with every channel clamped to [minVal, maxVal]
func (c Colour) Clamp(minVal, maxVal float32) Colour {
	return Colour{
		R: mgl32.Clamp(c.R, minVal, maxVal),
		G: mgl32.Clamp(c.G, minVal, maxVal),
		B: mgl32.Clamp(c.B, minVal, maxVal),
	}
}

// IsFraction reports whether every channel lies in [0, 1]
func (c Colour) IsFraction() bool {
	return IsFraction(c.R) && IsFraction(c.G) && IsFraction(c.B)
}

// ApproxEqual compares two colours channel by channel within epsilon
func (c Colour) ApproxEqual(other Colour, epsilon float32) bool {
	eq := Within(epsilon)
	return eq(c.R, other.R) && eq(c.G, other.G) && eq(c.B, other.B)
}

// Vec3 returns the colour as an mgl32 vector
func (c Colour) Vec3() mgl32.Vec3 {
	return mgl32.Vec3{c.R, c.G, c.B}
}

// AppendBinary appends the 16-byte storage-buffer form of the colour
func (c Colour) AppendBinary(b []byte) ([]byte, error) {
	b = AppendFloat32(b, c.R)
	b = AppendFloat32(b, c.G)
	b = AppendFloat32(b, c.B)
	return AppendPadding(b, 1), nil
}

// IsFraction reports whether x lies in [0, 1]
func IsFraction(x float32) bool {
	return 0 <= x && x <= 1
}
