package core

import "github.com/go-gl/mathgl/mgl32"

// Ray represents a ray with an origin and direction
type Ray struct {
	Origin    mgl32.Vec4
	Direction mgl32.Vec4
}

// NewRay creates a new ray
func NewRay(origin, direction mgl32.Vec4) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// Position returns the point at parameter t along the ray
func (r Ray) Position(t float32) mgl32.Vec4 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// Transform applies m to the origin and the direction. The direction is not
// renormalized, so a t found against the transformed ray is the same t on r.
func (r Ray) Transform(m mgl32.Mat4) Ray {
	return Ray{
		Origin:    m.Mul4x1(r.Origin),
		Direction: m.Mul4x1(r.Direction),
	}
}
