package core

import "github.com/go-gl/mathgl/mgl32"

// Epsilon is the surface bias used for over/under points and the cutoff
// below which a carried ray weight no longer contributes.
const Epsilon float32 = 1e-4

// Point returns a homogeneous point (w = 1)
func Point(x, y, z float32) mgl32.Vec4 {
	return mgl32.Vec4{x, y, z, 1}
}

// Vector returns a homogeneous direction (w = 0)
func Vector(x, y, z float32) mgl32.Vec4 {
	return mgl32.Vec4{x, y, z, 0}
}

// Origin is the homogeneous point (0, 0, 0)
var Origin = Point(0, 0, 0)

// Reflect mirrors in about normal. normal must be unit length.
func Reflect(in, normal mgl32.Vec4) mgl32.Vec4 {
	return in.Sub(normal.Mul(2 * in.Dot(normal)))
}

// ApproxEqualVec4 reports whether every component of a and b differs by at
// most epsilon
func ApproxEqualVec4(a, b mgl32.Vec4, epsilon float32) bool {
	return a.ApproxFuncEqual(b, Within(epsilon))
}

// ApproxEqualMat4 is ApproxEqualVec4 over all sixteen matrix entries
func ApproxEqualMat4(a, b mgl32.Mat4, epsilon float32) bool {
	return a.ApproxFuncEqual(b, Within(epsilon))
}

// Within returns an absolute tolerance comparison. mgl32's thresholds are
// relative and square epsilon when one side is zero.
func Within(epsilon float32) func(a, b float32) bool {
	return func(a, b float32) bool {
		return mgl32.Abs(a-b) <= epsilon
	}
}
