package core

import "github.com/go-gl/mathgl/mgl32"

// Translation returns a matrix moving points by (x, y, z)
func Translation(x, y, z float32) mgl32.Mat4 {
	return mgl32.Translate3D(x, y, z)
}

// Scaling returns a matrix scaling each axis independently
func Scaling(x, y, z float32) mgl32.Mat4 {
	return mgl32.Scale3D(x, y, z)
}

// RotationX returns a rotation of radians around the x axis
func RotationX(radians float32) mgl32.Mat4 {
	return mgl32.HomogRotate3DX(radians)
}

// RotationY returns a rotation of radians around the y axis
func RotationY(radians float32) mgl32.Mat4 {
	return mgl32.HomogRotate3DY(radians)
}

// RotationZ returns a rotation of radians around the z axis
func RotationZ(radians float32) mgl32.Mat4 {
	return mgl32.HomogRotate3DZ(radians)
}

// Shearing returns a matrix moving each coordinate in proportion to the
// other two. xy is the amount x moves in proportion to y, and so on.
func Shearing(xy, xz, yx, yz, zx, zy float32) mgl32.Mat4 {
	// mgl32 matrices are column-major
	return mgl32.Mat4{
		1, yx, zx, 0,
		xy, 1, zy, 0,
		xz, yz, 1, 0,
		0, 0, 0, 1,
	}
}

// ViewTransform orients the world relative to an eye at from looking at to.
// The camera looks down its own -z axis.
func ViewTransform(from, to, up mgl32.Vec4) mgl32.Mat4 {
	return mgl32.LookAtV(from.Vec3(), to.Vec3(), up.Vec3())
}

// Chain composes transforms so that the first one listed is applied first
func Chain(transforms ...mgl32.Mat4) mgl32.Mat4 {
	result := mgl32.Ident4()
	for _, t := range transforms {
		result = t.Mul4(result)
	}
	return result
}
