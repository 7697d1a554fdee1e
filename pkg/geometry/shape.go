package geometry

import (
	"fmt"

	"github.com/df07/go-shader-raytracer/pkg/core"
	"github.com/df07/go-shader-raytracer/pkg/material"
	"github.com/go-gl/mathgl/mgl32"
)

// ShapeKind tags the primitive a Shape describes
type ShapeKind uint32

const (
	Sphere ShapeKind = iota
	Plane
	Cube
)

func (k ShapeKind) String() string {
	switch k {
	case Sphere:
		return "sphere"
	case Plane:
		return "plane"
	case Cube:
		return "cube"
	default:
		return fmt.Sprintf("ShapeKind(%d)", uint32(k))
	}
}

// Shape is a primitive placed in the world. Every operation switches on
// Kind; there is no per-kind type. Index is the shape's position in the
// owning world and is what an Intersection refers back to.
//
// The layout is 128 bytes: the matrix at 0, Kind at 64, Index at 68 and the
// material at 80.
type Shape struct {
	TransformInverse mgl32.Mat4
	Kind             ShapeKind
	Index            uint32
	_                [2]uint32
	Material         material.Material
}

// NewShape creates a shape of kind with an identity transform and the
// default material
func NewShape(kind ShapeKind) Shape {
	return Shape{
		TransformInverse: mgl32.Ident4(),
		Kind:             kind,
		Material:         material.DefaultMaterial(),
	}
}

// NewSphere creates a unit sphere centred on the object-space origin
func NewSphere() Shape {
	return NewShape(Sphere)
}

// NewPlane creates the xz plane through the object-space origin
func NewPlane() Shape {
	return NewShape(Plane)
}

// NewCube creates the axis-aligned cube spanning [-1, 1] on every axis
func NewCube() Shape {
	return NewShape(Cube)
}

// SetTransform places the shape in the world
func (s *Shape) SetTransform(m mgl32.Mat4) {
	s.TransformInverse = m.Inv()
}

// Transform returns the forward placement transform
func (s *Shape) Transform() mgl32.Mat4 {
	return s.TransformInverse.Inv()
}

// Intersect pushes every intersection of worldRay with the shape into xs
func (s *Shape) Intersect(worldRay core.Ray, xs *core.Intersections) {
	local := worldRay.Transform(s.TransformInverse)

	switch s.Kind {
	case Sphere:
		intersectSphere(local, s.Index, xs)
	case Plane:
		intersectPlane(local, s.Index, xs)
	case Cube:
		intersectCube(local, s.Index, xs)
	}
}

// ObjectPoint maps a world-space point into the shape's object space
func (s *Shape) ObjectPoint(worldPoint mgl32.Vec4) mgl32.Vec4 {
	return s.TransformInverse.Mul4x1(worldPoint)
}

// NormalAt returns the unit world-space surface normal at worldPoint.
// worldPoint is assumed to lie on the surface.
func (s *Shape) NormalAt(worldPoint mgl32.Vec4) mgl32.Vec4 {
	objectPoint := s.ObjectPoint(worldPoint)

	var objectNormal mgl32.Vec4
	switch s.Kind {
	case Sphere:
		objectNormal = sphereNormal(objectPoint)
	case Plane:
		objectNormal = planeNormal(objectPoint)
	case Cube:
		objectNormal = cubeNormal(objectPoint)
	}

	worldNormal := s.TransformInverse.Transpose().Mul4x1(objectNormal)
	worldNormal[3] = 0
	return worldNormal.Normalize()
}

// AppendBinary appends the 128-byte storage-buffer form of the shape
func (s Shape) AppendBinary(b []byte) ([]byte, error) {
	b = core.AppendMat4(b, s.TransformInverse)
	b = core.AppendUint32(b, uint32(s.Kind))
	b = core.AppendUint32(b, s.Index)
	b = core.AppendPadding(b, 2)
	return s.Material.AppendBinary(b)
}
