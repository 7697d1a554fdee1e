package geometry

import (
	"github.com/df07/go-shader-raytracer/pkg/core"
	"github.com/go-gl/mathgl/mgl32"
)

// intersectPlane hits the xz plane at y = 0. Rays parallel to the plane,
// including coplanar ones, miss.
func intersectPlane(ray core.Ray, index uint32, xs *core.Intersections) {
	dy := ray.Direction.Y()
	if dy < core.Epsilon && dy > -core.Epsilon {
		return
	}
	xs.Add(-ray.Origin.Y()/dy, index)
}

func planeNormal(mgl32.Vec4) mgl32.Vec4 {
	return core.Vector(0, 1, 0)
}
