package geometry

import (
	"math"

	"github.com/df07/go-shader-raytracer/pkg/core"
	"github.com/go-gl/mathgl/mgl32"
)

// intersectCube intersects the [-1, 1]³ cube with the slab method
func intersectCube(ray core.Ray, index uint32, xs *core.Intersections) {
	tMin := float32(math.Inf(-1))
	tMax := float32(math.Inf(1))

	for axis := 0; axis < 3; axis++ {
		t0, t1, ok := slab(ray.Origin[axis], ray.Direction[axis])
		if !ok {
			return
		}
		tMin = max(tMin, t0)
		tMax = min(tMax, t1)
	}

	if tMin > tMax {
		return
	}
	xs.Add(tMin, index)
	xs.Add(tMax, index)
}

// slab returns the entry and exit distances of a ray component against
// [-1, 1]. A ray parallel to the slab either stays inside it forever or
// never enters.
func slab(origin, direction float32) (float32, float32, bool) {
	if direction < core.Epsilon && direction > -core.Epsilon {
		if origin < -1 || origin > 1 {
			return 0, 0, false
		}
		return float32(math.Inf(-1)), float32(math.Inf(1)), true
	}

	t0 := (-1 - origin) / direction
	t1 := (1 - origin) / direction
	if t0 > t1 {
		t0, t1 = t1, t0
	}
	return t0, t1, true
}

// cubeNormal picks the face whose axis dominates the point
func cubeNormal(objectPoint mgl32.Vec4) mgl32.Vec4 {
	ax := abs(objectPoint.X())
	ay := abs(objectPoint.Y())
	az := abs(objectPoint.Z())

	switch max(ax, ay, az) {
	case ax:
		return core.Vector(objectPoint.X(), 0, 0)
	case ay:
		return core.Vector(0, objectPoint.Y(), 0)
	default:
		return core.Vector(0, 0, objectPoint.Z())
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
