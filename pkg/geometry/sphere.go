package geometry

import (
	"math"

	"github.com/df07/go-shader-raytracer/pkg/core"
	"github.com/go-gl/mathgl/mgl32"
)

// intersectSphere solves the ray against the unit sphere at the origin.
// Both roots are pushed, including negative ones.
func intersectSphere(ray core.Ray, index uint32, xs *core.Intersections) {
	// Vector from sphere centre to ray origin
	sphereToRay := ray.Origin.Sub(core.Origin)

	// Quadratic coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	b := 2 * ray.Direction.Dot(sphereToRay)
	c := sphereToRay.Dot(sphereToRay) - 1

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return
	}

	sqrtD := float32(math.Sqrt(float64(discriminant)))
	xs.Add((-b-sqrtD)/(2*a), index)
	xs.Add((-b+sqrtD)/(2*a), index)
}

func sphereNormal(objectPoint mgl32.Vec4) mgl32.Vec4 {
	return objectPoint.Sub(core.Origin)
}
