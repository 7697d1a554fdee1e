package scene

import (
	"math"

	"github.com/df07/go-shader-raytracer/pkg/core"
	"github.com/go-gl/mathgl/mgl32"
)

// Comps holds the shading inputs derived from one ray/shape intersection
type Comps struct {
	T     float32
	Shape uint32

	Point mgl32.Vec4
	Eye   mgl32.Vec4
	// Normal faces the eye; Inside records whether it had to be flipped
	Normal mgl32.Vec4
	Inside bool

	// OverPoint and UnderPoint are Point nudged by Epsilon along and
	// against Normal, the origins of reflected and refracted rays
	OverPoint  mgl32.Vec4
	UnderPoint mgl32.Vec4
	Reflect    mgl32.Vec4

	// N1 and N2 are the refractive indices of the media the ray leaves and
	// enters at the hit
	N1, N2 float32
}

// PrepareComps computes the shading inputs for hit, which must be one of
// the intersections in xs found along ray
func (v *WorldView) PrepareComps(hit core.Intersection, ray core.Ray, xs *core.Intersections) Comps {
	shape := v.Shape(hit.Shape)

	comps := Comps{
		T:     hit.T,
		Shape: hit.Shape,
		Point: ray.Position(hit.T),
		Eye:   ray.Direction.Mul(-1),
	}
	comps.Normal = shape.NormalAt(comps.Point)
	if comps.Normal.Dot(comps.Eye) < 0 {
		comps.Inside = true
		comps.Normal = comps.Normal.Mul(-1)
	}

	bias := comps.Normal.Mul(core.Epsilon)
	comps.OverPoint = comps.Point.Add(bias)
	comps.UnderPoint = comps.Point.Sub(bias)
	comps.Reflect = core.Reflect(ray.Direction, comps.Normal)
	comps.N1, comps.N2 = v.refractiveIndices(hit, xs)
	return comps
}

// refractiveIndices walks xs in order, tracking which shapes the ray is
// inside, to find the media on either side of hit
func (v *WorldView) refractiveIndices(hit core.Intersection, xs *core.Intersections) (float32, float32) {
	var containers core.Intersections
	n1, n2 := float32(1), float32(1)

	for i := 0; i < xs.Len(); i++ {
		check := xs.At(i)
		if check == hit && !containers.IsEmpty() {
			n1 = v.Shape(containers.Last().Shape).Material.RefractiveIndex
		}

		// Entering a shape pushes it, leaving pops it. xs is ascending in T
		// so containers stays in entry order.
		if idx := containers.IndexOfShape(check.Shape); idx >= 0 {
			containers.Remove(idx)
		} else {
			containers.Add(check.T, check.Shape)
		}

		if check == hit {
			if !containers.IsEmpty() {
				n2 = v.Shape(containers.Last().Shape).Material.RefractiveIndex
			}
			break
		}
	}
	return n1, n2
}

// refracted returns the direction of the ray transmitted at comps, or false
// on total internal reflection
func refracted(comps *Comps) (mgl32.Vec4, bool) {
	ratio := comps.N1 / comps.N2
	cosI := comps.Eye.Dot(comps.Normal)
	sin2T := ratio * ratio * (1 - cosI*cosI)
	if sin2T >= 1 {
		return mgl32.Vec4{}, false
	}

	cosT := float32(math.Sqrt(float64(1 - sin2T)))
	direction := comps.Normal.Mul(ratio*cosI - cosT).Sub(comps.Eye.Mul(ratio))
	return direction, true
}
