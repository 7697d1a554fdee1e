package material

import (
	"math"

	"github.com/df07/go-shader-raytracer/pkg/core"
	"github.com/go-gl/mathgl/mgl32"
)

// Lighting is LightingColour on the material's flat colour
func (m Material) Lighting(light PointLight, position, eye, normal mgl32.Vec4, inShadow bool) core.Colour {
	return m.LightingColour(m.Colour, light, position, eye, normal, inShadow)
}

// LightingColour evaluates the Phong model for one light on a surface of the
// given base colour. eye and normal are unit vectors. Ambient depends on the
// base colour alone, so a point in shadow receives it under any light.
func (m Material) LightingColour(base core.Colour, light PointLight, position, eye, normal mgl32.Vec4, inShadow bool) core.Colour {
	ambient := base.Multiply(m.Ambient)
	if inShadow {
		return ambient
	}

	toLight := light.Position.Sub(position).Normalize()
	cosNL := toLight.Dot(normal)
	if cosNL < 0 {
		// Light is on the other side of the surface
		return ambient
	}

	diffuse := base.MultiplyColour(light.Intensity).Multiply(m.Diffuse * cosNL)

	reflected := core.Reflect(toLight.Mul(-1), normal)
	cosRE := reflected.Dot(eye)
	if cosRE < 0 {
		return ambient.Add(diffuse)
	}

	factor := float32(math.Pow(float64(cosRE), float64(m.Shininess)))
	specular := light.Intensity.Multiply(m.Specular * factor)
	return ambient.Add(diffuse).Add(specular)
}
