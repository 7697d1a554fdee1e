package gpu

import (
	"github.com/df07/go-shader-raytracer/pkg/core"
	"github.com/df07/go-shader-raytracer/pkg/geometry"
)

// ShaderInputs is the uniform block a compute kernel reads before walking
// the shape, light and pattern buffers. The layout is 112 bytes.
type ShaderInputs struct {
	Camera       geometry.Camera
	ShapeCount   uint32
	LightCount   uint32
	PatternCount uint32
	_            uint32
}

// AppendBinary appends the 112-byte storage-buffer form of the inputs
func (in ShaderInputs) AppendBinary(b []byte) ([]byte, error) {
	b, err := in.Camera.AppendBinary(b)
	if err != nil {
		return nil, err
	}
	b = core.AppendUint32(b, in.ShapeCount)
	b = core.AppendUint32(b, in.LightCount)
	b = core.AppendUint32(b, in.PatternCount)
	return core.AppendPadding(b, 1), nil
}
