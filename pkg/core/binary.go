package core

import (
	"encoding/binary"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// AppendFloat32 appends f as a little-endian IEEE-754 word
func AppendFloat32(b []byte, f float32) []byte {
	return binary.LittleEndian.AppendUint32(b, math.Float32bits(f))
}

// AppendUint32 appends u as a little-endian word
func AppendUint32(b []byte, u uint32) []byte {
	return binary.LittleEndian.AppendUint32(b, u)
}

// AppendInt32 appends i as a little-endian two's complement word
func AppendInt32(b []byte, i int32) []byte {
	return binary.LittleEndian.AppendUint32(b, uint32(i))
}

// AppendPadding appends n zero words
func AppendPadding(b []byte, n int) []byte {
	for range n {
		b = binary.LittleEndian.AppendUint32(b, 0)
	}
	return b
}

// AppendVec4 appends the four components of v
func AppendVec4(b []byte, v mgl32.Vec4) []byte {
	for _, f := range v {
		b = AppendFloat32(b, f)
	}
	return b
}

// AppendMat4 appends m in column-major order, matching a float4x4 slot
func AppendMat4(b []byte, m mgl32.Mat4) []byte {
	for _, f := range m {
		b = AppendFloat32(b, f)
	}
	return b
}
