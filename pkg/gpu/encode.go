package gpu

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/df07/go-shader-raytracer/pkg/scene"
)

// Container format written by Buffers.WriteTo
const (
	Magic   = "RTWV"
	Version = 1

	// HeaderSize is the magic, the version and four section lengths
	HeaderSize = 4 + 4 + 4*4
)

// Element sizes of each section
const (
	InputsSize  = 112
	ShapeSize   = 128
	LightSize   = 32
	PatternSize = 112
)

// Buffers holds the storage-buffer contents of a frozen world, one byte
// slice per binding
type Buffers struct {
	Inputs   []byte
	Shapes   []byte
	Lights   []byte
	Patterns []byte
}

// Encode lays out every element of view in its storage-buffer form
func Encode(view *scene.WorldView) (Buffers, error) {
	if uint64(view.ShapeCount()) > math.MaxUint32 {
		return Buffers{}, fmt.Errorf("too many shapes: %d", view.ShapeCount())
	}

	inputs := ShaderInputs{
		Camera:       view.Camera(),
		ShapeCount:   uint32(view.ShapeCount()),
		LightCount:   uint32(view.LightCount()),
		PatternCount: uint32(view.PatternCount()),
	}

	var bufs Buffers
	var err error
	if bufs.Inputs, err = inputs.AppendBinary(make([]byte, 0, InputsSize)); err != nil {
		return Buffers{}, fmt.Errorf("encoding inputs: %w", err)
	}

	bufs.Shapes = make([]byte, 0, ShapeSize*view.ShapeCount())
	for i := range uint32(view.ShapeCount()) {
		if bufs.Shapes, err = view.Shape(i).AppendBinary(bufs.Shapes); err != nil {
			return Buffers{}, fmt.Errorf("encoding shape %d: %w", i, err)
		}
	}

	bufs.Lights = make([]byte, 0, LightSize*view.LightCount())
	for i := range view.LightCount() {
		if bufs.Lights, err = view.Light(i).AppendBinary(bufs.Lights); err != nil {
			return Buffers{}, fmt.Errorf("encoding light %d: %w", i, err)
		}
	}

	bufs.Patterns = make([]byte, 0, PatternSize*view.PatternCount())
	for i := range view.PatternCount() {
		if bufs.Patterns, err = view.Pattern(i).AppendBinary(bufs.Patterns); err != nil {
			return Buffers{}, fmt.Errorf("encoding pattern %d: %w", i, err)
		}
	}

	return bufs, nil
}

// Size returns the number of bytes WriteTo produces
func (b *Buffers) Size() int {
	return HeaderSize + len(b.Inputs) + len(b.Shapes) + len(b.Lights) + len(b.Patterns)
}

// WriteTo writes the container: magic, version, the four section lengths
// in bytes, then the sections in the same order
func (b *Buffers) WriteTo(w io.Writer) (int64, error) {
	header := make([]byte, 0, HeaderSize)
	header = append(header, Magic...)
	header = binary.LittleEndian.AppendUint32(header, Version)
	sections := [][]byte{b.Inputs, b.Shapes, b.Lights, b.Patterns}
	for _, s := range sections {
		header = binary.LittleEndian.AppendUint32(header, uint32(len(s)))
	}

	var written int64
	n, err := w.Write(header)
	written += int64(n)
	if err != nil {
		return written, err
	}
	for _, s := range sections {
		n, err = w.Write(s)
		written += int64(n)
		if err != nil {
			return written, err
		}
	}
	return written, nil
}
