package gpu

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"
	"unsafe"

	"github.com/df07/go-shader-raytracer/pkg/scene"
)

func TestShaderInputs_Layout(t *testing.T) {
	var in ShaderInputs
	if got := unsafe.Sizeof(in); got != InputsSize {
		t.Errorf("Expected size %d, got %d", InputsSize, got)
	}
	if got := unsafe.Offsetof(in.ShapeCount); got != 96 {
		t.Errorf("Expected ShapeCount at 96, got %d", got)
	}

	b, err := in.AppendBinary(nil)
	if err != nil {
		t.Fatalf("AppendBinary failed: %v", err)
	}
	if len(b) != InputsSize {
		t.Errorf("Expected %d bytes, got %d", InputsSize, len(b))
	}
}

func TestEncode_Sections(t *testing.T) {
	world := scene.NewGlassScene(40, 20)
	view := world.Freeze()

	bufs, err := Encode(&view)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	tests := []struct {
		name     string
		got      int
		expected int
	}{
		{"inputs", len(bufs.Inputs), InputsSize},
		{"shapes", len(bufs.Shapes), ShapeSize * view.ShapeCount()},
		{"lights", len(bufs.Lights), LightSize * view.LightCount()},
		{"patterns", len(bufs.Patterns), PatternSize * view.PatternCount()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("Expected %d bytes, got %d", tt.expected, tt.got)
			}
		})
	}

	counts := []int{view.ShapeCount(), view.LightCount(), view.PatternCount()}
	for i, expected := range counts {
		got := binary.LittleEndian.Uint32(bufs.Inputs[96+4*i:])
		if int(got) != expected {
			t.Errorf("Count %d: expected %d, got %d", i, expected, got)
		}
	}
}

func TestEncode_ShapesInIndexOrder(t *testing.T) {
	world := scene.NewDefaultScene(10, 10)
	view := world.Freeze()

	bufs, err := Encode(&view)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	for i := range uint32(view.ShapeCount()) {
		expected, _ := view.Shape(i).AppendBinary(nil)
		got := bufs.Shapes[int(i)*ShapeSize : int(i+1)*ShapeSize]
		if !bytes.Equal(got, expected) {
			t.Errorf("Shape %d bytes differ", i)
		}
		// Index word sits right after the 64-byte matrix and the kind
		if index := binary.LittleEndian.Uint32(got[68:]); index != i {
			t.Errorf("Shape %d: encoded index %d", i, index)
		}
	}
}

func TestBuffers_WriteTo(t *testing.T) {
	world := scene.NewPatternsScene(16, 16)
	view := world.Freeze()
	bufs, err := Encode(&view)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	var out bytes.Buffer
	n, err := bufs.WriteTo(&out)
	if err != nil {
		t.Fatalf("WriteTo failed: %v", err)
	}
	if int(n) != bufs.Size() || out.Len() != bufs.Size() {
		t.Fatalf("Expected %d bytes, wrote %d (buffer %d)", bufs.Size(), n, out.Len())
	}

	data := out.Bytes()
	if string(data[:4]) != Magic {
		t.Errorf("Expected magic %q, got %q", Magic, data[:4])
	}
	if v := binary.LittleEndian.Uint32(data[4:]); v != Version {
		t.Errorf("Expected version %d, got %d", Version, v)
	}

	offset := HeaderSize
	sections := [][]byte{bufs.Inputs, bufs.Shapes, bufs.Lights, bufs.Patterns}
	for i, s := range sections {
		length := int(binary.LittleEndian.Uint32(data[8+4*i:]))
		if length != len(s) {
			t.Errorf("Section %d: header length %d, expected %d", i, length, len(s))
		}
		if !bytes.Equal(data[offset:offset+length], s) {
			t.Errorf("Section %d contents differ", i)
		}
		offset += length
	}
}

type failingWriter struct{ after int }

var errWrite = errors.New("write failed")

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.after == 0 {
		return 0, errWrite
	}
	w.after--
	return len(p), nil
}

func TestBuffers_WriteToError(t *testing.T) {
	world := scene.NewDefaultScene(10, 10)
	view := world.Freeze()
	bufs, err := Encode(&view)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	n, err := bufs.WriteTo(&failingWriter{after: 2})
	if !errors.Is(err, errWrite) {
		t.Fatalf("Expected write error, got %v", err)
	}
	expected := int64(HeaderSize + len(bufs.Inputs))
	if n != expected {
		t.Errorf("Expected %d bytes reported, got %d", expected, n)
	}
}
