package renderer

import (
	"image"
	"image/color"

	"github.com/df07/go-shader-raytracer/pkg/core"
)

// Frame holds the unclamped colour of every pixel of a render, row-major
type Frame struct {
	Width, Height int
	Pixels        []core.Colour
}

// NewFrame creates a black frame
func NewFrame(width, height int) *Frame {
	return &Frame{
		Width:  width,
		Height: height,
		Pixels: make([]core.Colour, width*height),
	}
}

// At returns the colour at pixel (x, y)
func (f *Frame) At(x, y int) core.Colour {
	return f.Pixels[y*f.Width+x]
}

// Set stores the colour at pixel (x, y)
func (f *Frame) Set(x, y int, c core.Colour) {
	f.Pixels[y*f.Width+x] = c
}

// ToRGBA packs the whole frame for display
func (f *Frame) ToRGBA() *image.RGBA {
	return f.TileRGBA(image.Rect(0, 0, f.Width, f.Height))
}

// TileRGBA packs the pixels inside bounds into an image whose origin is the
// top-left corner of bounds
func (f *Frame) TileRGBA(bounds image.Rectangle) *image.RGBA {
	bounds = bounds.Intersect(image.Rect(0, 0, f.Width, f.Height))
	img := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			img.SetRGBA(x-bounds.Min.X, y-bounds.Min.Y, PackColour(f.At(x, y)))
		}
	}
	return img
}

// PackColour clamps each channel to [0, 1] and rounds it to 8 bits. Alpha
// is always opaque.
func PackColour(c core.Colour) color.RGBA {
	return color.RGBA{
		R: packChannel(c.R),
		G: packChannel(c.G),
		B: packChannel(c.B),
		A: 255,
	}
}

func packChannel(v float32) uint8 {
	// NaN fails both comparisons and ends up black
	if !(v > 0) {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
