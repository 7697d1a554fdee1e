package geometry

import (
	"math"

	"github.com/df07/go-shader-raytracer/pkg/core"
	"github.com/go-gl/mathgl/mgl32"
)

// Camera maps pixels of an hsize x vsize canvas onto rays. It keeps the
// inverse of its placement transform so no per-pixel inversion happens.
// Derived fields follow the field of view and aspect ratio of the last
// Resize. The layout is 96 bytes.
type Camera struct {
	transformInverse mgl32.Mat4
	pixelSize        float32
	halfWidth        float32
	halfHeight       float32
	hsize            uint32
	vsize            uint32
	fieldOfView      float32
	_                [2]float32
}

// NewCamera creates a camera at the origin looking down -z
func NewCamera(hsize, vsize int, fieldOfView float32) Camera {
	c := Camera{
		transformInverse: mgl32.Ident4(),
		fieldOfView:      fieldOfView,
	}
	c.Resize(hsize, vsize)
	return c
}

// Resize sets the canvas size and recomputes the pixel size and half extents
func (c *Camera) Resize(hsize, vsize int) {
	if core.DebugChecks {
		core.Assert(hsize > 0 && vsize > 0, "camera size %dx%d must be positive", hsize, vsize)
	}
	c.hsize = uint32(hsize)
	c.vsize = uint32(vsize)

	halfView := float32(math.Tan(float64(c.fieldOfView) / 2))
	aspect := float32(hsize) / float32(vsize)
	if aspect >= 1 {
		c.halfWidth = halfView
		c.halfHeight = halfView / aspect
	} else {
		c.halfWidth = halfView * aspect
		c.halfHeight = halfView
	}
	c.pixelSize = c.halfWidth * 2 / float32(hsize)
}

// SetTransform places the camera, usually with core.ViewTransform
func (c *Camera) SetTransform(m mgl32.Mat4) {
	c.transformInverse = m.Inv()
}

// Transform returns the placement transform
func (c Camera) Transform() mgl32.Mat4 {
	return c.transformInverse.Inv()
}

// TransformInverse returns the stored inverse placement transform
func (c Camera) TransformInverse() mgl32.Mat4 {
	return c.transformInverse
}

// Size returns the canvas size in pixels
func (c Camera) Size() (int, int) {
	return int(c.hsize), int(c.vsize)
}

// PixelSize returns the world-space size of one pixel at depth -1
func (c Camera) PixelSize() float32 { return c.pixelSize }

// HalfWidth returns the half width of the canvas at depth -1
func (c Camera) HalfWidth() float32 { return c.halfWidth }

// HalfHeight returns the half height of the canvas at depth -1
func (c Camera) HalfHeight() float32 { return c.halfHeight }

// FieldOfView returns the horizontal or vertical field of view in radians,
// whichever is the longer canvas axis
func (c Camera) FieldOfView() float32 { return c.fieldOfView }

// RayForPixel returns the ray through the centre of pixel (x, y). The
// direction is unit length.
func (c *Camera) RayForPixel(x, y float32) core.Ray {
	xOffset := (x + 0.5) * c.pixelSize
	yOffset := (y + 0.5) * c.pixelSize

	// The camera looks toward -z, so +x is to the left
	worldX := c.halfWidth - xOffset
	worldY := c.halfHeight - yOffset

	pixel := c.transformInverse.Mul4x1(core.Point(worldX, worldY, -1))
	origin := c.transformInverse.Mul4x1(core.Origin)
	direction := pixel.Sub(origin).Normalize()

	return core.NewRay(origin, direction)
}

// AppendBinary appends the 96-byte storage-buffer form of the camera
func (c Camera) AppendBinary(b []byte) ([]byte, error) {
	b = core.AppendMat4(b, c.transformInverse)
	b = core.AppendFloat32(b, c.pixelSize)
	b = core.AppendFloat32(b, c.halfWidth)
	b = core.AppendFloat32(b, c.halfHeight)
	b = core.AppendUint32(b, c.hsize)
	b = core.AppendUint32(b, c.vsize)
	b = core.AppendFloat32(b, c.fieldOfView)
	return core.AppendPadding(b, 2), nil
}
