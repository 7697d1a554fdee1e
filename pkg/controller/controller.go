// Package controller turns keyboard and mouse state into camera movement.
// It is independent of any windowing library; callers translate their own
// key codes into Key values.
package controller

import (
	"github.com/df07/go-shader-raytracer/pkg/core"
	"github.com/df07/go-shader-raytracer/pkg/geometry"
)

// Key is a movement key
type Key int

const (
	KeyForward Key = iota
	KeyBack
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	keyCount
)

// String returns the name of the key
func (k Key) String() string {
	switch k {
	case KeyForward:
		return "forward"
	case KeyBack:
		return "back"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	default:
		return "unknown"
	}
}

const (
	// DefaultMoveSpeed is in world units per second
	DefaultMoveSpeed float32 = 2.5

	// DefaultMouseSensitivity converts pixels of mouse travel to radians
	DefaultMouseSensitivity float32 = 0.005
)

// CameraController accumulates input between frames and applies it to a
// camera in the camera's own frame of reference
type CameraController struct {
	MoveSpeed        float32
	MouseSensitivity float32

	pressed [keyCount]bool
	yaw     float32 // accumulated horizontal mouse travel, pixels
	pitch   float32 // accumulated vertical mouse travel, pixels
}

// NewCameraController creates a controller with the default speeds
func NewCameraController() *CameraController {
	return &CameraController{
		MoveSpeed:        DefaultMoveSpeed,
		MouseSensitivity: DefaultMouseSensitivity,
	}
}

// SetKey records whether key is held down
func (c *CameraController) SetKey(key Key, down bool) {
	if key < 0 || key >= keyCount {
		return
	}
	c.pressed[key] = down
}

// MouseMoved accumulates a mouse delta in pixels. Positive dx turns right,
// positive dy looks down.
func (c *CameraController) MouseMoved(dx, dy float32) {
	c.yaw += dx
	c.pitch += dy
}

// Direction returns the movement direction in camera space, one of -1, 0
// or 1 per axis. When both keys of a pair are held, left, back and down
// take precedence.
func (c *CameraController) Direction() (x, y, z float32) {
	// The camera looks down -z and the image's right edge is at -x
	x = -axis(c.pressed[KeyRight], c.pressed[KeyLeft])
	y = axis(c.pressed[KeyUp], c.pressed[KeyDown])
	z = -axis(c.pressed[KeyForward], c.pressed[KeyBack])
	return x, y, z
}

// Update moves camera by the held keys for dt seconds and rotates it by the
// mouse travel since the last Update. It reports whether the camera changed.
func (c *CameraController) Update(camera *geometry.Camera, dt float32) bool {
	x, y, z := c.Direction()
	yaw := c.yaw * c.MouseSensitivity
	pitch := c.pitch * c.MouseSensitivity
	c.yaw, c.pitch = 0, 0

	if x == 0 && y == 0 && z == 0 && yaw == 0 && pitch == 0 {
		return false
	}

	step := c.MoveSpeed * dt
	// The view transform maps world to camera space, so moving the camera by
	// d moves the world by -d and turning the camera turns the world the
	// other way
	view := core.Chain(
		camera.Transform(),
		core.Translation(-x*step, -y*step, -z*step),
		core.RotationY(-yaw),
		core.RotationX(pitch),
	)
	camera.SetTransform(view)
	return true
}

func axis(positive, negative bool) float32 {
	switch {
	case negative:
		return -1
	case positive:
		return 1
	default:
		return 0
	}
}
