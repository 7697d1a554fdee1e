// Package viewer shows a frozen world in a desktop window and re-renders it
// whenever the camera controller moves the camera.
package viewer

import (
	"context"
	"fmt"
	"image"

	"github.com/df07/go-shader-raytracer/pkg/controller"
	"github.com/df07/go-shader-raytracer/pkg/core"
	"github.com/df07/go-shader-raytracer/pkg/renderer"
	"github.com/df07/go-shader-raytracer/pkg/scene"
	"github.com/hajimehoshi/ebiten/v2"
)

const ticksPerSecond = 60

// keyBindings maps window keys to controller keys
var keyBindings = map[ebiten.Key]controller.Key{
	ebiten.KeyW:         controller.KeyForward,
	ebiten.KeyS:         controller.KeyBack,
	ebiten.KeyA:         controller.KeyLeft,
	ebiten.KeyD:         controller.KeyRight,
	ebiten.KeySpace:     controller.KeyUp,
	ebiten.KeyShiftLeft: controller.KeyDown,
}

// Run opens a window sized to the view's camera and blocks until it is
// closed or Escape is pressed. Dragging with the left mouse button turns
// the camera; WASD, Space and left Shift move it.
func Run(view *scene.WorldView, config renderer.Config, logger core.Logger) error {
	if logger == nil {
		logger = core.NopLogger{}
	}

	camera := view.Camera()
	width, height := camera.Size()

	g := &game{
		view:       *view,
		config:     config,
		logger:     logger,
		controller: controller.NewCameraController(),
		frames:     make(chan *image.RGBA, 1),
		width:      width,
		height:     height,
	}
	g.startRender()
	defer g.stopRender()

	ebiten.SetWindowTitle(fmt.Sprintf("Shader Raytracer (%dx%d)", width, height))
	ebiten.SetWindowSize(width, height)
	ebiten.SetTPS(ticksPerSecond)

	err := ebiten.RunGame(g)
	if err == ebiten.Termination {
		return nil
	}
	return err
}

type game struct {
	view       scene.WorldView
	config     renderer.Config
	logger     core.Logger
	controller *controller.CameraController

	width, height int
	frame         *image.RGBA
	frameImg      *ebiten.Image
	dirty         bool

	frames chan *image.RGBA
	cancel context.CancelFunc

	dragging     bool
	lastX, lastY int
}

func (g *game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	for key, action := range keyBindings {
		g.controller.SetKey(action, ebiten.IsKeyPressed(key))
	}

	x, y := ebiten.CursorPosition()
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		if g.dragging {
			g.controller.MouseMoved(float32(x-g.lastX), float32(y-g.lastY))
		}
		g.dragging = true
	} else {
		g.dragging = false
	}
	g.lastX, g.lastY = x, y

	camera := g.view.Camera()
	if g.controller.Update(&camera, 1.0/ticksPerSecond) {
		g.view = g.view.WithCamera(camera)
		g.startRender()
	}

	select {
	case frame := <-g.frames:
		g.frame = frame
		g.dirty = true
	default:
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.frame == nil {
		return
	}
	if g.frameImg == nil {
		g.frameImg = ebiten.NewImage(g.width, g.height)
	}
	if g.dirty {
		g.frameImg.WritePixels(g.frame.Pix)
		g.dirty = false
	}
	screen.DrawImage(g.frameImg, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// startRender abandons any frame in flight and renders the current view in
// the background. Only complete frames are delivered.
func (g *game) startRender() {
	g.stopRender()

	ctx, cancel := context.WithCancel(context.Background())
	g.cancel = cancel

	view := g.view
	go func() {
		r := renderer.NewRenderer(&view, g.config, g.logger)
		frame, stats, err := r.Render(ctx, nil)
		if err != nil {
			return
		}
		g.logger.Debugf("frame ready in %v", stats.Elapsed)

		img := frame.ToRGBA()
		if ctx.Err() != nil {
			return
		}
		// Replace a frame the window has not picked up yet
		select {
		case <-g.frames:
		default:
		}
		select {
		case g.frames <- img:
		case <-ctx.Done():
		}
	}()
}

func (g *game) stopRender() {
	if g.cancel != nil {
		g.cancel()
		g.cancel = nil
	}
}
