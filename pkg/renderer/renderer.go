package renderer

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/df07/go-shader-raytracer/pkg/core"
	"github.com/df07/go-shader-raytracer/pkg/scene"
)

// Config contains configuration for frame rendering
type Config struct {
	TileSize   int // Size of each tile (64x64 recommended)
	NumWorkers int // Number of parallel workers (0 = use CPU count)
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		TileSize:   64,
		NumWorkers: runtime.NumCPU(),
	}
}

// Renderer renders whole frames of a frozen view across a worker pool
type Renderer struct {
	view   *scene.WorldView
	config Config
	logger core.Logger
}

// TileUpdate is passed to the tile callback once a tile's pixels are final
type TileUpdate struct {
	Tile       Tile
	Frame      *Frame // Shared frame; only pixels inside Tile.Bounds are final
	TileNumber int    // Completion order, 1-based
	TotalTiles int
}

// NewRenderer creates a renderer for view. A nil logger discards output.
func NewRenderer(view *scene.WorldView, config Config, logger core.Logger) *Renderer {
	if config.TileSize <= 0 {
		config.TileSize = DefaultConfig().TileSize
	}
	if config.NumWorkers <= 0 {
		config.NumWorkers = runtime.NumCPU()
	}
	if logger == nil {
		logger = core.NopLogger{}
	}
	return &Renderer{view: view, config: config, logger: logger}
}

// Config returns the effective configuration
func (r *Renderer) Config() Config {
	return r.config
}

// Render traces every pixel of the view's camera. onTile, if non-nil, is
// called from the calling goroutine as each tile completes. Cancellation is
// observed between tiles; a cancelled frame is discarded and ctx's error
// returned.
func (r *Renderer) Render(ctx context.Context, onTile func(TileUpdate)) (*Frame, RenderStats, error) {
	camera := r.view.Camera()
	width, height := camera.Size()
	frame := NewFrame(width, height)
	tiles := NewTileGrid(width, height, r.config.TileSize)
	pool := NewWorkerPool(r.view, frame, r.config.NumWorkers)
	stats := newRenderStats(width, height, len(tiles), pool.NumWorkers())

	r.logger.Debugf("rendering %dx%d in %d tiles using %d workers", width, height, len(tiles), pool.NumWorkers())

	start := time.Now()
	completed := 0
	err := pool.Run(ctx, tiles, func(result TileResult) error {
		completed++
		stats.record(result)
		if onTile != nil {
			onTile(TileUpdate{
				Tile:       result.Tile,
				Frame:      frame,
				TileNumber: completed,
				TotalTiles: len(tiles),
			})
		}
		return nil
	})
	stats.Elapsed = time.Since(start)

	if err != nil {
		r.logger.Infof("render cancelled after %d/%d tiles: %v", completed, len(tiles), err)
		return nil, RenderStats{}, fmt.Errorf("render cancelled: %w", err)
	}

	r.logger.Infof("rendered %dx%d in %v (%.0f pixels/s)", width, height, stats.Elapsed, stats.PixelsPerSecond())
	return frame, stats, nil
}
