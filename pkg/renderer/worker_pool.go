package renderer

import (
	"context"
	"runtime"
	"time"

	"github.com/df07/go-shader-raytracer/pkg/scene"
	"golang.org/x/sync/errgroup"
)

// TileTask represents a tile rendering task for the worker pool
type TileTask struct {
	Tile   Tile
	TaskID int // For deterministic ordering
}

// TileResult contains the result from rendering a tile
type TileResult struct {
	TaskID   int
	WorkerID int
	Tile     Tile
	Duration time.Duration
}

// WorkerPool renders tiles of a frozen view into a shared frame. Tiles are
// disjoint so workers never write the same pixel.
type WorkerPool struct {
	view       *scene.WorldView
	frame      *Frame
	numWorkers int
}

// NewWorkerPool creates a worker pool with the specified number of workers
func NewWorkerPool(view *scene.WorldView, frame *Frame, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &WorkerPool{view: view, frame: frame, numWorkers: numWorkers}
}

// NumWorkers returns the number of workers in the pool
func (wp *WorkerPool) NumWorkers() int {
	return wp.numWorkers
}

// Run renders every tile and calls onResult for each finished tile from the
// calling goroutine, in completion order. Workers check ctx before taking
// each tile; a tile already started always finishes. The first error from
// ctx or onResult stops the remaining tiles and is returned.
func (wp *WorkerPool) Run(ctx context.Context, tiles []Tile, onResult func(TileResult) error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	tasks := make(chan TileTask, len(tiles))
	for i, tile := range tiles {
		tasks <- TileTask{Tile: tile, TaskID: i}
	}
	close(tasks)

	// Buffered for every tile so workers never block on a stopped dispatcher
	results := make(chan TileResult, len(tiles))

	g, gctx := errgroup.WithContext(ctx)
	for id := range wp.numWorkers {
		g.Go(func() error {
			return wp.work(gctx, id, tasks, results)
		})
	}

	done := make(chan error, 1)
	go func() {
		done <- g.Wait()
		close(results)
	}()

	var dispatchErr error
	for result := range results {
		if dispatchErr != nil {
			continue
		}
		if err := onResult(result); err != nil {
			dispatchErr = err
			cancel()
		}
	}

	if err := <-done; err != nil && dispatchErr == nil {
		return err
	}
	return dispatchErr
}

// work is the main worker loop
func (wp *WorkerPool) work(ctx context.Context, id int, tasks <-chan TileTask, results chan<- TileResult) error {
	for task := range tasks {
		if err := ctx.Err(); err != nil {
			return err
		}

		start := time.Now()
		wp.renderTile(task.Tile)
		results <- TileResult{
			TaskID:   task.TaskID,
			WorkerID: id,
			Tile:     task.Tile,
			Duration: time.Since(start),
		}
	}
	return nil
}

func (wp *WorkerPool) renderTile(tile Tile) {
	bounds := tile.Bounds
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			wp.frame.Set(x, y, wp.view.PixelColour(x, y))
		}
	}
}
