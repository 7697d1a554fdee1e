package renderer

import (
	"bytes"
	"fmt"
	"time"

	"github.com/olekukonko/tablewriter"
)

// WorkerStats accumulates the work done by one worker
type WorkerStats struct {
	WorkerID int
	Tiles    int
	Pixels   int
	Busy     time.Duration // Time spent tracing, excluding waits
}

// RenderStats contains statistics about one rendered frame
type RenderStats struct {
	Width, Height int
	TotalPixels   int
	TotalTiles    int
	Elapsed       time.Duration // Wall-clock time of the whole frame
	Workers       []WorkerStats // Indexed by worker ID
}

func newRenderStats(width, height, numTiles, numWorkers int) RenderStats {
	stats := RenderStats{
		Width:       width,
		Height:      height,
		TotalPixels: width * height,
		TotalTiles:  numTiles,
		Workers:     make([]WorkerStats, numWorkers),
	}
	for i := range stats.Workers {
		stats.Workers[i].WorkerID = i
	}
	return stats
}

func (s *RenderStats) record(result TileResult) {
	w := &s.Workers[result.WorkerID]
	w.Tiles++
	w.Pixels += result.Tile.Bounds.Dx() * result.Tile.Bounds.Dy()
	w.Busy += result.Duration
}

// PixelsPerSecond returns the frame throughput
func (s RenderStats) PixelsPerSecond() float64 {
	if s.Elapsed <= 0 {
		return 0
	}
	return float64(s.TotalPixels) / s.Elapsed.Seconds()
}

// Table renders the per-worker breakdown as a text table
func (s RenderStats) Table() string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Worker", "Tiles", "Pixels", "% of frame", "Busy time"})
	for _, w := range s.Workers {
		percent := 0.0
		if s.TotalPixels > 0 {
			percent = 100 * float64(w.Pixels) / float64(s.TotalPixels)
		}
		table.Append([]string{
			fmt.Sprintf("%d", w.WorkerID),
			fmt.Sprintf("%d", w.Tiles),
			fmt.Sprintf("%d", w.Pixels),
			fmt.Sprintf("%02.1f %%", percent),
			w.Busy.Round(time.Microsecond).String(),
		})
	}
	table.SetFooter([]string{"TOTAL", fmt.Sprintf("%d", s.TotalTiles), fmt.Sprintf("%d", s.TotalPixels), "", s.Elapsed.Round(time.Microsecond).String()})

	table.Render()
	return buf.String()
}
