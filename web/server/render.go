package server

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"net/http"
	"time"

	"github.com/df07/go-shader-raytracer/pkg/core"
	"github.com/df07/go-shader-raytracer/pkg/renderer"
	"github.com/df07/go-shader-raytracer/pkg/scene"
)

// TileUpdate represents a single tile update sent via SSE
type TileUpdate struct {
	TileX      int    `json:"tileX"` // Tile coordinates (not pixel coordinates)
	TileY      int    `json:"tileY"`
	X          int    `json:"x"` // Pixel origin of the tile
	Y          int    `json:"y"`
	ImageData  string `json:"imageData"`  // Base64 encoded PNG of just this tile
	TileNumber int    `json:"tileNumber"` // Completion order (1-based)
	TotalTiles int    `json:"totalTiles"` // Total number of tiles in the image
}

// CompleteUpdate is sent once the whole frame is rendered
type CompleteUpdate struct {
	ElapsedMs       int64   `json:"elapsedMs"`
	Width           int     `json:"width"`
	Height          int     `json:"height"`
	TotalPixels     int     `json:"totalPixels"`
	TotalTiles      int     `json:"totalTiles"`
	Workers         int     `json:"workers"`
	PixelsPerSecond float64 `json:"pixelsPerSecond"`
	ShapeCount      int     `json:"shapeCount"`
	LightCount      int     `json:"lightCount"`
}

// SSEEvent represents a unified SSE event for thread-safe writing
type SSEEvent struct {
	Type string `json:"type"` // "console", "tile", "error", "complete"
	Data string `json:"data"` // JSON-encoded data
}

// handleRender renders a frame and streams each finished tile via SSE
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	s.setSSEHeaders(w)

	ctx := r.Context()

	// Single writer goroutine; it owns w until it returns
	sseEventChan := make(chan SSEEvent, 100)
	writerDone := make(chan struct{})
	go func() {
		s.writeSSEEvents(w, ctx, sseEventChan)
		close(writerDone)
	}()
	defer func() {
		close(sseEventChan)
		<-writerDone
	}()

	req, err := s.parseRenderRequest(r)
	if err != nil {
		s.handleError(ctx, sseEventChan, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	view, err := s.loadView(req)
	if err != nil {
		s.handleError(ctx, sseEventChan, err.Error())
		return
	}

	consoleChan, webLogger := s.setupConsoleLogging()
	consoleDone := make(chan struct{})
	go func() {
		s.streamConsoleMessages(ctx, consoleChan, sseEventChan)
		close(consoleDone)
	}()

	config := renderer.Config{TileSize: req.TileSize, NumWorkers: req.Workers}
	raytracer := renderer.NewRenderer(view, config, webLogger)

	startTime := time.Now()
	_, stats, err := raytracer.Render(ctx, func(update renderer.TileUpdate) {
		s.handleTileUpdate(ctx, sseEventChan, update, req.TileSize)
	})

	// The renderer no longer logs once Render returns
	close(consoleChan)
	<-consoleDone

	if err != nil {
		s.handleError(ctx, sseEventChan, fmt.Sprintf("Rendering failed: %v", err))
		return
	}

	s.handleComplete(ctx, sseEventChan, view, stats, time.Since(startTime))
}

// setSSEHeaders sets the required headers for Server-Sent Events
func (s *Server) setSSEHeaders(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")
}

// setupConsoleLogging creates console channel and web logger for a render
func (s *Server) setupConsoleLogging() (chan ConsoleMessage, core.Logger) {
	consoleChan := make(chan ConsoleMessage, 50)
	renderID := fmt.Sprintf("render-%d", time.Now().UnixNano())
	return consoleChan, NewWebLogger(renderID, consoleChan)
}

// writeSSEEvents handles writing all SSE events in a single goroutine
// (thread-safe). After a failed write it keeps draining so senders never
// block.
func (s *Server) writeSSEEvents(w http.ResponseWriter, ctx context.Context, sseEventChan chan SSEEvent) {
	flusher, _ := w.(http.Flusher)
	broken := false
	for {
		select {
		case event, ok := <-sseEventChan:
			if !ok {
				return
			}
			if broken {
				continue
			}
			if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Type, event.Data); err != nil {
				// Client disconnected during write
				broken = true
				continue
			}
			if flusher != nil {
				flusher.Flush()
			}

		case <-ctx.Done():
			// Client disconnected
			return
		}
	}
}

// streamConsoleMessages forwards console messages until consoleChan closes
func (s *Server) streamConsoleMessages(ctx context.Context, consoleChan chan ConsoleMessage, sseEventChan chan SSEEvent) {
	for consoleMsg := range consoleChan {
		data, err := json.Marshal(consoleMsg)
		if err != nil {
			logger.Warningf("Error marshaling console message: %v", err)
			continue
		}
		s.sendEvent(ctx, sseEventChan, SSEEvent{Type: "console", Data: string(data)})
	}
}

// handleTileUpdate encodes a finished tile and sends it
func (s *Server) handleTileUpdate(ctx context.Context, sseEventChan chan SSEEvent, update renderer.TileUpdate, tileSize int) {
	if ctx.Err() != nil {
		return
	}

	bounds := update.Tile.Bounds
	tileData, err := s.imageToBase64PNG(update.Frame.TileRGBA(bounds))
	if err != nil {
		logger.Warningf("Error encoding tile image %v: %v", bounds, err)
		return
	}

	data, err := json.Marshal(TileUpdate{
		TileX:      bounds.Min.X / tileSize,
		TileY:      bounds.Min.Y / tileSize,
		X:          bounds.Min.X,
		Y:          bounds.Min.Y,
		ImageData:  tileData,
		TileNumber: update.TileNumber,
		TotalTiles: update.TotalTiles,
	})
	if err != nil {
		logger.Warningf("Error marshaling tile update: %v", err)
		return
	}
	s.sendEvent(ctx, sseEventChan, SSEEvent{Type: "tile", Data: string(data)})
}

// handleComplete sends the frame statistics
func (s *Server) handleComplete(ctx context.Context, sseEventChan chan SSEEvent, view *scene.WorldView, stats renderer.RenderStats, elapsed time.Duration) {
	data, err := json.Marshal(CompleteUpdate{
		ElapsedMs:       elapsed.Milliseconds(),
		Width:           stats.Width,
		Height:          stats.Height,
		TotalPixels:     stats.TotalPixels,
		TotalTiles:      stats.TotalTiles,
		Workers:         len(stats.Workers),
		PixelsPerSecond: stats.PixelsPerSecond(),
		ShapeCount:      view.ShapeCount(),
		LightCount:      view.LightCount(),
	})
	if err != nil {
		logger.Warningf("Error marshaling completion: %v", err)
		return
	}
	s.sendEvent(ctx, sseEventChan, SSEEvent{Type: "complete", Data: string(data)})
}

// parseRenderRequest parses request parameters
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	req := &RenderRequest{}
	if err := s.parseCommonSceneParams(r, req); err != nil {
		return nil, err
	}

	var err error
	if req.TileSize, err = parseIntParam(r.URL.Query(), "tileSize", DefaultTileSize, 8, 256); err != nil {
		return nil, err
	}
	if req.Workers, err = parseIntParam(r.URL.Query(), "workers", 0, 0, 256); err != nil {
		return nil, err
	}
	return req, nil
}

// imageToBase64PNG converts an image to base64-encoded PNG
func (s *Server) imageToBase64PNG(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// handleError sends an error event to the SSE channel
func (s *Server) handleError(ctx context.Context, sseEventChan chan SSEEvent, message string) {
	s.sendEvent(ctx, sseEventChan, SSEEvent{Type: "error", Data: message})
}

// sendEvent queues an event unless the client has gone away
func (s *Server) sendEvent(ctx context.Context, sseEventChan chan SSEEvent, event SSEEvent) {
	select {
	case sseEventChan <- event:
	case <-ctx.Done():
	}
}
