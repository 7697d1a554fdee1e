package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/df07/go-shader-raytracer/pkg/loaders"
	"github.com/df07/go-shader-raytracer/pkg/log"
	"github.com/df07/go-shader-raytracer/pkg/scene"
)

var logger = log.New("web")

// Image size limits accepted by the API
const (
	MinImageSize    = 16
	MaxImageSize    = 2000
	DefaultTileSize = 32
)

// Server handles web requests for the raytracer
type Server struct {
	port      int
	sceneDir  string
	staticDir string
}

// NewServer creates a new web server serving scene files from sceneDir
func NewServer(port int, sceneDir string) *Server {
	return &Server{port: port, sceneDir: sceneDir, staticDir: "static/"}
}

// RenderRequest represents a render or inspect request from the client
type RenderRequest struct {
	Scene    string `json:"scene"`    // Scene ID (e.g., "glass" or "file:checkered-room")
	Width    int    `json:"width"`    // Image width
	Height   int    `json:"height"`   // Image height
	TileSize int    `json:"tileSize"` // Tile edge in pixels
	Workers  int    `json:"workers"`  // 0 = use CPU count
}

// Handler returns the routes of the server
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// Serve static files
	mux.Handle("/", http.FileServer(http.Dir(s.staticDir)))

	// API endpoints
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/inspect", s.handleInspect)
	return mux
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	logger.Noticef("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists the built-in scenes and the scene files on disk
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	response, err := scene.ListAllScenes(s.sceneDir)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, response)
}

// parseCommonSceneParams parses the scene selection and image size shared
// by the render and inspect endpoints
func (s *Server) parseCommonSceneParams(r *http.Request, req *RenderRequest) error {
	query := r.URL.Query()
	if sceneID := query.Get("scene"); sceneID != "" {
		req.Scene = sceneID
	} else {
		req.Scene = "default"
	}

	var err error
	if req.Width, err = parseIntParam(query, "width", 400, MinImageSize, MaxImageSize); err != nil {
		return err
	}
	if req.Height, err = parseIntParam(query, "height", 225, MinImageSize, MaxImageSize); err != nil {
		return err
	}
	return nil
}

// loadView builds and freezes the requested scene
func (s *Server) loadView(req *RenderRequest) (*scene.WorldView, error) {
	world, err := loaders.LoadNamedScene(req.Scene, s.sceneDir, req.Width, req.Height)
	if err != nil {
		return nil, err
	}
	view := world.Freeze()
	return &view, nil
}

// sceneErrorStatus maps a scene loading error to an HTTP status
func sceneErrorStatus(err error) int {
	switch {
	case errors.Is(err, scene.ErrUnknownScene):
		return http.StatusNotFound
	case errors.Is(err, loaders.ErrScanFailed),
		errors.Is(err, loaders.ErrInvalidData),
		errors.Is(err, loaders.ErrInvalidCameraSize):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadRequest
	}
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warningf("Error encoding response: %v", err)
	}
}
