package loaders

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/df07/go-shader-raytracer/pkg/scene"
)

func TestLoadNamedScene_Builtin(t *testing.T) {
	world, err := LoadNamedScene("default", "", 40, 30)
	if err != nil {
		t.Fatalf("LoadNamedScene failed: %v", err)
	}
	if w, h := world.Camera.Size(); w != 40 || h != 30 {
		t.Errorf("Expected 40x30 camera, got %dx%d", w, h)
	}
}

func TestLoadNamedScene_File(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "room.yaml"), []byte(cameraYAML), 0644); err != nil {
		t.Fatalf("Failed to write scene: %v", err)
	}

	tests := []struct {
		name          string
		width, height int
		expectedW     int
		expectedH     int
	}{
		{"file size", 0, 0, 100, 50},
		{"resized", 20, 10, 20, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			world, err := LoadNamedScene("file:room", dir, tt.width, tt.height)
			if err != nil {
				t.Fatalf("LoadNamedScene failed: %v", err)
			}
			if w, h := world.Camera.Size(); w != tt.expectedW || h != tt.expectedH {
				t.Errorf("Expected %dx%d camera, got %dx%d", tt.expectedW, tt.expectedH, w, h)
			}
		})
	}
}

func TestLoadNamedScene_Unknown(t *testing.T) {
	dir := t.TempDir()
	tests := []string{"nope", "file:", "file:missing", "file:../etc/passwd"}

	for _, id := range tests {
		t.Run(id, func(t *testing.T) {
			_, err := LoadNamedScene(id, dir, 10, 10)
			if !errors.Is(err, scene.ErrUnknownScene) {
				t.Errorf("Expected ErrUnknownScene, got %v", err)
			}
		})
	}
}

func TestLoadNamedScene_RepoScenes(t *testing.T) {
	for _, id := range []string{"file:checkered-room", "file:glass-bubble"} {
		t.Run(id, func(t *testing.T) {
			world, err := LoadNamedScene(id, "../../scenes", 16, 9)
			if err != nil {
				t.Fatalf("LoadNamedScene failed: %v", err)
			}
			view := world.Freeze()
			if view.ShapeCount() == 0 {
				t.Error("Expected shapes in scene file")
			}
		})
	}
}
