package loaders

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/go-shader-raytracer/pkg/scene"
)

// FileScenePrefix marks scene IDs that name a file in the scene directory
const FileScenePrefix = "file:"

// LoadNamedScene builds the scene a discovery ID refers to. Built-in IDs are
// constructed at width x height. "file:<name>" IDs load <name>.yml or
// <name>.yaml from sceneDir; the file's camera is resized when width and
// height are positive.
func LoadNamedScene(id, sceneDir string, width, height int) (*scene.World, error) {
	name, isFile := strings.CutPrefix(id, FileScenePrefix)
	if !isFile {
		return scene.NewBuiltinScene(id, width, height)
	}

	if name == "" || filepath.Base(name) != name {
		return nil, fmt.Errorf("%w: %q", scene.ErrUnknownScene, id)
	}

	for _, ext := range []string{".yml", ".yaml"} {
		path := filepath.Join(sceneDir, name+ext)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := ValidateSceneFilePath(path); err != nil {
			return nil, err
		}

		world, err := LoadSceneFile(path)
		if err != nil {
			return nil, err
		}
		if width > 0 && height > 0 {
			world.Camera.Resize(width, height)
		}
		return world, nil
	}

	return nil, fmt.Errorf("%w: %q", scene.ErrUnknownScene, id)
}
