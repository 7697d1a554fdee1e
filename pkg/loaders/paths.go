package loaders

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ValidateSceneFilePath rejects scene paths a remote caller should not be
// able to load. Only .yml and .yaml files under a scenes/ directory, or the
// temp dir for tests, pass.
func ValidateSceneFilePath(filename string) error {
	if filename == "" {
		return fmt.Errorf("filename cannot be empty")
	}
	if strings.Contains(filename, "\x00") {
		return fmt.Errorf("invalid file path: null bytes not allowed")
	}
	if len(filename) > 512 {
		return fmt.Errorf("file path too long: maximum 512 characters allowed")
	}

	cleanPath := filepath.ToSlash(filepath.Clean(filename))
	inTemp := strings.HasPrefix(cleanPath, filepath.ToSlash(os.TempDir()))

	// Clean only leaves ".." at the front. Parent hops are allowed as long
	// as what remains is a scenes/ directory.
	relative := cleanPath
	for strings.HasPrefix(relative, "../") {
		relative = strings.TrimPrefix(relative, "../")
	}
	if !inTemp && !strings.HasPrefix(relative, "scenes/") {
		if relative != cleanPath {
			return fmt.Errorf("invalid file path: directory traversal not allowed")
		}
		return fmt.Errorf("file path must be in scenes/ directory")
	}

	ext := strings.ToLower(filepath.Ext(cleanPath))
	if ext != ".yml" && ext != ".yaml" {
		return fmt.Errorf("invalid file type: only .yml and .yaml files are allowed")
	}

	return nil
}
