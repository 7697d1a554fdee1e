package main

import (
	"context"
	"errors"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-shader-raytracer/pkg/gpu"
	"github.com/df07/go-shader-raytracer/pkg/loaders"
	"github.com/df07/go-shader-raytracer/pkg/renderer"
	"github.com/df07/go-shader-raytracer/pkg/scene"
	"github.com/df07/go-shader-raytracer/viewer"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// Frame size for built-in scenes when no size is given (16:9)
const (
	defaultWidth  = 400
	defaultHeight = 225
)

// RenderFrame renders a still frame and saves it as PNG
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	view, name, err := loadView(ctx)
	if err != nil {
		return err
	}

	config := renderer.Config{
		TileSize:   ctx.Int("tile-size"),
		NumWorkers: ctx.Int("workers"),
	}
	r := renderer.NewRenderer(view, config, logger)

	frame, stats, err := r.Render(context.Background(), nil)
	if err != nil {
		return err
	}
	logger.Noticef("frame statistics\n%s", stats.Table())

	filename := ctx.String("out")
	if filename == "" {
		outputDir, err := createOutputDir(name)
		if err != nil {
			return err
		}
		timestamp := time.Now().Format("20060102_150405")
		filename = filepath.Join(outputDir, fmt.Sprintf("render_%s.png", timestamp))
	}

	if err := savePNG(filename, frame); err != nil {
		return err
	}
	logger.Noticef("Render saved as %s", filename)
	return nil
}

// ListScenes prints the built-in scenes and the scene files in --dir
func ListScenes(ctx *cli.Context) error {
	setupLogging(ctx)

	response, err := scene.ListAllScenes(ctx.String("dir"))
	if err != nil {
		return err
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Group", "ID", "Name", "Description"})
	for _, group := range response.Groups {
		for _, s := range group.Scenes {
			table.Append([]string{group.Name, s.ID, s.DisplayName, s.Description})
		}
	}
	table.Render()
	return nil
}

// ExportBuffers writes the storage-buffer container of a scene
func ExportBuffers(ctx *cli.Context) error {
	setupLogging(ctx)

	view, name, err := loadView(ctx)
	if err != nil {
		return err
	}

	bufs, err := gpu.Encode(view)
	if err != nil {
		return err
	}

	filename := ctx.String("out")
	if filename == "" {
		filename = name + ".rtwv"
	}
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("error creating file: %w", err)
	}
	defer file.Close()

	n, err := bufs.WriteTo(file)
	if err != nil {
		return fmt.Errorf("error writing %s: %w", filename, err)
	}
	logger.Noticef("Wrote %d bytes (%d shapes, %d lights, %d patterns) to %s",
		n, view.ShapeCount(), view.LightCount(), view.PatternCount(), filename)
	return file.Close()
}

// ViewScene opens the interactive preview window
func ViewScene(ctx *cli.Context) error {
	setupLogging(ctx)

	view, _, err := loadView(ctx)
	if err != nil {
		return err
	}

	config := renderer.DefaultConfig()
	config.TileSize = ctx.Int("tile-size")
	return viewer.Run(view, config, logger)
}

// loadView resolves the scene argument and freezes it
func loadView(ctx *cli.Context) (*scene.WorldView, string, error) {
	if ctx.NArg() != 1 {
		return nil, "", errors.New("missing scene argument")
	}
	sceneArg := ctx.Args().First()

	world, err := createScene(sceneArg, ctx.String("dir"), ctx.Int("width"), ctx.Int("height"))
	if err != nil {
		return nil, "", err
	}
	view := world.Freeze()

	width, height := view.Camera().Size()
	logger.Infof("Using scene %s (%dx%d, %d shapes, %d lights)", sceneArg, width, height, view.ShapeCount(), view.LightCount())
	return &view, sceneName(sceneArg), nil
}

// createScene builds the scene named by sceneArg: a YAML file path, a
// built-in scene ID, or the name of a file in sceneDir. A zero width or
// height keeps the scene's own size.
func createScene(sceneArg, sceneDir string, width, height int) (*scene.World, error) {
	if sceneArg == "" {
		return nil, errors.New("empty scene name")
	}

	if isSceneFile(sceneArg) {
		world, err := loaders.LoadSceneFile(sceneArg)
		if err != nil {
			return nil, err
		}
		if width > 0 && height > 0 {
			world.Camera.Resize(width, height)
		}
		return world, nil
	}

	if strings.HasPrefix(sceneArg, loaders.FileScenePrefix) {
		return loaders.LoadNamedScene(sceneArg, sceneDir, width, height)
	}

	builtinWidth, builtinHeight := width, height
	if builtinWidth <= 0 || builtinHeight <= 0 {
		builtinWidth, builtinHeight = defaultWidth, defaultHeight
	}
	world, err := scene.NewBuiltinScene(sceneArg, builtinWidth, builtinHeight)
	if errors.Is(err, scene.ErrUnknownScene) {
		// Fall back to a scene file of that name
		return loaders.LoadNamedScene(loaders.FileScenePrefix+sceneArg, sceneDir, width, height)
	}
	return world, err
}

func isSceneFile(sceneArg string) bool {
	ext := strings.ToLower(filepath.Ext(sceneArg))
	return ext == ".yml" || ext == ".yaml"
}

// sceneName returns the short name used for output paths
func sceneName(sceneArg string) string {
	name := strings.TrimPrefix(sceneArg, loaders.FileScenePrefix)
	if isSceneFile(name) {
		name = filepath.Base(name)
		name = strings.TrimSuffix(name, filepath.Ext(name))
	}
	return name
}

// createOutputDir creates output/<scene> and returns its path
func createOutputDir(sceneArg string) (string, error) {
	outputDir := filepath.Join("output", sceneName(sceneArg))
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory: %w", err)
	}
	return outputDir, nil
}

func savePNG(filename string, frame *renderer.Frame) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("error creating file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, frame.ToRGBA()); err != nil {
		return fmt.Errorf("error saving PNG: %w", err)
	}
	return file.Close()
}
