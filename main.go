package main

import (
	"os"

	"github.com/df07/go-shader-raytracer/pkg/log"
	"github.com/urfave/cli"
)

var logger = log.New("raytracer")

func main() {
	app := cli.NewApp()
	app.Name = "shader-raytracer"
	app.Usage = "render scenes with a Whitted ray tracer laid out for GPU storage buffers"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}

	sizeFlags := []cli.Flag{
		cli.IntFlag{
			Name:  "width",
			Usage: "frame width (defaults to 400, or the scene file's camera)",
		},
		cli.IntFlag{
			Name:  "height",
			Usage: "frame height (defaults to 225, or the scene file's camera)",
		},
		cli.StringFlag{
			Name:  "dir",
			Value: "scenes",
			Usage: "directory searched for scene files by name",
		},
	}

	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a still frame to PNG",
			Description: `
Render a built-in scene, a scene file from the scenes directory by name, or a
YAML scene file by path. Unless --out is given the image is written to
output/<scene>/render_<timestamp>.png.`,
			ArgsUsage: "<scene|file.yml>",
			Flags: append([]cli.Flag{
				cli.IntFlag{
					Name:  "workers",
					Usage: "number of render workers (0 = CPU count)",
				},
				cli.IntFlag{
					Name:  "tile-size",
					Value: 64,
					Usage: "tile edge in pixels",
				},
				cli.StringFlag{
					Name:  "out, o",
					Usage: "image filename for the rendered frame",
				},
			}, sizeFlags...),
			Action: RenderFrame,
		},
		{
			Name:  "scenes",
			Usage: "list built-in scenes and scene files",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "dir",
					Value: "scenes",
					Usage: "directory of YAML scene files",
				},
			},
			Action: ListScenes,
		},
		{
			Name:  "export",
			Usage: "write the GPU storage buffers of a scene to a file",
			Description: `
Encode the frozen scene into its storage-buffer layout and write an RTWV
container: magic, version, four section lengths, then the shader inputs,
shapes, lights and patterns.`,
			ArgsUsage: "<scene|file.yml>",
			Flags: append([]cli.Flag{
				cli.StringFlag{
					Name:  "out, o",
					Usage: "output filename (defaults to <scene>.rtwv)",
				},
			}, sizeFlags...),
			Action: ExportBuffers,
		},
		{
			Name:      "view",
			Usage:     "open an interactive preview window",
			ArgsUsage: "<scene|file.yml>",
			Flags: append([]cli.Flag{
				cli.IntFlag{
					Name:  "tile-size",
					Value: 32,
					Usage: "tile edge in pixels",
				},
			}, sizeFlags...),
			Action: ViewScene,
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}
}

func setupLogging(ctx *cli.Context) {
	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
}
