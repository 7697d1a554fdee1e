package main

import (
	"os"

	"github.com/df07/go-shader-raytracer/pkg/log"
	"github.com/df07/go-shader-raytracer/web/server"
	"github.com/urfave/cli"
)

var logger = log.New("web")

func main() {
	app := cli.NewApp()
	app.Name = "raytracer-web"
	app.Usage = "serve the raytracer over HTTP with live tile streaming"
	app.Flags = []cli.Flag{
		cli.IntFlag{
			Name:  "port, p",
			Value: 8080,
			Usage: "port to serve on",
		},
		cli.StringFlag{
			Name:  "scenes",
			Value: "scenes",
			Usage: "directory of YAML scene files",
		},
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Action = serve

	if err := app.Run(os.Args); err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}
}

func serve(ctx *cli.Context) error {
	if ctx.Bool("v") {
		log.SetLevel(log.Info)
	}
	if ctx.Bool("vv") {
		log.SetLevel(log.Debug)
	}

	port := ctx.Int("port")
	webServer := server.NewServer(port, ctx.String("scenes"))

	logger.Noticef("Shader Raytracer Web Server")
	logger.Noticef("Visit http://localhost:%d to start rendering", port)
	return webServer.Start()
}
