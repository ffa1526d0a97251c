package main

import (
	"os"

	"github.com/urfave/cli"

	"github.com/df07/go-pathtracer/cmd"
	"github.com/df07/go-pathtracer/pkg/log"
)

var logger = log.New("pathtracer")

func newApp() *cli.App {
	// The default version flag claims -v, which is the verbose flag here
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "pathtracer"
	app.Usage = "render scenes with a Monte Carlo path tracer"
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
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a scene to an image file",
			Description: `
Render one of the built-in scenes. Rows are traced in parallel and written
in order; the output format is chosen from the file extension. The scene's
recommended resolution and sampling settings can be overridden with flags.`,
			Flags:  cmd.RenderFlags,
			Action: cmd.RenderScene,
		},
		{
			Name:   "scenes",
			Usage:  "list available scenes",
			Action: cmd.ListScenes,
		},
	}
	return app
}

// run executes the app and returns the process exit code
func run(args []string) int {
	if err := newApp().Run(args); err != nil {
		logger.Error(err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args))
}
