package main

import (
	"fmt"
	"log"
	"os"

	"github.com/bodgit/scr2bmp"
	"github.com/urfave/cli/v2"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newApp() *cli.App {
	app := cli.NewApp()

	app.Name = "scr2bmp"
	app.Usage = "Convert a ZX Spectrum screen dump to a bitmap"
	app.Version = "1.0.0"
	app.ArgsUsage = "<path to input> <path to output>"
	app.ErrWriter = os.Stderr

	app.Action = func(c *cli.Context) error {
		if c.NArg() != 2 {
			return cli.NewExitError(fmt.Sprintf("Usage: %s %s", c.App.Name, c.App.ArgsUsage), 1)
		}

		logger := log.New(c.App.ErrWriter, c.App.Name+": ", 0)

		if err := scr2bmp.New(logger).ConvertFile(c.Args().Get(0), c.Args().Get(1)); err != nil {
			return cli.NewExitError(err, 1)
		}

		return nil
	}

	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
