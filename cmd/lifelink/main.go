package main

import (
	"os"

	"github.com/urfave/cli/v2"

	applog "lifelink/internal/log"
)

func main() {
	app := &cli.App{
		Name:  "lifelink",
		Usage: "Blood donation coordination API",
		Commands: []*cli.Command{
			serveCommand,
			seedCommand,
			exportCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		applog.Logger().WithError(err).Fatal("application failed")
	}
}
