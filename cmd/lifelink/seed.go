package main

import (
	"github.com/urfave/cli/v2"

	applog "lifelink/internal/log"
	"lifelink/internal/repos"
)

var seedCommand = &cli.Command{
	Name:  "seed",
	Usage: "Wipe the store and load the demo data",
	Action: func(cCtx *cli.Context) error {
		_, db, closeAll, err := setup(false)
		if err != nil {
			return err
		}
		defer closeAll()

		if err := repos.Reset(db); err != nil {
			return err
		}
		applog.Logger().Info("demo data loaded")
		return nil
	},
}
