package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	applog "lifelink/internal/log"
	"lifelink/internal/repos"
)

var exportCommand = &cli.Command{
	Name:  "export",
	Usage: "Write every collection as a single JSON document",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "out",
			Aliases: []string{"o"},
			Usage:   "Output file; - for stdout",
			Value:   "-",
		},
	},
	Action: func(cCtx *cli.Context) error {
		_, db, closeAll, err := setup(false)
		if err != nil {
			return err
		}
		defer closeAll()

		snap, err := repos.NewStore(db).Export()
		if err != nil {
			return fmt.Errorf("export: %w", err)
		}

		out := cCtx.String("out")
		if err := writeSnapshot(snap, out); err != nil {
			return err
		}
		applog.Logger().WithField("out", out).Info("snapshot written")
		return nil
	},
}

// writeSnapshot encodes snap to stdout for "-" or to the named file. The file
// is closed before returning so a failed flush is reported.
func writeSnapshot(snap repos.Snapshot, out string) error {
	if out == "-" {
		return snap.WriteJSON(os.Stdout)
	}
	f, err := os.Create(out)
	if err != nil {
		return err
	}
	if err := snap.WriteJSON(f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", out, err)
	}
	return nil
}
