package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jmoiron/sqlx"

	"lifelink/internal/config"
	applog "lifelink/internal/log"
	"lifelink/internal/repos"
)

// setup loads configuration, points logging at its sink and opens the store.
// The returned closer releases the log file and the database.
func setup(seed bool) (config.Config, *sqlx.DB, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, nil, nil, err
	}
	applog.SetLevel(cfg.LogLevel)

	var logFile *os.File
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			applog.Logger().WithError(err).Warnf("could not open log file %s", cfg.LogFile)
		} else {
			logFile = f
			applog.SetOutput(io.MultiWriter(os.Stdout, f))
		}
	}

	db, err := repos.Open(cfg.DBDSN, seed && cfg.SeedDemo)
	if err != nil {
		if logFile != nil {
			_ = logFile.Close()
		}
		return config.Config{}, nil, nil, fmt.Errorf("open store %s: %w", cfg.DBDSN, err)
	}

	closer := func() {
		_ = db.Close()
		if logFile != nil {
			_ = logFile.Close()
		}
	}
	return cfg, db, closer, nil
}
