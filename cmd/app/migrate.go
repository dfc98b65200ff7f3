package main

import (
	"reco/cmd"
	"reco/internal/adapters/out/postgres"

	"github.com/urfave/cli/v2"
)

var migrateCommand = &cli.Command{
	Name:   "migrate",
	Usage:  "Create or update the database schema",
	Action: migrate,
}

func migrate(cCtx *cli.Context) error {
	logger := newLogger()

	config, err := cmd.LoadConfig(cCtx.String("env-file"))
	if err != nil {
		return err
	}
	if err := config.ValidateDatabase(); err != nil {
		return err
	}

	db, err := cmd.OpenDatabase(cCtx.Context, config)
	if err != nil {
		return err
	}
	defer func() { _ = cmd.CloseDatabase(db) }()

	if err := postgres.Migrate(cCtx.Context, db); err != nil {
		return err
	}
	logger.Info("Schema is up to date", "tables", len(postgres.Tables))
	return nil
}
