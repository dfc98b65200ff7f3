package main

import (
	"fmt"
	"os"

	"reco/cmd"
	"reco/internal/seed"

	"github.com/urfave/cli/v2"
)

var seedCommand = &cli.Command{
	Name:  "seed",
	Usage: "Load demo profiles, collection points, partners and donations",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "fixtures",
			Aliases: []string{"f"},
			Usage:   "YAML fixtures file; the built-in set is used when empty",
		},
	},
	Action: seedData,
}

func seedData(cCtx *cli.Context) error {
	logger := newLogger()

	config, err := cmd.LoadConfig(cCtx.String("env-file"))
	if err != nil {
		return err
	}
	if err := config.ValidateDatabase(); err != nil {
		return err
	}

	fixtures, err := loadFixtures(cCtx.String("fixtures"))
	if err != nil {
		return err
	}

	db, err := cmd.OpenDatabase(cCtx.Context, config)
	if err != nil {
		return err
	}
	defer func() { _ = cmd.CloseDatabase(db) }()

	seeder, err := cmd.NewCompositionRoot(config, logger, db).CreateSeeder()
	if err != nil {
		return err
	}

	res, err := seeder.Apply(cCtx.Context, fixtures)
	if err != nil {
		return err
	}
	fmt.Printf("seeded %d records, %d already present\n", res.Created, res.Skipped)
	return nil
}

func loadFixtures(path string) (seed.Fixtures, error) {
	if path == "" {
		return seed.DefaultFixtures()
	}
	f, err := os.Open(path)
	if err != nil {
		return seed.Fixtures{}, fmt.Errorf("open fixtures: %w", err)
	}
	defer f.Close()
	return seed.Load(f)
}
