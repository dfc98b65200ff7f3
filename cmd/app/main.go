package main

import (
	"os"

	"github.com/labstack/gommon/log"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "reco",
		Usage: "Donation, delivery and recycling workflow service",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "env-file",
				Aliases: []string{"e"},
				Usage:   "dotenv file loaded before reading the environment",
				Value:   ".env",
			},
		},
		Commands: []*cli.Command{
			serveCommand,
			migrateCommand,
			seedCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatalf("application failed: %v", err)
	}
}
