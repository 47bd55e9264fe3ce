package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	server := &srv{}

	app := &cli.App{
		Name:  "typer",
		Usage: "betting pool backend",
		Commands: []*cli.Command{
			{
				Name:   "api",
				Usage:  "run the api server",
				Action: server.startApi,
			},
			{
				Name:   "migrate",
				Usage:  "bring the database schema up to date",
				Action: server.startMigrate,
			},
			{
				Name:   "provision",
				Usage:  "create the bootstrap super admin account",
				Action: server.startProvision,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
