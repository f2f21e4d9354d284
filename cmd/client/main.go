package main

import (
	"context"
	"log"

	"github.com/oshepkov/lockbank/internal/client/cli"
	"github.com/oshepkov/lockbank/internal/client/config"
)

func main() {
	cfg := config.LoadConfig()

	app, err := cli.NewApp(cfg)
	if err != nil {
		log.Fatalf("error initializing application: %s", err.Error())
	}

	app.Run(context.Background())
}
