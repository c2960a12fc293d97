package main

import (
	"context"
	"log"
	"os"

	"github.com/papacapim/papacapim/internal/buildinfo"
	"github.com/papacapim/papacapim/internal/client/cli"
	"github.com/papacapim/papacapim/internal/client/config"
	"github.com/papacapim/papacapim/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	logger, err := logging.New(os.Stderr, cfg.LogLevel)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)

}
