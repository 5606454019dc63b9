package main

import (
	"context"
	"log"
	"os"
	_ "time/tzdata"

	"github.com/dmitrijs2005/eventdesk/internal/buildinfo"
	"github.com/dmitrijs2005/eventdesk/internal/cli"
	"github.com/dmitrijs2005/eventdesk/internal/config"
	"github.com/dmitrijs2005/eventdesk/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	logger := logging.New(os.Stderr, cfg.LogLevel)

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
