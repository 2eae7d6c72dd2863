package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/inventorypro/cli/internal/client/cli"
	"github.com/inventorypro/cli/internal/client/config"
	"github.com/inventorypro/cli/internal/logging"
)

func main() {

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()
	logger := logging.NewFileLogger(cfg.LogFile)

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)

}
