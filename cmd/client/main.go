package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/teamkeeper/internal/client/cli"
	"github.com/dmitrijs2005/teamkeeper/internal/client/config"
	"github.com/dmitrijs2005/teamkeeper/internal/flagx"
	"github.com/dmitrijs2005/teamkeeper/internal/logging"
)

func main() {

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatalf("%v", err)
	}
	logger := logging.NewJSONLogger(os.Stderr, level)

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	err = app.Run(ctx, flagx.Positional(os.Args[1:], config.Flags))
	if cerr := app.Close(); cerr != nil {
		logger.Warn(ctx, "error closing client", "error", cerr)
	}
	if err != nil {
		log.Fatalf("%v", err)
	}

}
