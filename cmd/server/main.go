package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/teamkeeper/internal/server"
	"github.com/dmitrijs2005/teamkeeper/internal/server/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()

	if cfg.IssueTokenFor != "" {
		if err := server.IssueToken(os.Stdout, cfg, cfg.IssueTokenFor); err != nil {
			log.Fatalf("%v", err)
		}
		return
	}

	app, err := server.NewApp(ctx, cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}

}
