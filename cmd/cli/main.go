package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/hackernews/internal/buildinfo"
	"github.com/dmitrijs2005/hackernews/internal/client/cli"
	"github.com/dmitrijs2005/hackernews/internal/client/config"
	"github.com/dmitrijs2005/hackernews/internal/flagx"
)

func main() {

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	app, err := cli.NewApp(cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	args := flagx.Positional(os.Args[1:], []string{"-a", "-t", "-f", "-c", "-config", "--config"})
	if len(args) == 0 {
		buildinfo.PrintBuildData(os.Stdout)
	}

	if err := app.Run(ctx, args); err != nil {
		log.Fatalf("%v", err)
	}
}
