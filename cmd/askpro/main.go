package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/askpro/internal/app"
	"github.com/dmitrijs2005/askpro/internal/cli"
	"github.com/dmitrijs2005/askpro/internal/config"
	"github.com/dmitrijs2005/askpro/internal/logging"
)

func main() {
	cfg := config.LoadConfig()

	logger, err := logging.New(cfg.LogLevel, os.Stderr)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := run(cfg, logger); err != nil {
		logger.Error(context.Background(), "askpro exited", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger logging.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	board, err := app.Open(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer board.Close()

	return cli.NewApp(board.Auth, board.Board, board, logger, os.Stdin, os.Stdout).Run(ctx)
}
