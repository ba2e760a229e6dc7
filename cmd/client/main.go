package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/authforms/internal/cli"
	"github.com/dmitrijs2005/authforms/internal/config"
	"github.com/dmitrijs2005/authforms/internal/logging"
)

func main() {

	cfg := config.LoadConfig()
	logger := logging.New(os.Stderr, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The first interrupt cancels an in-flight submission; restore the
	// default handling so a second one exits.
	go func() {
		<-ctx.Done()
		stop()
	}()

	logger.Debug(ctx, "starting", "submit_delay", cfg.SubmitDelay, "interactive", cfg.Interactive)

	app := cli.NewApp(cfg, logger, os.Stdin, os.Stdout)
	app.Run(ctx)

}
