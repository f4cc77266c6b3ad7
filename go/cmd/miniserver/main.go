// Mini server — serves a static JSON file on /api/data.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/example/snippet-lab/go/pkg/config"
	"github.com/example/snippet-lab/go/pkg/datafile"
	"github.com/example/snippet-lab/go/pkg/logging"
	"github.com/example/snippet-lab/go/pkg/miniserver"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	defer logger.Sync()

	payload, err := datafile.Load(cfg.DataPath)
	if err != nil {
		logger.Error("Error reading data file", zap.String("path", cfg.DataPath), zap.Error(err))
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := &miniserver.Server{
		Addr:    cfg.Addr(),
		Handler: miniserver.NewHandler(payload, logger),
		Logger:  logger,
	}
	if err := srv.Run(ctx); err != nil {
		logger.Error("server failed", zap.Error(err))
		return 1
	}
	return 0
}
