package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"raincast/internal/application"
	"raincast/internal/config"
	"raincast/pkg/contextx"
	"raincast/pkg/logx"
)

var version = "dev" //nolint:gochecknoglobals // set with -ldflags "-X main.version=..."

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("config.Load", logx.Error(err))
		os.Exit(1) //nolint:gocritic
	}

	log := logx.New(os.Stdout, logx.Options{
		AppName:    cfg.App.Name,
		AppVersion: version,
		AppEnv:     cfg.App.Env,
		Level:      cfg.Log.Level,
	})
	slog.SetDefault(log)

	ctx = contextx.WithLogger(ctx, log)

	if err = application.Run(ctx, cfg, version); err != nil {
		log.Error("application failed", logx.Error(err))
		os.Exit(1) //nolint:gocritic
	}

	log.Info("application stopped")
}
