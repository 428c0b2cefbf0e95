package application

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"raincast/internal/config"
	"raincast/internal/domain/service/prediction"
	"raincast/internal/infrastructure/metrics"
	"raincast/internal/server"
	"raincast/pkg/application/modules"
	"raincast/pkg/contextx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// Run serves the API, probes and metrics until ctx is canceled or one of the
// listeners fails.
func Run(ctx context.Context, cfg config.Config, version string) error {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}), //nolint:exhaustruct
	)

	predictionCollector, err := metrics.NewPredictionCollector(registry)
	if err != nil {
		return fmt.Errorf("metrics.NewPredictionCollector: %w", err)
	}

	predictionService := prediction.NewService(cfg.Rain.Policy()).
		WithHumidityCache(cfg.Rain.HumidityCacheTTL)

	router := server.NewRouter(
		server.NewServer(
			server.NewPredictionServer(predictionService, predictionCollector),
		),
		server.RouterOptions{
			AllowedOrigins: cfg.CORS.AllowedOrigins,
			LogFieldMaxLen: cfg.Log.FieldMaxLen,
		},
	)

	g, ctx := errgroup.WithContext(ctx)

	probeServer := modules.ProbeServer{
		Name:          cfg.App.Name,
		Version:       version,
		ListenAddress: cfg.Probe.Address,
	}.Run(ctx, g)

	modules.MetricServer{
		ListenAddress: cfg.Metrics.Address,
		Gatherer:      registry,
	}.Run(ctx, g)

	httpServer := &http.Server{
		//nolint:exhaustruct
		Addr:              cfg.HTTP.Address(),
		Handler:           router,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	if err = (modules.HTTPServer{ShutdownTimeout: cfg.HTTP.ShutdownTimeout}).Run(ctx, g, httpServer); err != nil {
		return fmt.Errorf("modules.HTTPServer.Run: %w", err)
	}

	probeServer.MarkReady()

	logger(ctx).Info(
		"application started",
		slog.String("policy", predictionService.Policy().String()),
		slog.Duration("humidity-cache-ttl", cfg.Rain.HumidityCacheTTL),
	)

	if err = g.Wait(); err != nil {
		return fmt.Errorf("errgroup.Wait: %w", err)
	}

	return nil
}
