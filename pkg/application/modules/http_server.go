package modules

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"raincast/pkg/logx"
)

// HTTPServer starts the HTTP server and shuts it down gracefully once ctx
// is done.
type HTTPServer struct {
	ShutdownTimeout time.Duration
}

// Run binds the listening socket before returning, so a nil error means the
// server accepts connections. Serving continues inside g.
func (h HTTPServer) Run(
	ctx context.Context,
	g *errgroup.Group,
	httpServer *http.Server,
) error {
	var lc net.ListenConfig

	listener, err := lc.Listen(ctx, "tcp", httpServer.Addr)
	if err != nil {
		return fmt.Errorf("net.Listen: %w", err)
	}

	g.Go(func() error {
		go func() {
			<-ctx.Done()

			ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), h.ShutdownTimeout) //nolint:govet
			defer cancel()

			if err := httpServer.Shutdown(ctx); err != nil {
				logger(ctx).Error("server.Shutdown", logx.Error(err))
			}
		}()

		logger(ctx).Info("http server started", slog.String("address", listener.Addr().String()))

		if err := httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("httpServer.Serve: %w", err)
		}

		logger(ctx).Info("http server stopped", slog.String("address", listener.Addr().String()))

		return nil
	})

	return nil
}
