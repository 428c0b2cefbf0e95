package modules

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"raincast/pkg/probe"
)

type ProbeServer struct {
	Name          string
	Version       string
	ListenAddress string
}

// Run starts the probe listener and returns the probe so the caller can mark
// readiness once the rest of the application is up.
func (p ProbeServer) Run(ctx context.Context, g *errgroup.Group) *probe.Server {
	probeServer := probe.NewServer(
		p.ListenAddress,
		probe.Options{
			Name:    p.Name,
			Version: p.Version,
		},
	)

	g.Go(func() error {
		if err := probeServer.Run(ctx); err != nil {
			return fmt.Errorf("probeServer.Run: %w", err)
		}

		return nil
	})

	return probeServer
}
