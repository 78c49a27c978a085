package app

import (
	"context"

	"go.trai.ch/kiln/internal/core/ports"
)

// Components holds the application components wired for one invocation.
type Components struct {
	App    *App
	Logger ports.Logger
	Tracer ports.Tracer
}

// shutdowner is implemented by tracers that own exporter resources.
type shutdowner interface {
	Shutdown(ctx context.Context) error
}

// Shutdown flushes pending telemetry and renderer output.
func (c *Components) Shutdown(ctx context.Context) error {
	if s, ok := c.Tracer.(shutdowner); ok {
		return s.Shutdown(ctx)
	}
	return nil
}
