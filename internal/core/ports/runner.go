// Package ports defines the core interfaces for the application.
package ports

import (
	"context"
	"io"

	"go.trai.ch/kiln/internal/core/domain"
)

// Runner defines the interface for running a single external command.
//
//go:generate mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type Runner interface {
	// Run executes the command and blocks until it terminates.
	//
	// The merged stdout and stderr of the child are written to out line by line
	// as they are produced. The returned attempt classifies the result as
	// succeeded, failed or not found; it never retries.
	Run(ctx context.Context, cmd domain.Command, out io.Writer) domain.Attempt
}
