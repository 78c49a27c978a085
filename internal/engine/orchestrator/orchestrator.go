// Package orchestrator drives ordered candidate commands until one succeeds.
package orchestrator

import (
	"context"
	"errors"
	"fmt"

	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/zerr"
)

// Orchestrator runs candidate lists through a Runner, one subprocess at a time.
type Orchestrator struct {
	runner ports.Runner
	tracer ports.Tracer
	logger ports.Logger
}

// New creates a new Orchestrator with the given dependencies.
func New(runner ports.Runner, tracer ports.Tracer, logger ports.Logger) *Orchestrator {
	return &Orchestrator{
		runner: runner,
		tracer: tracer,
		logger: logger,
	}
}

// Execute attempts the candidates in order and stops at the first success.
//
// Every failed attempt is reported before the next one starts. When no candidate
// succeeds the result has VerdictExhausted and the error wraps
// domain.ErrExhaustedFallbacks together with each attempt's error.
// A cancelled context stops the chain before the next candidate is launched.
func (o *Orchestrator) Execute(
	ctx context.Context,
	stage string,
	candidates []domain.Command,
) (domain.StageResult, error) {
	result := domain.StageResult{Stage: stage, Verdict: domain.VerdictExhausted}

	ctx, stageSpan := o.tracer.Start(ctx, stage)
	defer stageSpan.End()
	stageSpan.SetAttribute("candidates", len(candidates))

	errs := make([]error, 0, len(candidates))
	for i, cmd := range candidates {
		if err := ctx.Err(); err != nil {
			stageSpan.RecordError(err)
			return result, zerr.With(zerr.Wrap(err, stage+" interrupted"), "stage", stage)
		}

		attempt := o.attempt(ctx, cmd, i+1)
		result.Attempts = append(result.Attempts, attempt)

		if attempt.Succeeded() {
			result.Verdict = domain.VerdictSuccess
			stageSpan.SetAttribute("winner", cmd.Describe())
			return result, nil
		}

		o.reportFailure(attempt)
		errs = append(errs, attempt.Err)

		if i+1 < len(candidates) {
			o.logger.Info("trying " + candidates[i+1].Describe())
		}
	}

	err := zerr.Wrap(errors.Join(domain.ErrExhaustedFallbacks, errors.Join(errs...)), stage+" failed")
	err = zerr.With(err, "attempts", len(result.Attempts))
	stageSpan.RecordError(err)
	return result, err
}

// attempt runs one candidate inside its own span.
func (o *Orchestrator) attempt(ctx context.Context, cmd domain.Command, n int) domain.Attempt {
	ctx, span := o.tracer.Start(ctx, cmd.String())
	defer span.End()

	span.SetAttribute("attempt", n)
	if cmd.Label != "" {
		span.SetAttribute("strategy", cmd.Label)
	}

	attempt := o.runner.Run(ctx, cmd, span)
	if attempt.Command.Args == nil {
		attempt.Command = cmd
	}
	if !attempt.Succeeded() && attempt.Err == nil {
		attempt.Err = outcomeError(cmd, attempt)
	}

	span.SetAttribute("outcome", attempt.Outcome.String())
	span.SetAttribute("exit_code", attempt.ExitCode)
	if attempt.Err != nil {
		span.RecordError(attempt.Err)
	}
	return attempt
}

func (o *Orchestrator) reportFailure(a domain.Attempt) {
	switch a.Outcome {
	case domain.OutcomeNotFound:
		o.logger.Warn(fmt.Sprintf("%s failed: command not found: %s", a.Command.Describe(), a.Command.Name()))
	default:
		o.logger.Warn(fmt.Sprintf("%s failed (exit %d): %s", a.Command.Describe(), a.ExitCode, a.Command))
	}
}

// outcomeError synthesizes an error for runners that report a failure without one.
func outcomeError(cmd domain.Command, a domain.Attempt) error {
	if a.Outcome == domain.OutcomeNotFound {
		return zerr.With(zerr.Wrap(domain.ErrLaunchNotFound, cmd.String()), "command", cmd.Name())
	}
	return zerr.With(zerr.Wrap(domain.ErrNonZeroExit, cmd.String()), "exit_code", a.ExitCode)
}
