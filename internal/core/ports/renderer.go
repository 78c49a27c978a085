package ports

import "time"

// Renderer is the abstraction for output rendering.
// It decouples telemetry collection from presentation logic.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// OnAttemptStart is called when a stage or a candidate command begins.
	// spanID: unique identifier for this execution
	// parentID: spanID of the enclosing stage (empty for a stage)
	// name: human-readable name, the rendered command for attempts
	OnAttemptStart(spanID, parentID, name string, startTime time.Time)

	// OnAttemptLog is called when a running command emits output.
	// data holds one or more complete lines.
	OnAttemptLog(spanID string, data []byte)

	// OnAttemptComplete is called when a stage or a candidate command finishes.
	// err is nil if successful.
	OnAttemptComplete(spanID string, endTime time.Time, err error)

	// Flush writes any buffered output.
	Flush() error
}
