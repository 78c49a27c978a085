// export_test.go exports private functions for white-box testing.
package logger

import (
	"io"
	"log/slog"

	"github.com/muesli/termenv"
	"go.trai.ch/kiln/internal/ui/output"
)

// Exported error formatting helpers for testing.
var (
	CollectErrorEntriesExported = collectErrorEntries
	FormatErrorEntriesExported  = formatErrorEntries
)

// NewPrettyHandlerWithProfile creates a handler with a fixed color profile.
func NewPrettyHandlerWithProfile(w io.Writer, profile termenv.Profile) *PrettyHandler {
	return &PrettyHandler{
		out:   output.NewWithProfile(w, func() termenv.Profile { return profile }),
		level: slog.LevelInfo,
	}
}
