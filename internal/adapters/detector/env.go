package detector

import (
	"os"

	"go.trai.ch/kiln/internal/ui/output"
	"golang.org/x/term"
)

// IsCI reports whether a CI environment variable is set.
func IsCI() bool {
	ci := os.Getenv("CI")
	return ci == "true" || ci == "1"
}

// IsInteractive reports whether f is attached to a terminal.
func IsInteractive(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// ColorEnabled decides whether build output written to f is colored.
// NO_COLOR and --no-color always win; CI logs render ANSI colors even without a terminal.
func ColorEnabled(f *os.File) bool {
	if output.NoColor() {
		return false
	}
	return IsCI() || IsInteractive(f)
}
