// Package output creates termenv outputs that honour NO_COLOR consistently
// across the logger and the renderer.
package output

import (
	"io"
	"os"
	"sync/atomic"

	"github.com/muesli/termenv"
)

var noColor atomic.Bool

// SetNoColor disables color for kiln's own output without touching the
// environment that build commands inherit.
func SetNoColor(disable bool) {
	noColor.Store(disable)
}

// NoColor reports whether color is disabled by SetNoColor or NO_COLOR.
func NoColor() bool {
	return noColor.Load() || os.Getenv("NO_COLOR") != ""
}

// ColorProfile returns the profile for human-facing logs.
// NoColor forces Ascii; otherwise the terminal's capabilities are detected.
func ColorProfile() termenv.Profile {
	if NoColor() {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// ColorProfileANSI returns the profile for build output, which is often piped
// into CI logs. NoColor forces Ascii; otherwise basic ANSI is used.
func ColorProfileANSI() termenv.Profile {
	if NoColor() {
		return termenv.Ascii
	}
	return termenv.ANSI
}

// New creates a termenv.Output for w using ColorProfile.
func New(w io.Writer) *termenv.Output {
	return NewWithProfile(w, ColorProfile)
}

// NewWithProfile creates a termenv.Output for w using the given profile selector.
// A nil writer means os.Stderr.
func NewWithProfile(w io.Writer, profileFn func() termenv.Profile) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}
	return termenv.NewOutput(w, termenv.WithProfile(profileFn()), termenv.WithTTY(true))
}
