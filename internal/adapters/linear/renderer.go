// Package linear provides a synchronous, line-buffered renderer for build output.
package linear

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/muesli/termenv"
	"go.trai.ch/kiln/internal/ui/output"
	"go.trai.ch/kiln/internal/ui/style"
)

// Renderer implements ports.Renderer.
// Status lines go to stderr prefixed with the stage name; command output is
// copied verbatim to stdout one line at a time.
type Renderer struct {
	stdout  io.Writer
	stderr  io.Writer
	profile func() termenv.Profile

	mu    sync.Mutex
	spans map[string]*spanState
}

type spanState struct {
	name      string
	stage     string
	startTime time.Time
	buf       bytes.Buffer
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithProfile sets the color profile selector. It is evaluated for every
// status line so later color changes are honoured.
func WithProfile(profile func() termenv.Profile) Option {
	return func(r *Renderer) {
		r.profile = profile
	}
}

// NewRenderer creates a new Renderer. Nil writers default to os.Stdout and os.Stderr.
func NewRenderer(stdout, stderr io.Writer, opts ...Option) *Renderer {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	r := &Renderer{
		stdout:  stdout,
		stderr:  stderr,
		profile: output.ColorProfileANSI,
		spans:   make(map[string]*spanState),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// OnAttemptStart announces a stage or a candidate command.
func (r *Renderer) OnAttemptStart(spanID, parentID, name string, startTime time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	state := &spanState{name: name, stage: name, startTime: startTime}
	parent, isAttempt := r.spans[parentID]
	if isAttempt {
		state.stage = parent.stage
	}
	r.spans[spanID] = state

	out := output.NewWithProfile(r.stderr, r.profile)
	prefix := out.String(fmt.Sprintf("[%s]", state.stage)).Faint().String()

	if isAttempt {
		cmd := out.String(style.Play + " " + name).Bold().String()
		_, _ = fmt.Fprintf(r.stderr, "%s %s\n", prefix, cmd)
		return
	}
	_, _ = fmt.Fprintf(r.stderr, "%s Starting...\n", prefix)
}

// OnAttemptLog buffers output and prints complete lines.
func (r *Renderer) OnAttemptLog(spanID string, data []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()

	state, ok := r.spans[spanID]
	if !ok {
		return
	}

	state.buf.Write(data)
	for {
		i := bytes.IndexByte(state.buf.Bytes(), '\n')
		if i < 0 {
			break
		}
		line := state.buf.Next(i + 1)
		r.printLineLocked(line)
	}
}

// OnAttemptComplete flushes remaining output and prints the completion status.
func (r *Renderer) OnAttemptComplete(spanID string, endTime time.Time, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	state, ok := r.spans[spanID]
	if !ok {
		return
	}

	r.flushLocked(state)

	duration := endTime.Sub(state.startTime).Round(time.Millisecond)
	out := output.NewWithProfile(r.stderr, r.profile)
	prefix := out.String(fmt.Sprintf("[%s]", state.stage)).Faint().String()

	if err != nil {
		symbol := out.String(style.Cross).Foreground(termenv.ANSIRed).String()
		_, _ = fmt.Fprintf(r.stderr, "%s %s Failed after %v: %s\n", prefix, symbol, duration, firstLine(err.Error()))
	} else {
		symbol := out.String(style.Check).Foreground(termenv.ANSIGreen).String()
		_, _ = fmt.Fprintf(r.stderr, "%s %s Completed in %v\n", prefix, symbol, duration)
	}

	delete(r.spans, spanID)
}

// Flush prints any buffered partial lines.
func (r *Renderer) Flush() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, state := range r.spans {
		r.flushLocked(state)
	}
	return nil
}

// flushLocked must be called with r.mu held.
func (r *Renderer) flushLocked(state *spanState) {
	if state.buf.Len() > 0 {
		r.printLineLocked(state.buf.Bytes())
		state.buf.Reset()
	}
}

// printLineLocked must be called with r.mu held.
func (r *Renderer) printLineLocked(line []byte) {
	line = bytes.TrimSuffix(line, []byte("\n"))
	line = bytes.TrimSuffix(line, []byte("\r"))
	_, _ = fmt.Fprintf(r.stdout, "%s\n", line)
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}
