package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/kiln/internal/ui/output"
	"go.trai.ch/kiln/internal/ui/style"
)

// Attribute keys rendered inline in the attempt report format,
// e.g. "make failed (exit 2): make -f Makefile".
const (
	exitCodeKey = "exit_code"
	commandKey  = "command"
)

// levelStyle is the icon and color of one severity band.
type levelStyle struct {
	min   slog.Level
	icon  string
	color lipgloss.Color
}

// levelStyles is ordered from most to least severe.
var levelStyles = []levelStyle{
	{min: slog.LevelError, icon: style.Cross, color: style.Red},
	{min: slog.LevelWarn, icon: style.Warning, color: style.Yellow},
	{min: slog.LevelDebug, color: style.Slate},
}

func styleFor(level slog.Level) levelStyle {
	for _, s := range levelStyles {
		if level >= s.min {
			return s
		}
	}
	return levelStyles[len(levelStyles)-1]
}

// PrettyHandler is a slog.Handler producing colored, human-readable lines.
// Attributes from WithAttrs are formatted once, when they are added.
type PrettyHandler struct {
	out    *termenv.Output
	level  slog.Leveler
	prefix string
	// preformatted holds the rendered handler attributes, including the
	// inline exit code and command when present.
	preformatted attrSet
}

// attrSet accumulates rendered attributes for one line.
type attrSet struct {
	exitCode string
	command  string
	pairs    []string
}

func (s attrSet) clone() attrSet {
	s.pairs = append([]string(nil), s.pairs...)
	return s
}

// add renders attr under prefix. Groups are flattened into dotted keys.
func (s *attrSet) add(prefix string, attr slog.Attr) {
	attr.Value = attr.Value.Resolve()
	if attr.Equal(slog.Attr{}) {
		return
	}

	if attr.Value.Kind() == slog.KindGroup {
		groupPrefix := prefix
		if attr.Key != "" {
			groupPrefix = prefix + attr.Key + "."
		}
		for _, member := range attr.Value.Group() {
			s.add(groupPrefix, member)
		}
		return
	}

	if prefix == "" {
		switch attr.Key {
		case exitCodeKey:
			s.exitCode = attr.Value.String()
			return
		case commandKey:
			s.command = attr.Value.String()
			return
		}
	}

	s.pairs = append(s.pairs, prefix+attr.Key+"="+quoteIfNeeded(attr.Value.String()))
}

// render appends the attributes to msg.
func (s attrSet) render(msg string) string {
	var b strings.Builder
	b.WriteString(msg)
	if s.exitCode != "" {
		b.WriteString(" (exit " + s.exitCode + ")")
	}
	if s.command != "" {
		b.WriteString(": " + s.command)
	}
	for _, p := range s.pairs {
		b.WriteString(" " + p)
	}
	return b.String()
}

func quoteIfNeeded(v string) string {
	if v == "" || strings.ContainsAny(v, " \t\n\"=") {
		return strconv.Quote(v)
	}
	return v
}

// NewPrettyHandler creates a new PrettyHandler writing to the provided writer.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if w == nil {
		w = os.Stderr
	}

	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}

	return &PrettyHandler{
		out:   output.New(w),
		level: level,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle formats and outputs the log record.
// Each line of a multi-line message is colored on its own so escape
// sequences never span a newline in CI logs.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	attrs := h.preformatted.clone()
	r.Attrs(func(attr slog.Attr) bool {
		attrs.add(h.prefix, attr)
		return true
	})

	ls := styleFor(r.Level)
	msg := attrs.render(r.Message)
	if ls.icon != "" {
		msg = ls.icon + " " + msg
	}

	color := termenv.RGBColor(string(ls.color))
	var b strings.Builder
	for line := range strings.SplitSeq(msg, "\n") {
		b.WriteString(h.out.String(line).Foreground(color).String())
		b.WriteByte('\n')
	}

	_, err := h.out.WriteString(b.String())
	return err
}

// WithAttrs returns a new Handler with the given attributes rendered in.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}

	next := *h
	next.preformatted = h.preformatted.clone()
	for _, attr := range attrs {
		next.preformatted.add(h.prefix, attr)
	}
	return &next
}

// WithGroup returns a new Handler that qualifies later attributes with name.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	next := *h
	next.prefix = h.prefix + name + "."
	return &next
}
