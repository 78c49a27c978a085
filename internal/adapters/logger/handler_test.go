package logger_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/kiln/internal/adapters/logger"
)

func TestPrettyHandler_Attrs(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	h := logger.NewPrettyHandler(&buf, nil)
	log := slog.New(h).With("stage", "project build").WithGroup("cmd")

	log.Warn("retrying", "attempt", 2)

	g := goldie.New(t)
	g.Assert(t, "handler_attrs", buf.Bytes())
}

func TestPrettyHandler_Level(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	h := logger.NewPrettyHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn})
	log := slog.New(h)

	log.Info("hidden")
	log.Warn("shown")

	assert.Equal(t, "! shown\n", buf.String())
}

func TestPrettyHandler_AttemptAttrsInline(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	log := slog.New(logger.NewPrettyHandler(&buf, nil))

	log.Warn("cmake --parallel failed", "exit_code", 2, "command", "cmake --build build --parallel 4", "attempt", 1)
	log.Warn("make failed", "command", "make -f Makefile")

	assert.Equal(t,
		"! cmake --parallel failed (exit 2): cmake --build build --parallel 4 attempt=1\n"+
			"! make failed: make -f Makefile\n",
		buf.String())
}

func TestPrettyHandler_GroupedAttrs(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	log := slog.New(logger.NewPrettyHandler(&buf, nil)).WithGroup("run")

	log.Info("done", slog.Group("session", "jobs", 4, "dir", ""), "exit_code", 0)

	assert.Equal(t, "done run.session.jobs=4 run.session.dir=\"\" run.exit_code=0\n", buf.String())
}

func TestPrettyHandler_ColorsEachLine(t *testing.T) {
	t.Setenv("NO_COLOR", "")

	var buf bytes.Buffer
	h := logger.NewPrettyHandlerWithProfile(&buf, termenv.ANSI256)
	slog.New(h).Error("Error: build failed\n  Caused by:")

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	for _, line := range lines {
		assert.True(t, strings.HasPrefix(line, "\x1b["), "line %q must open its own color", line)
		assert.True(t, strings.HasSuffix(line, "\x1b[0m"), "line %q must reset its color", line)
	}
}
