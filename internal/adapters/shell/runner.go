// Package shell provides a subprocess runner with merged, line-buffered output.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"time"

	"github.com/creack/pty"
	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// interruptGrace is how long an interrupted child may take to exit before it is killed.
const interruptGrace = 5 * time.Second

// Runner implements ports.Runner using os/exec and a pty where available.
type Runner struct {
	environ func() []string
}

// NewRunner creates a new Runner that inherits the process environment.
func NewRunner() *Runner {
	return &Runner{environ: os.Environ}
}

// Run executes the command and streams its merged output to out.
func (r *Runner) Run(ctx context.Context, cmd domain.Command, out io.Writer) domain.Attempt {
	attempt := domain.Attempt{Command: cmd, Outcome: domain.OutcomeFailed, ExitCode: -1}

	if len(cmd.Args) == 0 {
		attempt.Err = zerr.Wrap(domain.ErrEmptyCommand, "cannot run command")
		return attempt
	}

	name := cmd.Args[0]
	env := resolveEnvironment(r.environ(), cmd.Env)

	executable, err := lookPath(name, env, cmd.WorkingDir)
	if err != nil {
		return notFound(attempt, out, err)
	}

	c := exec.CommandContext(ctx, executable, cmd.Args[1:]...) //nolint:gosec // candidate commands are built by the planner
	c.Args[0] = name
	c.Dir = cmd.WorkingDir
	c.Env = env
	// The pty puts the child in its own session, so a terminal Ctrl-C only
	// reaches kiln. Forward it as SIGINT and kill after the grace period.
	c.Cancel = func() error { return c.Process.Signal(os.Interrupt) }
	c.WaitDelay = interruptGrace

	stream, err := startMerged(c)
	if err != nil {
		if isNotFound(err) {
			return notFound(attempt, out, err)
		}
		attempt.Err = zerr.With(zerr.Wrap(err, "failed to start command"), "command", name)
		return attempt
	}

	lines := &lineWriter{out: out}

	var g errgroup.Group
	g.Go(func() error {
		defer func() { _ = stream.Close() }()
		_, copyErr := io.Copy(lines, stream)
		return copyErr
	})

	waitErr := c.Wait()
	// Reading a pty master after the child exits yields EIO on Linux; that is end of stream.
	_ = g.Wait()
	_ = lines.Close()

	if waitErr == nil {
		attempt.Outcome = domain.OutcomeSucceeded
		attempt.ExitCode = 0
		return attempt
	}

	var exitErr *exec.ExitError
	if errors.As(waitErr, &exitErr) {
		attempt.ExitCode = exitErr.ExitCode()
	}
	err = zerr.Wrap(domain.ErrNonZeroExit, cmd.String())
	err = zerr.With(err, "exit_code", attempt.ExitCode)
	attempt.Err = zerr.With(err, "cause", waitErr.Error())
	return attempt
}

func notFound(attempt domain.Attempt, out io.Writer, cause error) domain.Attempt {
	name := attempt.Command.Name()
	_, _ = fmt.Fprintf(out, "command not found: %s\n", name)

	attempt.Outcome = domain.OutcomeNotFound
	err := zerr.Wrap(domain.ErrLaunchNotFound, name)
	err = zerr.With(err, "command", name)
	attempt.Err = zerr.With(err, "cause", cause.Error())
	return attempt
}

func isNotFound(err error) bool {
	return errors.Is(err, exec.ErrNotFound) ||
		errors.Is(err, fs.ErrNotExist) ||
		errors.Is(err, fs.ErrPermission)
}

// startMerged starts c with stdout and stderr merged into one stream.
// A pty is used where supported so the child sees a terminal and the relative
// order of both streams is preserved; otherwise a single pipe is shared.
func startMerged(c *exec.Cmd) (io.ReadCloser, error) {
	ptmx, err := pty.Start(c)
	if err == nil {
		return ptmx, nil
	}
	if !errors.Is(err, pty.ErrUnsupported) {
		return nil, err
	}

	pr, pw, err := os.Pipe()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create output pipe")
	}
	c.Stdout = pw
	c.Stderr = pw
	if err := c.Start(); err != nil {
		_ = pr.Close()
		_ = pw.Close()
		return nil, err
	}
	// The child holds its own copy of the write end.
	_ = pw.Close()
	return pr, nil
}

// lineWriter forwards complete lines to out as they arrive.
type lineWriter struct {
	out io.Writer
	buf []byte
}

func (w *lineWriter) Write(p []byte) (int, error) {
	w.buf = append(w.buf, p...)

	for {
		i := slices.Index(w.buf, '\n')
		if i < 0 {
			break
		}
		w.writeLine(w.buf[:i])
		w.buf = w.buf[i+1:]
	}

	return len(p), nil
}

// Close flushes a trailing partial line.
func (w *lineWriter) Close() error {
	if len(w.buf) > 0 {
		w.writeLine(w.buf)
		w.buf = nil
	}
	return nil
}

func (w *lineWriter) writeLine(line []byte) {
	// PTYs may introduce \r. Remove it.
	msg := strings.TrimSuffix(string(line), "\r")
	_, _ = io.WriteString(w.out, msg+"\n")
}

// resolveEnvironment overlays the command environment on the inherited one.
// The result is sorted by key.
func resolveEnvironment(sysEnv []string, overlay map[string]string) []string {
	envMap := make(map[string]string, len(sysEnv)+len(overlay))
	for _, entry := range sysEnv {
		if k, v, ok := strings.Cut(entry, "="); ok && k != "" {
			envMap[k] = v
		}
	}
	for k, v := range overlay {
		envMap[k] = v
	}

	result := make([]string, 0, len(envMap))
	for _, k := range slices.Sorted(maps.Keys(envMap)) {
		result = append(result, k+"="+envMap[k])
	}
	return result
}

// lookPath resolves file against the PATH of env.
// Names containing a path separator are resolved relative to dir.
func lookPath(file string, env []string, dir string) (string, error) {
	if strings.ContainsRune(file, '/') || strings.ContainsRune(file, filepath.Separator) {
		path := file
		if !filepath.IsAbs(path) && dir != "" {
			path = filepath.Join(dir, path)
		}
		return findExecutable(path, env)
	}

	var path string
	for _, e := range env {
		if p, ok := strings.CutPrefix(e, "PATH="); ok {
			path = p
			break
		}
	}

	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, d := range filepath.SplitList(path) {
		if d == "" {
			// Unix shell semantics: path element "" means "."
			d = "."
		}
		if found, err := findExecutable(filepath.Join(d, file), env); err == nil {
			return found, nil
		}
	}
	return "", exec.ErrNotFound
}

// findExecutable returns file if it is an executable regular file.
// On Windows the PATHEXT extensions are tried as well.
func findExecutable(file string, env []string) (string, error) {
	if runtime.GOOS != "windows" {
		return file, checkExecutable(file)
	}

	if filepath.Ext(file) != "" {
		if err := checkExecutable(file); err == nil {
			return file, nil
		}
	}
	for _, ext := range windowsExtensions(env) {
		if err := checkExecutable(file + ext); err == nil {
			return file + ext, nil
		}
	}
	return "", exec.ErrNotFound
}

func checkExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	m := d.Mode()
	if m.IsDir() {
		return os.ErrPermission
	}
	if runtime.GOOS == "windows" || m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}

func windowsExtensions(env []string) []string {
	pathext := ".COM;.EXE;.BAT;.CMD"
	for _, e := range env {
		k, v, ok := strings.Cut(e, "=")
		if ok && strings.EqualFold(k, "PATHEXT") && v != "" {
			pathext = v
			break
		}
	}
	var exts []string
	for _, ext := range strings.Split(strings.ToLower(pathext), ";") {
		if ext != "" {
			exts = append(exts, ext)
		}
	}
	return exts
}
