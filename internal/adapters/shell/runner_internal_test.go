package shell

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveEnvironment(t *testing.T) {
	tests := []struct {
		name     string
		sysEnv   []string
		overlay  map[string]string
		expected []string
	}{
		{
			name:     "Inherited Only",
			sysEnv:   []string{"USER=test", "PATH=/bin", "HOME=/home/test"},
			expected: []string{"HOME=/home/test", "PATH=/bin", "USER=test"},
		},
		{
			name:     "Overlay Adds",
			sysEnv:   []string{"PATH=/bin"},
			overlay:  map[string]string{"CMAKE_BUILD_PARALLEL_LEVEL": "8"},
			expected: []string{"CMAKE_BUILD_PARALLEL_LEVEL=8", "PATH=/bin"},
		},
		{
			name:     "Overlay Wins",
			sysEnv:   []string{"CMAKE_BUILD_PARALLEL_LEVEL=1", "PATH=/bin"},
			overlay:  map[string]string{"CMAKE_BUILD_PARALLEL_LEVEL": "4"},
			expected: []string{"CMAKE_BUILD_PARALLEL_LEVEL=4", "PATH=/bin"},
		},
		{
			name:     "Malformed Entries Skipped",
			sysEnv:   []string{"NOEQUALS", "=C:=C:\\", "A=1=2"},
			expected: []string{"A=1=2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, resolveEnvironment(tt.sysEnv, tt.overlay))
		})
	}
}

func TestLineWriter(t *testing.T) {
	var out bytes.Buffer
	w := &lineWriter{out: &out}

	_, _ = w.Write([]byte("par"))
	assert.Empty(t, out.String(), "partial lines are held back")

	_, _ = w.Write([]byte("t1\r\nline2\nta"))
	assert.Equal(t, "part1\nline2\n", out.String())

	_, _ = w.Write([]byte("il"))
	require.NoError(t, w.Close())
	assert.Equal(t, "part1\nline2\ntail\n", out.String())

	require.NoError(t, w.Close())
	assert.Equal(t, "part1\nline2\ntail\n", out.String(), "second close is a no-op")
}

func TestLookPath_EmptyPATH(t *testing.T) {
	_, err := lookPath("echo", []string{"USER=test"}, "")
	require.ErrorIs(t, err, exec.ErrNotFound)
}

func TestLookPath_ExecutableNotFound(t *testing.T) {
	_, err := lookPath("nonexistent-command", []string{"PATH=/nonexistent/dir"}, "")
	require.ErrorIs(t, err, exec.ErrNotFound)
}

func TestLookPath_FindsInPATH(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses a POSIX executable bit")
	}

	tmpDir := t.TempDir()
	tool := filepath.Join(tmpDir, "fake-tool")
	require.NoError(t, os.WriteFile(tool, []byte("#!/bin/sh\n"), 0o700))

	got, err := lookPath("fake-tool", []string{"PATH=/nonexistent" + string(os.PathListSeparator) + tmpDir}, "")
	require.NoError(t, err)
	assert.Equal(t, tool, got)
}

func TestLookPath_RelativeToWorkingDir(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses a POSIX executable bit")
	}

	tmpDir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(tmpDir, "bin"), 0o750))
	tool := filepath.Join(tmpDir, "bin", "tool")
	require.NoError(t, os.WriteFile(tool, []byte("#!/bin/sh\n"), 0o700))

	got, err := lookPath("bin/tool", nil, tmpDir)
	require.NoError(t, err)
	assert.Equal(t, tool, got)
}

func TestCheckExecutable(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses a POSIX executable bit")
	}

	tmpDir := t.TempDir()

	t.Run("NonExistent", func(t *testing.T) {
		require.ErrorIs(t, checkExecutable(filepath.Join(tmpDir, "missing")), os.ErrNotExist)
	})

	t.Run("Directory", func(t *testing.T) {
		require.ErrorIs(t, checkExecutable(tmpDir), os.ErrPermission)
	})

	t.Run("NotExecutable", func(t *testing.T) {
		file := filepath.Join(tmpDir, "plain")
		require.NoError(t, os.WriteFile(file, []byte("data"), 0o600))
		require.ErrorIs(t, checkExecutable(file), os.ErrPermission)
	})
}

func TestWindowsExtensions(t *testing.T) {
	assert.Equal(t, []string{".com", ".exe", ".bat", ".cmd"}, windowsExtensions(nil))
	assert.Equal(t, []string{".exe", ".ps1"}, windowsExtensions([]string{"PathExt=.EXE;;.PS1"}))
}
