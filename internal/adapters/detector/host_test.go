package detector_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/kiln/internal/adapters/detector"
	"go.trai.ch/kiln/internal/core/domain"
)

func TestHost_HostID(t *testing.T) {
	tests := []struct {
		name      string
		goos      string
		env       map[string]string
		wantID    string
		wantClass domain.HostClass
	}{
		{
			name:      "plain linux",
			goos:      "linux",
			wantID:    "linux",
			wantClass: domain.HostPosix,
		},
		{
			name:      "darwin",
			goos:      "darwin",
			wantID:    "darwin",
			wantClass: domain.HostPosix,
		},
		{
			name:      "native windows",
			goos:      "windows",
			wantID:    "windows",
			wantClass: domain.HostWindows,
		},
		{
			name:      "msys2 mingw shell",
			goos:      "windows",
			env:       map[string]string{"MSYSTEM": "MINGW64"},
			wantID:    "windows-mingw64",
			wantClass: domain.HostWindows,
		},
		{
			name:      "cygwin ostype on a posix build",
			goos:      "linux",
			env:       map[string]string{"OSTYPE": "cygwin"},
			wantID:    "linux-cygwin",
			wantClass: domain.HostWindows,
		},
		{
			name:      "bash ostype on linux",
			goos:      "linux",
			env:       map[string]string{"OSTYPE": "linux-gnu"},
			wantID:    "linux-linux-gnu",
			wantClass: domain.HostPosix,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			host := detector.NewHostWith(tt.goos, tt.env, 4)
			assert.Equal(t, tt.wantID, host.HostID())
			assert.Equal(t, tt.wantClass, domain.ClassifyHost(host.HostID()))
		})
	}
}

func TestHost_ProcessorCount(t *testing.T) {
	n, err := detector.NewHostWith("linux", nil, 8).ProcessorCount()
	require.NoError(t, err)
	assert.Equal(t, 8, n)

	_, err = detector.NewHostWith("linux", nil, 0).ProcessorCount()
	require.Error(t, err)

	assert.Equal(t, 2, domain.ResolveParallelism(detector.NewHostWith("linux", nil, 0).ProcessorCount()))
}

func TestNewHost(t *testing.T) {
	host := detector.NewHost()
	assert.NotEmpty(t, host.HostID())

	n, err := host.ProcessorCount()
	require.NoError(t, err)
	assert.GreaterOrEqual(t, n, 1)
}

func TestIsCI(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"true", true},
		{"1", true},
		{"false", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run("CI="+tt.value, func(t *testing.T) {
			t.Setenv("CI", tt.value)
			assert.Equal(t, tt.want, detector.IsCI())
		})
	}
}

func TestColorEnabled(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	t.Run("NO_COLOR wins", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")
		t.Setenv("CI", "true")
		assert.False(t, detector.ColorEnabled(f))
	})

	t.Run("CI enables color for files", func(t *testing.T) {
		t.Setenv("NO_COLOR", "")
		t.Setenv("CI", "true")
		assert.True(t, detector.ColorEnabled(f))
	})

	t.Run("regular file is not interactive", func(t *testing.T) {
		t.Setenv("NO_COLOR", "")
		t.Setenv("CI", "")
		assert.False(t, detector.IsInteractive(f))
		assert.False(t, detector.ColorEnabled(f))
	})
}
