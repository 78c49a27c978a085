package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/kiln/internal/adapters/config"
	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func createFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}

func newLoader(t *testing.T) (*config.Loader, *mocks.MockLogger) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	return config.NewLoader(mockLogger), mockLogger
}

func TestLoader_Load_NoConfigUsesDefaults(t *testing.T) {
	loader, _ := newLoader(t)
	dir := t.TempDir()

	settings, err := loader.Load(dir)
	require.NoError(t, err)

	assert.Equal(t, dir, settings.Root)
	assert.Equal(t, dir, settings.SourceDir)
	assert.Equal(t, filepath.Join(dir, "build"), settings.BuildDir)
	assert.Equal(t, filepath.Join(dir, "ThirdParty", "Nuklear", "Makefile"), settings.Makefile)
	assert.Empty(t, settings.Config)
	assert.Zero(t, settings.Jobs)
}

func TestLoader_Load_FullConfig(t *testing.T) {
	loader, _ := newLoader(t)
	dir := t.TempDir()

	createFile(t, dir, domain.ConfigFileName, `
version: "1"
build_dir: out/cmake
source_dir: engine
makefile: vendor/gui/Makefile
jobs: 12
config: Debug
`)

	settings, err := loader.Load(dir)
	require.NoError(t, err)

	assert.Equal(t, dir, settings.Root)
	assert.Equal(t, filepath.Join(dir, "engine"), settings.SourceDir)
	assert.Equal(t, filepath.Join(dir, "out", "cmake"), settings.BuildDir)
	assert.Equal(t, filepath.Join(dir, "vendor", "gui", "Makefile"), settings.Makefile)
	assert.Equal(t, "Debug", settings.Config)
	assert.Equal(t, 12, settings.Jobs)
}

func TestLoader_Load_DiscoversParent(t *testing.T) {
	loader, _ := newLoader(t)
	root := t.TempDir()
	nested := filepath.Join(root, "src", "ui")
	require.NoError(t, os.MkdirAll(nested, domain.DirPerm))

	createFile(t, root, domain.ConfigFileName, "build_dir: build-release\n")

	settings, err := loader.Load(nested)
	require.NoError(t, err)

	assert.Equal(t, root, settings.Root, "paths resolve against the directory holding kiln.yaml")
	assert.Equal(t, filepath.Join(root, "build-release"), settings.BuildDir)
	assert.Equal(t, root, settings.SourceDir)
}

func TestLoader_Load_NearestConfigWins(t *testing.T) {
	loader, _ := newLoader(t)
	root := t.TempDir()
	child := filepath.Join(root, "child")
	require.NoError(t, os.Mkdir(child, domain.DirPerm))

	createFile(t, root, domain.ConfigFileName, "jobs: 1\n")
	createFile(t, child, domain.ConfigFileName, "jobs: 3\n")

	settings, err := loader.Load(child)
	require.NoError(t, err)
	assert.Equal(t, 3, settings.Jobs)
	assert.Equal(t, child, settings.Root)
}

func TestLoader_Load_AbsolutePathsKept(t *testing.T) {
	loader, _ := newLoader(t)
	dir := t.TempDir()
	abs := filepath.Join(t.TempDir(), "elsewhere")

	createFile(t, dir, domain.ConfigFileName, "build_dir: "+filepath.ToSlash(abs)+"\n")

	settings, err := loader.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, abs, settings.BuildDir)
}

func TestLoader_Load_EmptyFile(t *testing.T) {
	loader, _ := newLoader(t)
	dir := t.TempDir()
	createFile(t, dir, domain.ConfigFileName, "")

	settings, err := loader.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "build"), settings.BuildDir)
}

func TestLoader_Load_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{
			name:    "unsupported version",
			content: "version: \"2\"\n",
			wantErr: domain.ErrUnsupportedConfigVersion,
		},
		{
			name:    "malformed yaml",
			content: "build_dir: [unterminated\n",
			wantErr: domain.ErrConfigParseFailed,
		},
		{
			name:    "unknown key",
			content: "generator: ninja\n",
			wantErr: domain.ErrConfigParseFailed,
		},
		{
			name:    "wrong type",
			content: "jobs: many\n",
			wantErr: domain.ErrConfigParseFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader, _ := newLoader(t)
			dir := t.TempDir()
			createFile(t, dir, domain.ConfigFileName, tt.content)

			_, err := loader.Load(dir)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoader_Load_NegativeJobsWarns(t *testing.T) {
	loader, mockLogger := newLoader(t)
	dir := t.TempDir()
	createFile(t, dir, domain.ConfigFileName, "jobs: -4\n")

	mockLogger.EXPECT().Warn(gomock.Any()).Times(1)

	settings, err := loader.Load(dir)
	require.NoError(t, err)
	assert.Zero(t, settings.Jobs)
}

func TestLoader_Load_UnreadableConfig(t *testing.T) {
	if os.Getuid() == 0 {
		t.Skip("root can read any file")
	}

	loader, _ := newLoader(t)
	dir := t.TempDir()
	createFile(t, dir, domain.ConfigFileName, "jobs: 1\n")
	require.NoError(t, os.Chmod(filepath.Join(dir, domain.ConfigFileName), 0o000))

	_, err := loader.Load(dir)
	require.ErrorIs(t, err, domain.ErrConfigReadFailed)
}
