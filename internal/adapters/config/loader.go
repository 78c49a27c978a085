// Package config provides the kiln.yaml configuration loader.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load discovers kiln.yaml from cwd upwards and returns the resolved settings.
// Without a config file the defaults are rooted at cwd.
func (l *Loader) Load(cwd string) (domain.Settings, error) {
	absCwd, err := filepath.Abs(cwd)
	if err != nil {
		return domain.Settings{}, zerr.With(zerr.Wrap(err, "failed to resolve working directory"), "cwd", cwd)
	}

	configPath, found := findConfiguration(absCwd)
	if !found {
		return resolveSettings(absCwd, Kilnfile{}), nil
	}

	var kilnfile Kilnfile
	if err := readAndUnmarshalYAML(configPath, &kilnfile); err != nil {
		return domain.Settings{}, zerr.With(err, "path", configPath)
	}

	if kilnfile.Version != "" && kilnfile.Version != SupportedVersion {
		err := zerr.Wrap(domain.ErrUnsupportedConfigVersion, "cannot load "+domain.ConfigFileName)
		err = zerr.With(err, "version", kilnfile.Version)
		return domain.Settings{}, zerr.With(err, "path", configPath)
	}

	if kilnfile.Jobs < 0 {
		l.Logger.Warn(fmt.Sprintf("ignoring negative 'jobs' (%d) in %s", kilnfile.Jobs, configPath))
		kilnfile.Jobs = 0
	}

	return resolveSettings(filepath.Dir(configPath), kilnfile), nil
}

// findConfiguration walks up from dir and returns the first kiln.yaml found.
func findConfiguration(dir string) (string, bool) {
	currentDir := dir
	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			return "", false
		}
		currentDir = parentDir
	}
}

func resolveSettings(root string, f Kilnfile) domain.Settings {
	return domain.Settings{
		Root:      filepath.Clean(root),
		SourceDir: resolvePath(root, f.SourceDir, domain.DefaultSourceDir),
		BuildDir:  resolvePath(root, f.BuildDir, domain.DefaultBuildDir),
		Makefile:  resolvePath(root, f.Makefile, domain.DefaultLibraryMakefile),
		Config:    f.Config,
		Jobs:      f.Jobs,
	}
}

// resolvePath resolves configured relative to root, using fallback when empty.
func resolvePath(root, configured, fallback string) string {
	if configured == "" {
		configured = fallback
	}
	if filepath.IsAbs(configured) {
		return filepath.Clean(configured)
	}
	return filepath.Join(root, filepath.FromSlash(configured))
}

// readAndUnmarshalYAML reads a YAML file and strictly decodes it into target.
// An empty file decodes to the zero value.
func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is discovered by the loader
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.With(zerr.Wrap(domain.ErrConfigReadFailed, "cannot load "+domain.ConfigFileName), "cause", err.Error())
	}

	dec := yaml.NewDecoder(bytes.NewReader(configFile))
	dec.KnownFields(true)
	if parseErr := dec.Decode(target); parseErr != nil && !errors.Is(parseErr, io.EOF) {
		return zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, "cannot load "+domain.ConfigFileName), "cause", parseErr.Error())
	}

	return nil
}
