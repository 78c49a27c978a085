package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// BuildConfig is a CMake build configuration name.
type BuildConfig string

const (
	// ConfigDebug builds without optimization and with debug info.
	ConfigDebug BuildConfig = "Debug"
	// ConfigRelease builds with optimization. It is the default.
	ConfigRelease BuildConfig = "Release"
	// ConfigRelWithDebInfo builds with optimization and debug info.
	ConfigRelWithDebInfo BuildConfig = "RelWithDebInfo"
	// ConfigMinSizeRel builds optimized for size.
	ConfigMinSizeRel BuildConfig = "MinSizeRel"
)

// DefaultBuildConfig is used when no configuration is specified.
const DefaultBuildConfig = ConfigRelease

// BuildConfigs lists the valid configurations in display order.
var BuildConfigs = []BuildConfig{ConfigDebug, ConfigRelease, ConfigRelWithDebInfo, ConfigMinSizeRel}

// ParseBuildConfig returns the canonical configuration for name.
// An empty name yields DefaultBuildConfig.
func ParseBuildConfig(name string) (BuildConfig, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return DefaultBuildConfig, nil
	}
	for _, c := range BuildConfigs {
		if strings.EqualFold(name, string(c)) {
			return c, nil
		}
	}
	err := zerr.With(zerr.Wrap(ErrUnknownBuildConfig, "cannot resolve build configuration"), "config", name)
	return "", zerr.With(err, "available", BuildConfigNames())
}

// BuildConfigNames returns the valid configuration names joined for display.
func BuildConfigNames() string {
	names := make([]string, len(BuildConfigs))
	for i, c := range BuildConfigs {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}

// String returns the configuration name.
func (c BuildConfig) String() string {
	return string(c)
}
