package domain

import "go.trai.ch/zerr"

var (
	// ErrPrerequisiteMissing is returned when a required input file is absent.
	ErrPrerequisiteMissing = zerr.New("required file not found")

	// ErrUnknownGenerator is returned when a compiler key has no generator in the catalog.
	ErrUnknownGenerator = zerr.New("unknown compiler/generator")

	// ErrUnknownBuildConfig is returned when a build configuration name is not recognized.
	ErrUnknownBuildConfig = zerr.New("unknown build configuration")

	// ErrLaunchNotFound is returned when the executable of a command cannot be located.
	ErrLaunchNotFound = zerr.New("command not found")

	// ErrNonZeroExit is returned when a command ran and exited with a non-zero status.
	ErrNonZeroExit = zerr.New("command exited with non-zero status")

	// ErrExhaustedFallbacks is returned when every candidate command of a stage failed.
	ErrExhaustedFallbacks = zerr.New("all candidate commands failed")

	// ErrConfigureFailed is returned when the configure step of the project build fails.
	ErrConfigureFailed = zerr.New("cmake configuration failed")

	// ErrBuildDirCreateFailed is returned when the build directory cannot be created.
	ErrBuildDirCreateFailed = zerr.New("failed to create build directory")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrUnsupportedConfigVersion is returned when the config file declares an unknown version.
	ErrUnsupportedConfigVersion = zerr.New("unsupported config version")

	// ErrEmptyCommand is returned when a command has no arguments.
	ErrEmptyCommand = zerr.New("empty command")
)
