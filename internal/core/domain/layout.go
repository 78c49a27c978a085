package domain

import "os"

const (
	// ConfigFileName is the name of the optional project configuration file.
	ConfigFileName = "kiln.yaml"

	// DefaultBuildDir is the build directory relative to the project root.
	DefaultBuildDir = "build"

	// DefaultSourceDir is the CMake source directory relative to the project root.
	DefaultSourceDir = "."

	// DefaultLibraryMakefile is the third-party library makefile relative to the project root.
	DefaultLibraryMakefile = "ThirdParty/Nuklear/Makefile"

	// DirPerm is the permission used for directories created by kiln.
	DirPerm os.FileMode = 0o750
)
