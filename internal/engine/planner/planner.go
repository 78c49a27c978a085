// Package planner builds the ordered candidate command lists for each build stage.
package planner

import (
	"slices"
	"strconv"

	"go.trai.ch/kiln/internal/core/domain"
)

const (
	cmakeBinary       = "cmake"
	makeBinary        = "make"
	mingwMakeBinary   = "mingw32-make"
	msbuildParallelOp = "/m:"
)

// LibraryCandidates returns the commands that build the third-party library from its makefile.
// Windows hosts get a mingw32-make fallback for toolchains that do not ship make on the PATH.
func LibraryCandidates(host domain.HostClass, makefile string) []domain.Command {
	candidates := []domain.Command{
		domain.NewCommand(makeBinary, "-f", makefile).WithLabel("make"),
	}
	if host == domain.HostWindows {
		candidates = append(candidates,
			domain.NewCommand(mingwMakeBinary, "-f", makefile).WithLabel("mingw32-make fallback"))
	}
	return candidates
}

// ConfigureCommand returns the single configure invocation for the session.
func ConfigureCommand(s domain.BuildSession) domain.Command {
	return domain.NewCommand(cmakeBinary, "-S", s.SourceDir, "-B", s.BuildDir, "-G", s.Generator).
		WithLabel("configure with " + s.Generator)
}

// ProjectCandidates returns the build commands for the session in priority order.
//
// The first candidate requests CMake-level parallelism. The second is the final fallback:
// Visual Studio generators pass MSBuild's native /m flag instead, every other generator
// drops --parallel and relies on CMAKE_BUILD_PARALLEL_LEVEL alone.
func ProjectCandidates(s domain.BuildSession) []domain.Command {
	jobs := strconv.Itoa(max(s.Parallelism, 1))
	base := buildArgs(s)

	preferred := domain.NewCommand(slices.Concat(base, []string{"--parallel", jobs})...).
		WithLabel("cmake --parallel")

	var fallback domain.Command
	if domain.IsVisualStudio(s.Generator) {
		fallback = domain.NewCommand(slices.Concat(base, []string{"--", msbuildParallelOp + jobs})...).
			WithLabel("MSBuild /m fallback")
	} else {
		fallback = domain.NewCommand(base...).
			WithLabel("build without --parallel (" + domain.ParallelLevelEnv + " only)")
	}

	return []domain.Command{
		preferred.WithEnv(domain.ParallelLevelEnv, jobs),
		fallback.WithEnv(domain.ParallelLevelEnv, jobs),
	}
}

// buildArgs returns the argv shared by every build candidate.
// The configuration is only passed to multi-config generators.
func buildArgs(s domain.BuildSession) []string {
	args := []string{cmakeBinary, "--build", s.BuildDir}
	if s.MultiConfig() {
		config := s.Config
		if config == "" {
			config = domain.DefaultBuildConfig
		}
		args = append(args, "--config", config.String())
	}
	return args
}
