package domain

// FallbackParallelism is used when the processor count is unavailable or not positive.
const FallbackParallelism = 2

// ParallelLevelEnv is the environment variable CMake reads the build parallelism from.
const ParallelLevelEnv = "CMAKE_BUILD_PARALLEL_LEVEL"

// BuildSession holds the parameters of one project build, resolved once per invocation.
type BuildSession struct {
	SourceDir   string
	BuildDir    string
	Generator   string
	Config      BuildConfig
	Parallelism int
	Host        HostClass
}

// MultiConfig reports whether the session's generator needs a build-time configuration.
func (s BuildSession) MultiConfig() bool {
	return IsMultiConfig(s.Generator)
}

// ResolveParallelism clamps a processor count to a usable job count.
func ResolveParallelism(count int, err error) int {
	if err != nil || count < 1 {
		return FallbackParallelism
	}
	return count
}
