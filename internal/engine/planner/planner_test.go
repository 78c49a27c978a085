package planner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/engine/planner"
)

func TestLibraryCandidates(t *testing.T) {
	const makefile = "/proj/ThirdParty/Nuklear/Makefile"

	t.Run("posix has a single candidate", func(t *testing.T) {
		got := planner.LibraryCandidates(domain.HostPosix, makefile)
		require.Len(t, got, 1)
		assert.Equal(t, []string{"make", "-f", makefile}, got[0].Args)
	})

	t.Run("windows falls back to mingw32-make", func(t *testing.T) {
		got := planner.LibraryCandidates(domain.HostWindows, makefile)
		require.Len(t, got, 2)
		assert.Equal(t, []string{"make", "-f", makefile}, got[0].Args)
		assert.Equal(t, []string{"mingw32-make", "-f", makefile}, got[1].Args)
		assert.Equal(t, got[0].Args[1:], got[1].Args[1:])
	})
}

func TestConfigureCommand(t *testing.T) {
	s := domain.BuildSession{SourceDir: "/proj", BuildDir: "/proj/build", Generator: "Unix Makefiles"}
	got := planner.ConfigureCommand(s)
	assert.Equal(t, []string{"cmake", "-S", "/proj", "-B", "/proj/build", "-G", "Unix Makefiles"}, got.Args)
	assert.Empty(t, got.Env)
}

func TestProjectCandidates(t *testing.T) {
	tests := []struct {
		name      string
		session   domain.BuildSession
		preferred []string
		fallback  []string
	}{
		{
			name: "single-config makefiles omit config",
			session: domain.BuildSession{
				BuildDir: "build", Generator: "Unix Makefiles", Config: domain.ConfigDebug, Parallelism: 8,
			},
			preferred: []string{"cmake", "--build", "build", "--parallel", "8"},
			fallback:  []string{"cmake", "--build", "build"},
		},
		{
			name: "ninja omits config",
			session: domain.BuildSession{
				BuildDir: "build", Generator: "Ninja", Config: domain.ConfigRelWithDebInfo, Parallelism: 4,
			},
			preferred: []string{"cmake", "--build", "build", "--parallel", "4"},
			fallback:  []string{"cmake", "--build", "build"},
		},
		{
			name: "xcode passes config",
			session: domain.BuildSession{
				BuildDir: "build", Generator: "Xcode", Config: domain.ConfigDebug, Parallelism: 10,
			},
			preferred: []string{"cmake", "--build", "build", "--config", "Debug", "--parallel", "10"},
			fallback:  []string{"cmake", "--build", "build", "--config", "Debug"},
		},
		{
			name: "visual studio falls back to msbuild flag",
			session: domain.BuildSession{
				BuildDir: "build", Generator: "Visual Studio 17 2022", Config: domain.ConfigRelease, Parallelism: 6,
			},
			preferred: []string{"cmake", "--build", "build", "--config", "Release", "--parallel", "6"},
			fallback:  []string{"cmake", "--build", "build", "--config", "Release", "--", "/m:6"},
		},
		{
			name: "multi-config without config uses release",
			session: domain.BuildSession{
				BuildDir: "build", Generator: "Ninja Multi-Config", Parallelism: 2,
			},
			preferred: []string{"cmake", "--build", "build", "--config", "Release", "--parallel", "2"},
			fallback:  []string{"cmake", "--build", "build", "--config", "Release"},
		},
		{
			name: "non-positive parallelism is clamped",
			session: domain.BuildSession{
				BuildDir: "build", Generator: "Unix Makefiles", Parallelism: 0,
			},
			preferred: []string{"cmake", "--build", "build", "--parallel", "1"},
			fallback:  []string{"cmake", "--build", "build"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := planner.ProjectCandidates(tt.session)
			require.Len(t, got, 2)
			assert.Equal(t, tt.preferred, got[0].Args)
			assert.Equal(t, tt.fallback, got[1].Args)

			jobs := tt.preferred[len(tt.preferred)-1]
			for _, cmd := range got {
				assert.Equal(t, map[string]string{domain.ParallelLevelEnv: jobs}, cmd.Env)
			}
		})
	}
}

func TestProjectCandidates_GccEndToEnd(t *testing.T) {
	generator, err := domain.LookupGenerator("gcc")
	require.NoError(t, err)
	config, err := domain.ParseBuildConfig("")
	require.NoError(t, err)

	s := domain.BuildSession{
		BuildDir:    "/proj/build",
		Generator:   generator,
		Config:      config,
		Parallelism: domain.ResolveParallelism(12, nil),
	}

	got := planner.ProjectCandidates(s)
	require.Len(t, got, 2)
	assert.Equal(t, "Unix Makefiles", generator)
	assert.Equal(t, domain.ConfigRelease, config)
	assert.NotContains(t, got[0].Args, "Release")
	assert.Equal(t, []string{"--parallel", "12"}, got[0].Args[len(got[0].Args)-2:])
	assert.Equal(t, got[0].Args[:len(got[0].Args)-2], got[1].Args)
}
