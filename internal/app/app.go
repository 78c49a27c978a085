// Package app implements the application layer for kiln.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/kiln/internal/engine/orchestrator"
	"go.trai.ch/kiln/internal/engine/planner"
	"go.trai.ch/kiln/internal/ui/output"
	"go.trai.ch/zerr"
)

// Stage names, used as parent span names and render prefixes.
const (
	StageLibrary   = "library build"
	StageConfigure = "configure"
	StageProject   = "project build"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	workspace    ports.Workspace
	host         ports.HostProbe
	orchestrator *orchestrator.Orchestrator
	logger       ports.Logger
	getwd        func() (string, error)
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	workspace ports.Workspace,
	host ports.HostProbe,
	orch *orchestrator.Orchestrator,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		workspace:    workspace,
		host:         host,
		orchestrator: orch,
		logger:       log,
		getwd:        os.Getwd,
	}
}

// WithWorkingDir makes the App resolve paths against dir instead of the
// process working directory. This is primarily used for testing.
func (a *App) WithWorkingDir(dir string) *App {
	a.getwd = func() (string, error) { return dir, nil }
	return a
}

// OutputOptions configures how diagnostics are rendered.
type OutputOptions struct {
	JSON    bool
	NoColor bool
}

// outputConfigurer is implemented by loggers that can switch format or be rebuilt.
type outputConfigurer interface {
	SetJSON(enable bool)
	SetOutput(w io.Writer)
}

// ConfigureOutput applies output options. NoColor affects kiln's own output
// only; build commands inherit the environment unchanged.
func (a *App) ConfigureOutput(opts OutputOptions) error {
	if opts.NoColor {
		output.SetNoColor(true)
	}

	lc, ok := a.logger.(outputConfigurer)
	if !ok {
		return nil
	}
	if opts.JSON {
		lc.SetJSON(true)
	} else if opts.NoColor {
		// Rebuild the handler so the new color profile is picked up.
		lc.SetOutput(nil)
	}
	return nil
}

// LibraryOptions configuration for the BuildLibrary method.
type LibraryOptions struct {
	// Makefile overrides the configured library makefile. Relative paths
	// resolve against the working directory.
	Makefile string
}

// BuildLibrary compiles the bundled third-party library with make.
func (a *App) BuildLibrary(ctx context.Context, opts LibraryOptions) error {
	cwd, settings, err := a.loadSettings()
	if err != nil {
		return err
	}

	makefile := settings.Makefile
	if opts.Makefile != "" {
		makefile = resolveAgainst(cwd, opts.Makefile)
	}

	if err := a.workspace.RequireFile(makefile); err != nil {
		return zerr.Wrap(err, "library makefile not found")
	}

	host := domain.ClassifyHost(a.host.HostID())
	a.logger.Info(fmt.Sprintf("Building library from %s (%s host)", makefile, host))

	candidates := withWorkingDir(planner.LibraryCandidates(host, makefile), settings.Root)
	result, err := a.orchestrator.Execute(ctx, StageLibrary, candidates)
	if err != nil {
		return err
	}

	a.reportSuccess("Library compiled successfully", result)
	return nil
}

// ProjectOptions configuration for the BuildProject method.
type ProjectOptions struct {
	// Compiler is the generator key, e.g. "gcc" or "msvc".
	Compiler string
	// Config is the build configuration; empty uses kiln.yaml or Release.
	Config string
	// BuildDir and SourceDir override kiln.yaml. Relative paths resolve
	// against the working directory.
	BuildDir  string
	SourceDir string
	// Jobs overrides processor detection when positive.
	Jobs int
}

// BuildProject configures the CMake project and builds it, falling back to
// alternate parallel build strategies when the preferred one fails.
func (a *App) BuildProject(ctx context.Context, opts ProjectOptions) error {
	generator, err := domain.LookupGenerator(opts.Compiler)
	if err != nil {
		return err
	}

	cwd, settings, err := a.loadSettings()
	if err != nil {
		return err
	}

	configName := opts.Config
	if configName == "" {
		configName = settings.Config
	}

	// Single-config generators fix the configuration at configure time, so
	// the name is neither validated nor passed on.
	var buildConfig domain.BuildConfig
	if domain.IsMultiConfig(generator) {
		buildConfig, err = domain.ParseBuildConfig(configName)
		if err != nil {
			return err
		}
	} else if opts.Config != "" {
		a.logger.Warn(fmt.Sprintf("Ignoring build configuration %q: %s is a single-config generator",
			opts.Config, generator))
	}

	session := domain.BuildSession{
		SourceDir:   pick(cwd, opts.SourceDir, settings.SourceDir),
		BuildDir:    pick(cwd, opts.BuildDir, settings.BuildDir),
		Generator:   generator,
		Config:      buildConfig,
		Host:        domain.ClassifyHost(a.host.HostID()),
		Parallelism: a.parallelism(opts.Jobs, settings.Jobs),
	}

	created, err := a.workspace.EnsureDir(session.BuildDir)
	if err != nil {
		return err
	}
	if created {
		a.logger.Info("Created build directory " + session.BuildDir)
	}

	a.logger.Info(fmt.Sprintf("Configuring CMake project with generator %q", generator))
	configure := planner.ConfigureCommand(session)
	configure.WorkingDir = settings.Root
	if _, err := a.orchestrator.Execute(ctx, StageConfigure, []domain.Command{configure}); err != nil {
		return zerr.Wrap(
			errors.Join(domain.ErrConfigureFailed, err),
			"make sure CMake and the requested generator are installed",
		)
	}

	a.logger.Info(fmt.Sprintf("Using %d parallel build job(s)", session.Parallelism))
	if session.MultiConfig() {
		a.logger.Info("Build configuration: " + session.Config.String())
	}

	candidates := withWorkingDir(planner.ProjectCandidates(session), settings.Root)
	result, err := a.orchestrator.Execute(ctx, StageProject, candidates)
	if err != nil {
		return err
	}

	a.reportSuccess("Project built successfully", result)
	return nil
}

func (a *App) loadSettings() (string, domain.Settings, error) {
	cwd, err := a.getwd()
	if err != nil {
		return "", domain.Settings{}, zerr.Wrap(err, "failed to get working directory")
	}

	settings, err := a.configLoader.Load(cwd)
	if err != nil {
		return "", domain.Settings{}, zerr.Wrap(err, "failed to load configuration")
	}
	return cwd, settings, nil
}

// parallelism prefers the flag, then kiln.yaml, then the detected processor count.
func (a *App) parallelism(flagJobs, configJobs int) int {
	switch {
	case flagJobs > 0:
		return flagJobs
	case configJobs > 0:
		return configJobs
	default:
		return domain.ResolveParallelism(a.host.ProcessorCount())
	}
}

func (a *App) reportSuccess(msg string, result domain.StageResult) {
	winner, ok := result.Winner()
	if ok && len(result.Attempts) > 1 {
		msg += " using " + winner.Command.Describe()
	}
	a.logger.Info(msg)
}

func pick(cwd, flagValue, configured string) string {
	if flagValue != "" {
		return resolveAgainst(cwd, flagValue)
	}
	return configured
}

func resolveAgainst(dir, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(dir, path)
}

func withWorkingDir(cmds []domain.Command, dir string) []domain.Command {
	for i := range cmds {
		cmds[i].WorkingDir = dir
	}
	return cmds
}
