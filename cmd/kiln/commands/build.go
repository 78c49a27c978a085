package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/kiln/internal/app"
	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/zerr"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build <compiler> [config]",
		Short: "Configure the CMake project and build it",
		Long: "Configure the CMake project with the generator selected by <compiler> and build it.\n\n" +
			"Available compilers: " + availableCompilers() + "\n" +
			"Available configs: " + domain.BuildConfigNames(),
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				printUsage(cmd)
				return zerr.With(zerr.Wrap(domain.ErrUnknownGenerator, "missing compiler"),
					"available", availableCompilers())
			}
			if _, err := domain.LookupGenerator(args[0]); err != nil {
				printUsage(cmd)
				return err
			}

			var config string
			if len(args) > 1 {
				config = args[1]
			}
			buildDir, _ := cmd.Flags().GetString("build-dir")
			sourceDir, _ := cmd.Flags().GetString("source-dir")
			jobs, _ := cmd.Flags().GetInt("jobs")

			return c.app.BuildProject(cmd.Context(), app.ProjectOptions{
				Compiler:  args[0],
				Config:    config,
				BuildDir:  buildDir,
				SourceDir: sourceDir,
				Jobs:      jobs,
			})
		},
	}
	cmd.Flags().String("build-dir", "", "Build directory (default from kiln.yaml, else build)")
	cmd.Flags().String("source-dir", "", "CMake source directory (default from kiln.yaml, else .)")
	cmd.Flags().IntP("jobs", "j", 0, "Parallel build jobs (0 detects the processor count)")
	return cmd
}

func printUsage(cmd *cobra.Command) {
	w := cmd.ErrOrStderr()
	_, _ = fmt.Fprintf(w, "Usage: %s\n", cmd.UseLine())
	_, _ = fmt.Fprintf(w, "Available compilers: %s\n", availableCompilers())
}

// availableCompilers lists the generator keys in upper case for display.
func availableCompilers() string {
	keys := domain.GeneratorKeys()
	for i, k := range keys {
		keys[i] = strings.ToUpper(k)
	}
	return strings.Join(keys, ", ")
}
