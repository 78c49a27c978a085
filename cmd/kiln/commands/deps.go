package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/kiln/internal/app"
)

func (c *CLI) newDepsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deps",
		Short: "Compile the bundled third-party library with make",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			makefile, _ := cmd.Flags().GetString("makefile")
			return c.app.BuildLibrary(cmd.Context(), app.LibraryOptions{
				Makefile: makefile,
			})
		},
	}
	cmd.Flags().String("makefile", "",
		"Library makefile (default from kiln.yaml, else ThirdParty/Nuklear/Makefile)")
	return cmd
}
