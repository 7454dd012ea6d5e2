package cmd

import (
	"github.com/spf13/cobra"

	"github.com/sfxlab/sfxgraph/internal/output"
	"github.com/sfxlab/sfxgraph/internal/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the sfxgraph version",
		RunE: func(cmd *cobra.Command, args []string) error {
			output.Println(version.Get().String())
			return nil
		},
	}
}
