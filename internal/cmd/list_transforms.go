package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sfxlab/sfxgraph/internal/output"
	"github.com/sfxlab/sfxgraph/internal/pipeline"
)

func newListTransformsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list-transforms",
		Short: "List every registered transform and its parameter schema",
		RunE:  runListTransforms,
	}
}

func runListTransforms(cmd *cobra.Command, args []string) error {
	entries := make([]output.DescriptionEntry, 0)
	for _, t := range pipeline.ListTransforms(globalReg) {
		entries = append(entries, output.DescriptionEntry{Name: t.Name, Description: t.Description})
	}
	output.Println(output.RenderDescriptionList(entries, 20))

	for _, t := range pipeline.ListTransforms(globalReg) {
		if len(t.Params) == 0 {
			continue
		}
		output.Println(fmt.Sprintf("\n%s parameters:", t.Name))
		for _, param := range t.Params {
			output.Println(fmt.Sprintf("  %s (default %q): %s", param.Name, param.Default, param.Description))
		}
	}
	return nil
}
