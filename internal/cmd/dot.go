package cmd

import (
	"github.com/spf13/cobra"

	"github.com/sfxlab/sfxgraph/internal/output"
)

func newDotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dot <specs.yaml>",
		Short: "Render a compiled pipeline's DAG as a GraphViz DOT graph",
		Args:  cobra.ExactArgs(1),
		RunE:  runDot,
	}
	addCompileFlags(cmd)
	return cmd
}

func runDot(cmd *cobra.Command, args []string) error {
	p, err := compilePipeline(args[0])
	if err != nil {
		return err
	}
	output.Print(p.DOT())
	return nil
}
