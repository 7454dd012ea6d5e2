package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/sfxlab/sfxgraph/internal/output"
)

func newDiffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff <specsA.yaml> <specsB.yaml>",
		Short: "Compile two feature-spec lists and diff their DAG shape",
		Long: `diff compiles both spec files and compares the resulting DAG shape
(transform names, parameters, planned offsets, arena height) using a
semantic YAML diff, so a parameter or node-sharing regression between two
compiles shows up as a structural change rather than noisy offset churn.`,
		Args: cobra.ExactArgs(2),
		RunE: runDiff,
	}
	addCompileFlags(cmd)
	return cmd
}

func runDiff(cmd *cobra.Command, args []string) error {
	a, err := compilePipeline(args[0])
	if err != nil {
		return err
	}
	b, err := compilePipeline(args[1])
	if err != nil {
		return err
	}

	aYAML, err := yaml.Marshal(a.Dump())
	if err != nil {
		return &ExitError{Code: ExitGeneralError, Err: err}
	}
	bYAML, err := yaml.Marshal(b.Dump())
	if err != nil {
		return &ExitError{Code: ExitGeneralError, Err: err}
	}

	diff, err := output.DiffYAML(args[0], aYAML, args[1], bYAML, output.IsTTY())
	if err != nil {
		return &ExitError{Code: ExitGeneralError, Err: err}
	}

	if diff == "" {
		output.Println("No structural differences.")
		return nil
	}

	output.Println(fmt.Sprintf("--- %s\n+++ %s\n", args[0], args[1]))
	output.Println(diff)
	return nil
}
