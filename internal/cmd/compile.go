package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sfxlab/sfxgraph/internal/format"
	"github.com/sfxlab/sfxgraph/internal/output"
	"github.com/sfxlab/sfxgraph/internal/pipeline"
)

var (
	compileSamplingRate int
	compilePCMLength    int
)

func newCompileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compile <specs.yaml>",
		Short: "Compile a feature-spec list into a pipeline and report its shape",
		Args:  cobra.ExactArgs(1),
		RunE:  runCompile,
	}
	addCompileFlags(cmd)
	return cmd
}

func addCompileFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&compileSamplingRate, "sampling-rate", format.DefaultSamplingRate, "PCM sampling rate in Hz")
	cmd.Flags().IntVar(&compilePCMLength, "pcm-length", 48000, "PCM buffer length in samples")
}

func compilePipeline(path string) (*pipeline.Pipeline, error) {
	specs, err := loadSpecs(path)
	if err != nil {
		return nil, &ExitError{Code: ExitGeneralError, Err: err}
	}

	p, err := pipeline.Compile(globalReg, specs, compilePCMLength, compileSamplingRate, resolvedCfg)
	if err != nil {
		return nil, &ExitError{Code: ExitCodeFromError(err), Err: err}
	}
	return p, nil
}

func runCompile(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	var p *pipeline.Pipeline
	err := output.RunWithSpinner(ctx, func() error {
		var compileErr error
		p, compileErr = compilePipeline(args[0])
		return compileErr
	}, output.WithTitle("compiling pipeline..."))
	if err != nil {
		return err
	}

	output.Println(output.FormatCheckmark(fmt.Sprintf("compiled %d nodes, arena height %d bytes", len(p.ArenaNodes), p.Height)))
	for _, n := range p.ArenaNodes {
		if len(n.Source.Features) == 0 {
			continue
		}
		for _, feature := range n.Source.Features {
			output.Println(output.FormatFeatureMatch(feature, n.Source.TransformName))
		}
	}
	output.Debug("compile complete", "id", p.ID.String())
	return nil
}
