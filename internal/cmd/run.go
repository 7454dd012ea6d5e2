package cmd

import (
	"context"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/sfxlab/sfxgraph/internal/output"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <specs.yaml> <pcm.raw>",
		Short: "Compile a feature-spec list and execute it over a raw PCM buffer",
		Args:  cobra.ExactArgs(2),
		RunE:  runRun,
	}
	addCompileFlags(cmd)
	return cmd
}

func runRun(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	p, err := compilePipeline(args[0])
	if err != nil {
		return err
	}

	pcm, err := os.ReadFile(args[1])
	if err != nil {
		return &ExitError{Code: ExitGeneralError, Err: fmt.Errorf("reading PCM file: %w", err)}
	}

	var features map[string][]byte
	var timings map[string]time.Duration
	var invocations map[string]int

	err = output.RunWithSpinner(ctx, func() error {
		res, execErr := p.Execute(ctx, pcm)
		if execErr != nil {
			return execErr
		}
		features, timings, invocations = res.Features, res.Timings, res.Invocations
		return nil
	}, output.WithTitle("executing pipeline..."))
	if err != nil {
		return &ExitError{Code: ExitCodeFromError(err), Err: err}
	}

	names := make([]string, 0, len(features))
	for name := range features {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		output.Println(fmt.Sprintf("%s: %d bytes", name, len(features[name])))
	}

	timingNames := make([]string, 0, len(timings))
	for name := range timings {
		timingNames = append(timingNames, name)
	}
	sort.Strings(timingNames)

	rows := make([]output.TransformTiming, 0, len(timingNames))
	for _, name := range timingNames {
		n := invocations[name]
		total := timings[name]
		avg := time.Duration(0)
		if n > 0 {
			avg = total / time.Duration(n)
		}
		rows = append(rows, output.TransformTiming{
			Transform:   name,
			Invocations: fmt.Sprintf("%d", n),
			Total:       total.String(),
			Average:     avg.String(),
			Status:      "ok",
		})
	}
	output.Println(output.RenderTimingTable(rows))

	return nil
}
