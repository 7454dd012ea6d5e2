package cmd

import (
	"github.com/spf13/cobra"

	"github.com/sfxlab/sfxgraph/internal/output"
	"github.com/sfxlab/sfxgraph/internal/registry"
	"github.com/sfxlab/sfxgraph/internal/sfconfig"
	"github.com/sfxlab/sfxgraph/internal/transform/kernels"
	"github.com/sfxlab/sfxgraph/internal/version"
)

var (
	flagVerbose bool
	flagThreads int
	flagNoSIMD  bool
	flagConfig  string
	resolvedCfg *sfconfig.Config
	globalReg   *registry.Registry
)

// NewRootCmd builds the sfxgraph root command with every verb wired in.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "sfxgraph",
		Short: "Compile and run sound-feature-extraction pipelines",
		Long: `sfxgraph compiles declarative sound-feature expressions into an
executable dataflow graph, packs the intermediate buffers into a single
byte arena via the Sliding-Blocks allocator, and runs the graph over
16-bit PCM buffers.`,
		PersistentPreRunE: initializeGlobals,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	root.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "increase output verbosity")
	root.PersistentFlags().IntVar(&flagThreads, "threads", 0, "worker pool size (env: SFX_MAX_TRANSFORM_THREADS, default: hardware parallelism)")
	root.PersistentFlags().BoolVar(&flagNoSIMD, "no-simd", false, "disable the process-wide SIMD toggle (env: SFX_USE_SIMD=false)")
	root.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "path to ~/.sfxgraph config directory")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newCompileCmd())
	root.AddCommand(newRunCmd())
	root.AddCommand(newListTransformsCmd())
	root.AddCommand(newDotCmd())
	root.AddCommand(newDiffCmd())

	return root
}

func initializeGlobals(cmd *cobra.Command, _ []string) error {
	output.SetupLogging(flagVerbose)

	opts := sfconfig.LoadOptions{ConfigDir: flagConfig}
	if cmd.Flags().Changed("threads") {
		opts.MaxTransformThreads = &flagThreads
	}
	if cmd.Flags().Changed("no-simd") {
		useSIMD := !flagNoSIMD
		opts.UseSIMD = &useSIMD
	}

	cfg, resolved, err := sfconfig.Load(opts)
	if err != nil {
		return err
	}
	resolvedCfg = cfg
	if flagVerbose {
		sfconfig.LogResolvedValues(resolved)
	}

	globalReg = registry.New()
	kernels.RegisterAll(globalReg)

	info := version.Get()
	output.Debug("sfxgraph started", "version", info.Version, "threads", cfg.MaxTransformThreads, "use_simd", cfg.UseSIMD)

	return nil
}
