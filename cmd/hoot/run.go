package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/arboscape/hoot/internal/telemetry"
	"github.com/arboscape/hoot/simulate"
)

func newRunCommand() *cobra.Command {
	cfg := simulate.DefaultConfig()
	var (
		configPath string
		outDir     string
		seed       int64
		useSeed    bool
		algorithms []string
		seeds      []int64
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Plan and commit a sequence of actions against one or more environments/algorithms",
		RunE: func(cmd *cobra.Command, args []string) error {
			v := viper.New()
			if configPath != "" {
				v.SetConfigFile(configPath)
				v.SetConfigType("yaml")
				if err := v.ReadInConfig(); err != nil {
					return fmt.Errorf("reading config file %s: %w", configPath, err)
				}
				if err := v.Unmarshal(&cfg); err != nil {
					return fmt.Errorf("parsing config file %s: %w", configPath, err)
				}
			}
			if useSeed {
				cfg.Seed = &seed
			}

			// --algorithms sweeps every named variant in one invocation,
			// per spec.md §6.4; a bare --algorithm still runs just the one.
			algorithmSweep := algorithms
			if len(algorithmSweep) == 0 {
				algorithmSweep = []string{cfg.Algorithm}
			}

			// --seeds sweeps multiple seeds per algorithm, one output file
			// each; a bare --seed (or none) still runs just the one.
			seedSweep := seeds
			if len(seedSweep) == 0 {
				seedSweep = []int64{0}
				if cfg.Seed != nil {
					seedSweep[0] = *cfg.Seed
				}
			}

			factory := simulate.Factories()
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil))
			summaryStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
			failStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

			for _, algorithm := range algorithmSweep {
				baseCfg := cfg
				baseCfg.Algorithm = algorithm
				if err := baseCfg.Validate(factory); err != nil {
					return fmt.Errorf("algorithm %q: %w", algorithm, err)
				}

				// Per spec.md §7: a fatal error aborts only the current
				// seed's run; the sweep continues with the next seed.
				for _, s := range seedSweep {
					runCfg := baseCfg
					runSeed := s
					runCfg.Seed = &runSeed

					collector := telemetry.NewCollector()
					trace, err := simulate.Simulator{}.Run(runCfg, factory, logger, collector)
					if err != nil {
						fmt.Fprintln(cmd.ErrOrStderr(), failStyle.Render(fmt.Sprintf(
							"%s/seed=%d: %v", algorithm, runSeed, err,
						)))
						continue
					}

					if err := writeTrace(outDir, runCfg, trace, collector); err != nil {
						fmt.Fprintln(cmd.ErrOrStderr(), failStyle.Render(fmt.Sprintf(
							"%s/seed=%d: %v", algorithm, runSeed, err,
						)))
						continue
					}

					fmt.Fprintln(cmd.OutOrStdout(), summaryStyle.Render(fmt.Sprintf(
						"%s/seed=%d: committed %d actions over %.2fs (run %s)",
						algorithm, runSeed, len(trace.Actions), trace.RunningTime, trace.RunID,
					)))
				}
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&cfg.Algorithm, "algorithm", cfg.Algorithm, "bandit variant: hoot, ld_hoot, poly_hoot, t_hoot")
	flags.StringSliceVar(&algorithms, "algorithms", nil, "comma-separated variants to sweep in one invocation, overriding --algorithm")
	flags.StringVar(&cfg.Environment, "environment", cfg.Environment, "registered environment identifier")
	flags.IntVar(&cfg.NActions, "n-actions", cfg.NActions, "number of committed real-world actions")
	flags.IntVar(&cfg.SearchDepth, "search-depth", cfg.SearchDepth, "outer rollout horizon")
	flags.IntVar(&cfg.AlgorithmIter, "algorithm-iter", cfg.AlgorithmIter, "planning iterations per committed action")
	flags.Float64Var(&cfg.Gamma, "gamma", cfg.Gamma, "discount factor")
	flags.Float64Var(&cfg.V1, "v1", cfg.V1, "HOO smoothness constant override (0 = default 4*d)")
	flags.Float64Var(&cfg.Ce, "ce", cfg.Ce, "HOO exploration constant")
	flags.IntVar(&cfg.HooMaxDepth, "hoo-max-depth", cfg.HooMaxDepth, "max HOO tree depth (required for ld_hoot/poly_hoot)")
	flags.Float64Var(&cfg.Alpha, "alpha", cfg.Alpha, "Poly-HOO alpha constant")
	flags.Float64Var(&cfg.Eta, "eta", cfg.Eta, "Poly-HOO eta constant")
	flags.Float64Var(&cfg.Xi, "xi", cfg.Xi, "Poly-HOO xi constant")
	flags.BoolVar(&cfg.ClipReward, "clip-reward", cfg.ClipReward, "hint environments to remap rewards into [0,1]")
	flags.Int64Var(&seed, "seed", 0, "reseed the shared RNG before each planning run")
	flags.BoolVar(&useSeed, "use-seed", false, "treat --seed as set (allows seed 0)")
	flags.Int64SliceVar(&seeds, "seeds", nil, "comma-separated seeds to sweep per algorithm, overriding --seed")
	flags.StringVar(&configPath, "config", "", "YAML config file overlaying these flags")
	flags.StringVar(&outDir, "out", "./runs", "output directory root")

	return cmd
}

func writeTrace(outDir string, cfg simulate.Config, trace *simulate.Trace, collector *telemetry.Collector) error {
	seed := int64(0)
	if cfg.Seed != nil {
		seed = *cfg.Seed
	}
	dir := filepath.Join(outDir, cfg.Environment, cfg.Algorithm)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory %s: %w", dir, err)
	}

	jsonPath := filepath.Join(dir, fmt.Sprintf("%d.json", seed))
	data, err := json.MarshalIndent(trace, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling trace: %w", err)
	}
	if err := os.WriteFile(jsonPath, data, 0o644); err != nil {
		return fmt.Errorf("writing trace to %s: %w", jsonPath, err)
	}

	// Telemetry is a resource-kind concern: a failure to snapshot or
	// write it is reported but does not fail the run.
	snapshot, err := collector.Snapshot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "telemetry snapshot failed: %v\n", err)
		return nil
	}
	promPath := filepath.Join(dir, fmt.Sprintf("%d.prom", seed))
	if err := os.WriteFile(promPath, []byte(snapshot), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "writing telemetry snapshot failed: %v\n", err)
	}
	return nil
}
