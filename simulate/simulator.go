package simulate

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/arboscape/hoot/hoo"
	"github.com/arboscape/hoot/hoot"
	"github.com/arboscape/hoot/internal/rng"
	"github.com/arboscape/hoot/internal/telemetry"
	"github.com/arboscape/hoot/planning"
	"github.com/arboscape/hoot/region"
)

// Simulator drives a Config end-to-end.
type Simulator struct{}

// Run resolves cfg.Environment via factory, builds the initial planning
// state and outer decision tree, runs cfg.NActions committed real-world
// actions (each preceded by cfg.AlgorithmIter planning iterations), and
// returns the resulting Trace. Stops early if the environment reports
// done. If collector is non-nil, each committed action's reward and
// planning wall-clock time are recorded against it, along with any
// abandoned trajectory.
func (Simulator) Run(cfg Config, factory EnvFactory, logger *slog.Logger, collector *telemetry.Collector) (*Trace, error) {
	if err := cfg.Validate(factory); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	if collector == nil {
		collector = telemetry.NewCollector()
	}

	ctor := factory[cfg.Environment]

	start := time.Now()
	environment, err := ctor(cfg.Seed, cfg.ClipReward)
	if err != nil {
		return nil, fmt.Errorf("simulate: building environment %q: %w", cfg.Environment, err)
	}

	sharedRNG := rng.FromSeed(cfg.Seed)
	state := planning.NewState(environment)

	newBandit := func(reg region.Region, r *rand.Rand) (*hoo.Bandit, error) {
		return hoo.NewBandit(reg, r, cfg.banditOptions()...)
	}
	root, err := hoot.NewRootNode(state, cfg.Gamma, sharedRNG, newBandit)
	if err != nil {
		return nil, fmt.Errorf("simulate: building root decision node: %w", err)
	}

	driverOpts := []hoot.DriverOption{}
	if cfg.Seed != nil {
		driverOpts = append(driverOpts, hoot.WithSeed(*cfg.Seed))
	}
	driver, err := hoot.NewDriver(root, cfg.SearchDepth, sharedRNG, driverOpts...)
	if err != nil {
		return nil, fmt.Errorf("simulate: building driver: %w", err)
	}

	trace := &Trace{
		RunID:  uuid.NewString(),
		Config: cfg,
		States: [][]float64{append([]float64(nil), driver.Root().State().GetState()...)},
	}

	for k := 1; k <= cfg.NActions; k++ {
		planStart := time.Now()
		action, err := driver.Run(cfg.AlgorithmIter, hoo.ModeCenter)
		collector.ObservePlanningDuration(time.Since(planStart).Seconds())
		if err != nil {
			collector.ObservePlanningFailure()
			return nil, fmt.Errorf("simulate: planning step %d: %w", k, err)
		}

		reward, done, err := driver.Advance(action)
		if err != nil {
			collector.ObservePlanningFailure()
			return nil, fmt.Errorf("simulate: advancing step %d: %w", k, err)
		}

		trace.Actions = append(trace.Actions, action)
		trace.Rewards = append(trace.Rewards, reward)
		trace.States = append(trace.States, append([]float64(nil), driver.Root().State().GetState()...))
		collector.ObserveCommittedAction(reward)

		logger.Debug("committed action", "step", k, "reward", reward, "done", done)

		if done {
			logger.Info("environment terminated early", "step", k)
			break
		}
	}

	trace.RunningTime = time.Since(start).Seconds()
	trace.Date = time.Now().Format(time.RFC3339)
	return trace, nil
}
