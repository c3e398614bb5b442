package telemetry

import (
	"bytes"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// Collector tracks metrics for one simulate.Run invocation: how many
// actions were committed, the reward distribution, and how long each
// planning step took. A failure to record is never fatal to the run
// itself — telemetry is a resource concern, not a correctness one.
type Collector struct {
	registry *prometheus.Registry

	actionsCommitted prometheus.Counter
	planningFailures prometheus.Counter
	rewardHistogram  prometheus.Histogram
	planningSeconds  prometheus.Histogram
}

// NewCollector builds a Collector with its own private registry, so
// multiple concurrent runs (e.g. one per seed in a CLI sweep) never
// collide on metric names.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		actionsCommitted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "hoot_actions_committed_total",
			Help: "Number of real-world actions committed by the driver.",
		}),
		planningFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "hoot_planning_failures_total",
			Help: "Number of planning iterations abandoned after a simulation error.",
		}),
		rewardHistogram: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "hoot_committed_reward",
			Help:    "Reward observed for each committed action.",
			Buckets: prometheus.LinearBuckets(-1, 0.2, 12),
		}),
		planningSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "hoot_planning_seconds",
			Help:    "Wall-clock time spent planning one committed action.",
			Buckets: prometheus.DefBuckets,
		}),
	}
	c.registry.MustRegister(c.actionsCommitted, c.planningFailures, c.rewardHistogram, c.planningSeconds)
	return c
}

// ObserveCommittedAction records one committed action's reward.
func (c *Collector) ObserveCommittedAction(reward float64) {
	c.actionsCommitted.Inc()
	c.rewardHistogram.Observe(reward)
}

// ObservePlanningFailure records one abandoned planning iteration.
func (c *Collector) ObservePlanningFailure() {
	c.planningFailures.Inc()
}

// ObservePlanningDuration records how long one committed action's
// planning iterations took.
func (c *Collector) ObservePlanningDuration(seconds float64) {
	c.planningSeconds.Observe(seconds)
}

// Snapshot renders every tracked metric in Prometheus's text exposition
// format, suitable for writing alongside a run's Trace.
func (c *Collector) Snapshot() (string, error) {
	families, err := c.registry.Gather()
	if err != nil {
		return "", fmt.Errorf("telemetry: gathering metrics: %w", err)
	}
	var buf bytes.Buffer
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(&buf, mf); err != nil {
			return "", fmt.Errorf("telemetry: encoding metric family %s: %w", mf.GetName(), err)
		}
	}
	return buf.String(), nil
}
