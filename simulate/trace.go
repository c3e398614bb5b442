package simulate

// Trace is the run artifact emitted by Simulator.Run: the committed
// action/reward/state trajectory together with the configuration that
// produced it and the wall-clock cost of producing it.
type Trace struct {
	// RunID uniquely identifies this run; an enrichment beyond the
	// original artifact format, useful for correlating a trace with its
	// telemetry.
	RunID string `json:"run_id"`

	Actions [][]float64 `json:"actions"`
	Rewards []float64   `json:"rewards"`
	// States holds one observation vector per step, including the
	// initial observation before any action was committed.
	States [][]float64 `json:"state"`

	RunningTime float64 `json:"running_time"`
	Date        string  `json:"date"`

	Config
}
