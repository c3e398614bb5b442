package hoot_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arboscape/hoot/env"
	"github.com/arboscape/hoot/region"
)

// countingEnv is a 1-D environment whose reward equals the action taken
// and whose state is the running sum of every action. steps is a shared
// pointer so tests can observe exactly how many times Step was ever
// invoked across every snapshot descended from the original, which is
// how memoization (P6 / S5) is verified without reaching into hoot's
// unexported state.
type countingEnv struct {
	reg       region.Region
	value     float64
	steps     *int
	doneAfter int // 0 means never terminates
}

func (e *countingEnv) ActionRegion() region.Region { return e.reg }

func (e *countingEnv) Step(action []float64) (float64, bool, error) {
	*e.steps++
	e.value += action[0]
	done := e.doneAfter > 0 && *e.steps >= e.doneAfter
	return action[0], done, nil
}

func (e *countingEnv) Snapshot() env.Environment {
	cp := *e
	return &cp
}

func (e *countingEnv) GetState() []float64 { return []float64{e.value} }

func newCountingEnv(t *testing.T, doneAfter int) (*countingEnv, *int) {
	t.Helper()
	reg, err := region.New([][2]float64{{0, 1}})
	require.NoError(t, err)
	steps := new(int)
	return &countingEnv{reg: reg, steps: steps, doneAfter: doneAfter}, steps
}
