package planning_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arboscape/hoot/env"
	"github.com/arboscape/hoot/planning"
	"github.com/arboscape/hoot/region"
)

// fakeEnv is a minimal 1-D counter environment used to exercise
// planning.State without pulling in a concrete envs implementation.
type fakeEnv struct {
	reg     region.Region
	counter float64
	steps   int
	reward  float64
	err     error
}

func (f *fakeEnv) ActionRegion() region.Region { return f.reg }

func (f *fakeEnv) Step(action []float64) (float64, bool, error) {
	if f.err != nil {
		return 0, false, f.err
	}
	f.counter += action[0]
	f.steps++
	return f.reward, f.steps >= 2, nil
}

func (f *fakeEnv) Snapshot() env.Environment {
	cp := *f
	return &cp
}

func (f *fakeEnv) GetState() []float64 { return []float64{f.counter} }

func newFakeEnv(t *testing.T, reward float64, err error) *fakeEnv {
	t.Helper()
	reg, rerr := region.New([][2]float64{{0, 1}})
	require.NoError(t, rerr)
	return &fakeEnv{reg: reg, reward: reward, err: err}
}

func TestSimulate_DoesNotMutateReceiver(t *testing.T) {
	fe := newFakeEnv(t, 1.0, nil)
	s := planning.NewState(fe)

	next, reward, done, err := s.Simulate([]float64{0.5})
	require.NoError(t, err)
	require.False(t, done)
	require.Equal(t, 1.0, reward)

	require.Equal(t, []float64{0}, s.GetState())
	require.Equal(t, []float64{0.5}, next.GetState())
}

func TestSimulate_RejectsOutOfRangeAction(t *testing.T) {
	fe := newFakeEnv(t, 1.0, nil)
	s := planning.NewState(fe)

	_, _, _, err := s.Simulate([]float64{5})
	require.ErrorIs(t, err, planning.ErrContractViolation)
}

func TestSimulate_WrapsStepError(t *testing.T) {
	fe := newFakeEnv(t, 0, errors.New("boom"))
	s := planning.NewState(fe)

	_, _, _, err := s.Simulate([]float64{0.5})
	require.ErrorIs(t, err, planning.ErrContractViolation)
}

func TestSimulate_RejectsNonFiniteReward(t *testing.T) {
	fe := newFakeEnv(t, math.Inf(1), nil)
	s := planning.NewState(fe)

	_, _, _, err := s.Simulate([]float64{0.5})
	require.ErrorIs(t, err, planning.ErrContractViolation)
}

func TestSimulate_TerminatesAfterTwoSteps(t *testing.T) {
	fe := newFakeEnv(t, 1.0, nil)
	s := planning.NewState(fe)

	s1, _, done1, err := s.Simulate([]float64{0.5})
	require.NoError(t, err)
	require.False(t, done1)

	_, _, done2, err := s1.Simulate([]float64{0.5})
	require.NoError(t, err)
	require.True(t, done2)
}
