package envs

import (
	"math"

	"github.com/arboscape/hoot/env"
	"github.com/arboscape/hoot/region"
	"github.com/arboscape/hoot/simulate"
)

func init() {
	simulate.Register("test_function", func(seed *int64, clipReward bool) (env.Environment, error) {
		return NewTestFunction(DefaultTestFunction, [][2]float64{{0, 1}})
	})
}

// DefaultTestFunction is the reference implementation's default 1-D
// optimization target: a highly multimodal function on [0, 1].
func DefaultTestFunction(x float64) float64 {
	return (math.Sin(13*x)*math.Sin(27*x) + 1) / 2
}

// TestFunction is a stateless, single-step environment: one action
// evaluates function and the episode immediately terminates. It exists
// to exercise planning against a known reward landscape rather than a
// dynamical system.
type TestFunction struct {
	function func(float64) float64
	domain   region.Region
}

// NewTestFunction builds a TestFunction evaluating function over domain,
// the d-dimensional generalization of the reference implementation's
// 1-D default (function is always applied to the first axis only).
func NewTestFunction(function func(float64) float64, domain [][2]float64) (*TestFunction, error) {
	reg, err := region.New(domain)
	if err != nil {
		return nil, err
	}
	return &TestFunction{function: function, domain: reg}, nil
}

func (f *TestFunction) ActionRegion() region.Region { return f.domain }

func (f *TestFunction) Step(action []float64) (float64, bool, error) {
	if !f.domain.Contains(action) {
		return 0, false, env.ErrActionOutOfRange
	}
	return f.function(action[0]), true, nil
}

func (f *TestFunction) Snapshot() env.Environment {
	cp := *f
	return &cp
}

func (f *TestFunction) GetState() []float64 { return []float64{0} }
