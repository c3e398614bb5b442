package planning

import (
	"fmt"
	"math"

	"github.com/arboscape/hoot/env"
	"github.com/arboscape/hoot/region"
)

// State wraps an env.Environment under planning, caching its region so
// every Simulate call doesn't re-query it.
type State struct {
	environment env.Environment
	actionRegion region.Region
}

// NewState wraps environment in a State.
func NewState(environment env.Environment) *State {
	return &State{environment: environment, actionRegion: environment.ActionRegion()}
}

// Environment returns the wrapped environment.
func (s *State) Environment() env.Environment { return s.environment }

// ActionRegion returns the region every action passed to Simulate must lie in.
func (s *State) ActionRegion() region.Region { return s.actionRegion }

// GetState returns the wrapped environment's current observation vector.
func (s *State) GetState() []float64 { return s.environment.GetState() }

// Simulate advances a snapshot of s by action, returning a fresh State
// wrapping the advanced snapshot. s itself is never mutated: the
// snapshot-then-step discipline is what makes concurrent or repeated
// simulation from the same parent State safe.
func (s *State) Simulate(action []float64) (next *State, reward float64, done bool, err error) {
	if !s.actionRegion.Contains(action) {
		return nil, 0, false, fmt.Errorf("%w: %v not in action region", ErrContractViolation, action)
	}

	snapshot := s.environment.Snapshot()
	reward, done, err = snapshot.Step(action)
	if err != nil {
		return nil, 0, false, fmt.Errorf("%w: %v", ErrContractViolation, err)
	}
	if math.IsNaN(reward) || math.IsInf(reward, 0) {
		return nil, 0, false, fmt.Errorf("%w: reward %v is not finite", ErrContractViolation, reward)
	}

	return &State{environment: snapshot, actionRegion: s.actionRegion}, reward, done, nil
}
