package env

import "github.com/arboscape/hoot/region"

// Environment is the contract a system under planning must satisfy.
//
// Step advances the environment by one action, returning the reward
// earned and whether the episode has terminated. An implementation that
// can never fail returns a nil error unconditionally; one whose action
// space or reward can be violated by a caller-supplied action reports it
// through err rather than panicking.
//
// Snapshot returns a deep copy: the receiver and the returned value must
// evolve independently after Snapshot returns. planning.State relies on
// this to simulate candidate actions without disturbing the state of
// record.
type Environment interface {
	// ActionRegion returns the region every action passed to Step must lie in.
	ActionRegion() region.Region

	// Step advances the environment by one action.
	Step(action []float64) (reward float64, done bool, err error)

	// Snapshot returns an independent deep copy of the environment.
	Snapshot() Environment

	// GetState returns the environment's current observation vector.
	GetState() []float64
}
