package hoot

import "errors"

var (
	// ErrNoSimulation is returned by Advance when no trajectory has ever
	// simulated the requested action from this root.
	ErrNoSimulation = errors.New("hoot: action was never simulated from this root")

	// ErrInvalidHorizon is returned by NewDriver for a non-positive horizon.
	ErrInvalidHorizon = errors.New("hoot: horizon must be >= 1")
)
