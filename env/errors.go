package env

import "errors"

// ErrActionOutOfRange is returned by Step when the supplied action does
// not lie within ActionRegion() — a contract violation.
var ErrActionOutOfRange = errors.New("env: action outside action region")

// ErrNonFiniteReward is returned by Step when it would otherwise produce
// a NaN or infinite reward — a contract violation that planning.Simulate
// also checks defensively for environments that don't check it themselves.
var ErrNonFiniteReward = errors.New("env: reward is not finite")
