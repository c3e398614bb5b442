package hoo

import "errors"

// Sentinel errors for Bandit construction. Configuration errors, per
// spec §7, are checked once at construction and are fatal to that run.
var (
	// ErrMissingMaxDepth is returned when constructing an LD-HOO or
	// Poly-HOO bandit without WithMaxDepth.
	ErrMissingMaxDepth = errors.New("hoo: max depth required for ld_hoo/poly_hoo variant")

	// ErrMissingHorizon is returned when constructing a t-HOO bandit
	// without WithHorizon (the declared horizon must be set prior to the run).
	ErrMissingHorizon = errors.New("hoo: horizon required for t_hoo variant")

	// ErrUnknownVariant is returned for a Variant value outside the four
	// defined constants.
	ErrUnknownVariant = errors.New("hoo: unknown variant")
)
