package simulate

import "errors"

// Sentinel errors for Config.Validate — all configuration-kind failures,
// checked once before a run starts.
var (
	ErrUnknownAlgorithm    = errors.New("simulate: unknown algorithm")
	ErrUnknownEnvironment  = errors.New("simulate: unknown environment")
	ErrMissingHooMaxDepth  = errors.New("simulate: hoo_max_depth required for ld_hoot/poly_hoot")
	ErrInvalidGamma        = errors.New("simulate: gamma must be in (0, 1]")
	ErrInvalidNActions     = errors.New("simulate: n_actions must be >= 1")
	ErrInvalidSearchDepth  = errors.New("simulate: search_depth must be >= 1")
	ErrInvalidAlgorithmIter = errors.New("simulate: algorithm_iter must be >= 1")
)
