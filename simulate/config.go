package simulate

import "github.com/arboscape/hoot/hoo"

// Config mirrors the original experiment runner's run-configuration
// dataclass field-for-field, with the same defaults.
type Config struct {
	// Algorithm selects the bandit variant: "hoot", "ld_hoot",
	// "poly_hoot" or "t_hoot".
	Algorithm string `json:"algorithm"`
	// Environment is resolved against an EnvFactory by name.
	Environment string `json:"environment"`

	// NActions (K) is the number of committed real-world actions.
	NActions int `json:"n_actions"`
	// SearchDepth (H) is the outer rollout horizon.
	SearchDepth int `json:"search_depth"`
	// AlgorithmIter (n_iter) is the planning-iteration budget per
	// committed action.
	AlgorithmIter int `json:"algorithm_iter"`

	// Gamma is the discount factor.
	Gamma float64 `json:"gamma"`
	// V1 optionally overrides HOO's smoothness constant (default 4*d if zero).
	V1 float64 `json:"v1"`
	// Ce is HOO's exploration constant.
	Ce float64 `json:"ce"`
	// HooMaxDepth is required for ld_hoot/poly_hoot; unused otherwise.
	HooMaxDepth int `json:"hoo_max_depth"`
	// Alpha, Eta, Xi are Poly-HOO's constants.
	Alpha float64 `json:"alpha"`
	Eta   float64 `json:"eta"`
	Xi    float64 `json:"xi"`

	// Seed, if non-nil, reseeds the shared RNG before each planning run.
	Seed *int64 `json:"seed,omitempty"`
	// ClipReward is forwarded to environments that remap rewards into [0,1].
	ClipReward bool `json:"clip_reward"`
}

// DefaultConfig returns a Config with every documented default applied;
// Algorithm and Environment are left empty and must be set by the caller.
func DefaultConfig() Config {
	return Config{
		NActions:      150,
		SearchDepth:   50,
		AlgorithmIter: 100,
		Gamma:         0.99,
		Ce:            1.0,
		HooMaxDepth:   hoo.Unbounded,
		Alpha:         5.0,
		Eta:           20.0,
		Xi:            0.5,
	}
}

// Validate returns the first configuration-kind error found, or nil.
// factory is consulted to check that Environment names a registered
// constructor; pass simulate.Factories() for the live CLI registry, or a
// fake EnvFactory in tests.
func (c Config) Validate(factory EnvFactory) error {
	switch c.Algorithm {
	case "hoot", "ld_hoot", "poly_hoot", "t_hoot":
	default:
		return ErrUnknownAlgorithm
	}
	if _, ok := factory[c.Environment]; !ok {
		return ErrUnknownEnvironment
	}
	if (c.Algorithm == "ld_hoot" || c.Algorithm == "poly_hoot") && c.HooMaxDepth == hoo.Unbounded {
		return ErrMissingHooMaxDepth
	}
	if c.Gamma <= 0 || c.Gamma > 1 {
		return ErrInvalidGamma
	}
	if c.NActions < 1 {
		return ErrInvalidNActions
	}
	if c.SearchDepth < 1 {
		return ErrInvalidSearchDepth
	}
	if c.AlgorithmIter < 1 {
		return ErrInvalidAlgorithmIter
	}
	return nil
}

// variant maps Config.Algorithm to the matching hoo.Variant.
func (c Config) variant() hoo.Variant {
	switch c.Algorithm {
	case "ld_hoot":
		return hoo.LDHOO
	case "poly_hoot":
		return hoo.PolyHOO
	case "t_hoot":
		return hoo.THOO
	default:
		return hoo.HOO
	}
}

// banditOptions translates c into the hoo.Option set NewBandit expects.
func (c Config) banditOptions() []hoo.Option {
	opts := []hoo.Option{
		hoo.WithVariant(c.variant()),
		hoo.WithCE(c.Ce),
		hoo.WithPolyConstants(c.Alpha, c.Eta, c.Xi),
	}
	if c.V1 != 0 {
		opts = append(opts, hoo.WithV1(c.V1))
	}
	if c.HooMaxDepth != hoo.Unbounded {
		opts = append(opts, hoo.WithMaxDepth(c.HooMaxDepth))
	}
	if c.variant() == hoo.THOO {
		opts = append(opts, hoo.WithHorizon(c.AlgorithmIter))
	}
	return opts
}
