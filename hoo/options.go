package hoo

// config accumulates Option values before NewBandit validates and freezes
// them. Mirrors the functional-options-with-a-private-struct pattern used
// throughout this codebase's search constructors.
type config struct {
	variant Variant

	v1    float64
	v1Set bool

	ce       float64
	maxDepth int

	alpha, eta, xi float64

	horizon int
}

func defaultConfig() config {
	return config{
		variant:  HOO,
		ce:       1.0,
		maxDepth: Unbounded,
		alpha:    5.0,
		eta:      20.0,
		xi:       0.5,
	}
}

// Option configures a Bandit at construction time.
type Option func(*config)

// WithVariant selects which of the four HOO variants the Bandit runs.
func WithVariant(v Variant) Option {
	return func(c *config) { c.variant = v }
}

// WithV1 overrides the diameter constant v1 (default: 4 * Dim()).
func WithV1(v1 float64) Option {
	return func(c *config) { c.v1 = v1; c.v1Set = true }
}

// WithCE overrides the exploration-rate constant Ce (default 1.0).
func WithCE(ce float64) Option {
	return func(c *config) { c.ce = ce }
}

// WithMaxDepth sets the maximum tree depth H_max, required by LDHOO and
// PolyHOO.
func WithMaxDepth(maxDepth int) Option {
	return func(c *config) { c.maxDepth = maxDepth }
}

// WithPolyConstants overrides Poly-HOO's alpha, eta and xi constants
// (defaults 5.0, 20.0, 0.5, per the reference algorithm).
func WithPolyConstants(alpha, eta, xi float64) Option {
	return func(c *config) { c.alpha = alpha; c.eta = eta; c.xi = xi }
}

// WithHorizon sets the declared horizon n used by t-HOO in place of the
// live time step. Required by THOO.
func WithHorizon(horizon int) Option {
	return func(c *config) { c.horizon = horizon }
}
