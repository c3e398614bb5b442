package hoo

// Variant selects which of the four confidence-bound / expansion rules a
// Bandit follows. The four variants share GeneratePath, SamplePoint,
// Observe and BestAction; they differ only in computeU and in Observe's
// choice between a full-tree sweep and a path-only sweep.
type Variant int

const (
	// HOO is the unbounded base algorithm: U from the empirical mean plus
	// a √(ln t / N) exploration term, refreshed over the whole tree.
	HOO Variant = iota
	// LDHOO caps expansion at a declared maximum depth; otherwise identical to HOO.
	LDHOO
	// PolyHOO caps expansion like LDHOO but substitutes a polynomial
	// confidence term for the √(ln t / N) term.
	PolyHOO
	// THOO (t-HOO) keeps HOO's confidence term but refreshes only the
	// descended path on each observation, using a declared horizon in
	// place of the live time step.
	THOO
)

// String renders v as its short bandit name ("hoo", "ld_hoo", "poly_hoo",
// "t_hoo"). These differ from the simulate.Config algorithm names
// ("hoot", "ld_hoot", "poly_hoot", "t_hoot").
func (v Variant) String() string {
	switch v {
	case HOO:
		return "hoo"
	case LDHOO:
		return "ld_hoo"
	case PolyHOO:
		return "poly_hoo"
	case THOO:
		return "t_hoo"
	default:
		return "unknown"
	}
}

// SampleMode selects how a node's region is reduced to a single point.
type SampleMode int

const (
	// ModeCenter returns a node's region's midpoint — deterministic given
	// the tree shape.
	ModeCenter SampleMode = iota
	// ModeSample draws a uniform random point from a node's region.
	ModeSample
)
