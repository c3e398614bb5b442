// Package hoo implements Hierarchical Optimistic Optimization, the bandit
// that runs at a single HOOT decision node.
//
// https://arxiv.org/abs/1001.4475 (HOO), https://arxiv.org/abs/2106.15594
// (LD-HOO), https://arxiv.org/abs/2006.04672 (Poly-HOO).
//
// What & why
//
//	HOO grows a binary partition tree over a region.Region by always
//	descending into the child with the highest B-value (an optimistic
//	upper confidence bound tightened by recursion), then expanding the
//	leaf it lands on. Observing a reward along the descended path updates
//	visit counts and empirical means, then recomputes every node's U-value
//	(an even more optimistic bound) and B-value.
//
//	Four variants share this skeleton and differ only in two places,
//	selected with a Variant tag rather than a type hierarchy (see Design
//	Notes in DESIGN.md):
//	  - HOO:      unbounded tree, U from the mean + a √(ln t / N) term.
//	  - LD-HOO:   capped at a maximum depth; capped nodes accumulate
//	              visits forever without expanding.
//	  - Poly-HOO: LD-HOO's cap, plus a polynomial confidence term.
//	  - t-HOO:    only the descended path is refreshed each observation,
//	              using a declared horizon instead of the live time step.
//
// Determinism
//
//	All randomness (split-axis choice, uniform sampling, B-value tie
//	breaking) is drawn from a *rand.Rand supplied by the caller — the
//	Bandit never seeds its own source. Reuse the same *rand.Rand across
//	every Bandit in a run for reproducible trajectories.
package hoo
