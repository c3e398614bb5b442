// Package region implements the action region: an axis-aligned
// hyper-rectangle in ℝᵈ, the value type the HOO partition tree recursively
// bisects.
//
// What & why
//
//	A Region is d closed intervals [loᵢ, hiᵢ], one per action dimension.
//	It is immutable once constructed: Split produces two new Regions that
//	share every axis except the one split, and never mutates the receiver.
//	This makes Region safe to hand to concurrently-read HOO nodes without
//	any locking — there is nothing to lock.
//
// Invariants
//
//	  - d = Dim() >= 1 (enforced by New).
//	  - loᵢ <= hiᵢ for every axis (enforced by New).
//	  - Split(k) on [lo, hi] yields lower = [lo, mid] and upper = [mid, hi]
//	    on axis k (mid = (loₖ+hiₖ)/2), identical on every other axis. Both
//	    halves are closed, so Contains reports the midpoint as inside both;
//	    no tie-break assigns it to one half.
package region
