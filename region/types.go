package region

import (
	"errors"
	"fmt"
	"math/rand"
)

// Sentinel errors for Region construction and bisection.
var (
	// ErrEmptyRegion indicates zero axes were supplied to New.
	ErrEmptyRegion = errors.New("region: dimension must be >= 1")

	// ErrInvalidBounds indicates some axis had lo > hi.
	ErrInvalidBounds = errors.New("region: low bound exceeds high bound")

	// ErrAxisOutOfRange indicates Split was called with an axis outside [0, Dim()-1].
	ErrAxisOutOfRange = errors.New("region: axis out of range")
)

// Region is an immutable axis-aligned hyper-rectangle in ℝᵈ.
//
// The zero value is not meaningful; construct with New.
type Region struct {
	lo []float64
	hi []float64
}

// New builds a Region from d closed intervals, one pair (lo, hi) per axis.
//
// Complexity: O(d).
func New(bounds [][2]float64) (Region, error) {
	if len(bounds) == 0 {
		return Region{}, ErrEmptyRegion
	}
	lo := make([]float64, len(bounds))
	hi := make([]float64, len(bounds))
	for i, b := range bounds {
		if b[0] > b[1] {
			return Region{}, fmt.Errorf("%w: axis %d (%g > %g)", ErrInvalidBounds, i, b[0], b[1])
		}
		lo[i] = b[0]
		hi[i] = b[1]
	}
	return Region{lo: lo, hi: hi}, nil
}

// Dim returns the number of axes d.
func (r Region) Dim() int { return len(r.lo) }

// Low returns a copy of the per-axis lower bounds.
func (r Region) Low() []float64 { return append([]float64(nil), r.lo...) }

// High returns a copy of the per-axis upper bounds.
func (r Region) High() []float64 { return append([]float64(nil), r.hi...) }

// Center returns the midpoint of the region, one value per axis.
//
// Complexity: O(d).
func (r Region) Center() []float64 {
	c := make([]float64, r.Dim())
	for i := range c {
		c[i] = (r.lo[i] + r.hi[i]) / 2.0
	}
	return c
}

// SampleUniform draws an independent uniform sample on each axis.
//
// Complexity: O(d).
func (r Region) SampleUniform(rng *rand.Rand) []float64 {
	x := make([]float64, r.Dim())
	for i := range x {
		x[i] = r.lo[i] + rng.Float64()*(r.hi[i]-r.lo[i])
	}
	return x
}

// Contains reports whether point lies within every axis' closed interval.
// Used to detect an Environment Contract violation (an action outside its
// declared region).
//
// Complexity: O(d).
func (r Region) Contains(point []float64) bool {
	if len(point) != r.Dim() {
		return false
	}
	for i, x := range point {
		if x < r.lo[i] || x > r.hi[i] {
			return false
		}
	}
	return true
}

// Split bisects the region along axis at its midpoint, returning the lower
// and upper halves. Every axis other than axis is shared verbatim between
// the two halves. Both halves are closed intervals on axis, so the
// midpoint lies in both; Split does not assign it to either half.
//
// Complexity: O(d).
func (r Region) Split(axis int) (lower, upper Region, err error) {
	if axis < 0 || axis >= r.Dim() {
		return Region{}, Region{}, fmt.Errorf("%w: %d (dim=%d)", ErrAxisOutOfRange, axis, r.Dim())
	}
	mid := (r.lo[axis] + r.hi[axis]) / 2.0

	loLower := append([]float64(nil), r.lo...)
	hiLower := append([]float64(nil), r.hi...)
	hiLower[axis] = mid

	loUpper := append([]float64(nil), r.lo...)
	loUpper[axis] = mid
	hiUpper := append([]float64(nil), r.hi...)

	return Region{lo: loLower, hi: hiLower}, Region{lo: loUpper, hi: hiUpper}, nil
}
