package hoo

import (
	"math"
	"math/rand"

	"github.com/arboscape/hoot/region"
)

// Unbounded marks a Bandit or Node as having no depth cap (H_max = ∞),
// used by the HOO and t-HOO variants.
const Unbounded = -1

// Node is one cell of the HOO partition tree: a region together with the
// statistics (visit count, empirical mean, U-value, B-value) accumulated
// over every descent that landed inside it.
//
// Node carries no RNG of its own; every operation that needs randomness
// (Expand's split-axis choice, Sample, BestChildByB's tie-break) takes one
// as an explicit argument so a single *rand.Rand can be threaded through
// an entire run.
type Node struct {
	region region.Region

	depth     int
	maxDepth  int // Unbounded, or the H_max this subtree is capped at.
	splitAxis int // axis this node splits on when it expands, chosen at construction.

	parent   *Node
	children [2]*Node

	visits    int
	rewardSum float64

	u, b     float64
	pendingB bool
}

func newNode(reg region.Region, depth, maxDepth int, parent *Node, rng *rand.Rand) *Node {
	axis := 0
	if d := reg.Dim(); d > 1 {
		axis = rng.Intn(d)
	}
	return &Node{
		region:    reg,
		depth:     depth,
		maxDepth:  maxDepth,
		splitAxis: axis,
		parent:    parent,
		u:         math.Inf(1),
		b:         math.Inf(1),
	}
}

// IsRoot reports whether n has no parent.
func (n *Node) IsRoot() bool { return n.parent == nil }

// IsAtCap reports whether n sits at its tree's declared maximum depth and
// will never expand further.
func (n *Node) IsAtCap() bool { return n.maxDepth != Unbounded && n.depth >= n.maxDepth }

// IsLeaf reports whether n has not yet been split. A capped node is
// permanently a leaf.
func (n *Node) IsLeaf() bool { return n.children[0] == nil }

// Depth returns n's depth in the tree, with the root at depth 0.
func (n *Node) Depth() int { return n.depth }

// Visits returns the number of times n's path has been observed.
func (n *Node) Visits() int { return n.visits }

// U returns n's most recently computed U-value.
func (n *Node) U() float64 { return n.u }

// B returns n's most recently computed B-value.
func (n *Node) B() float64 { return n.b }

// Children returns n's two children, or (nil, nil) if n is a leaf.
func (n *Node) Children() (lower, upper *Node) { return n.children[0], n.children[1] }

// Center returns the midpoint of n's region.
func (n *Node) Center() []float64 { return n.region.Center() }

// AverageReward returns the empirical mean reward accumulated at n, or
// negative infinity if n has never been visited.
func (n *Node) AverageReward() float64 {
	if n.visits == 0 {
		return math.Inf(-1)
	}
	return n.rewardSum / float64(n.visits)
}

// Sample draws a uniform random point from n's region.
func (n *Node) Sample(rng *rand.Rand) []float64 { return n.region.SampleUniform(rng) }

// Expand splits n into two children along its pre-chosen axis, unless n is
// already split or sits at its depth cap. A capped node's Expand call is a
// permanent no-op: it accumulates visits forever without ever splitting.
func (n *Node) Expand(rng *rand.Rand) {
	if n.IsAtCap() || !n.IsLeaf() {
		return
	}
	lower, upper, err := n.region.Split(n.splitAxis)
	if err != nil {
		// n.splitAxis was chosen in [0, Dim()) at construction time and
		// the region's dimension never changes, so this cannot happen.
		panic(err)
	}
	n.children[0] = newNode(lower, n.depth+1, n.maxDepth, n, rng)
	n.children[1] = newNode(upper, n.depth+1, n.maxDepth, n, rng)
}

// BestChildByB returns the child with the highest B-value, breaking ties
// uniformly at random via rng. Panics if n has no children; callers only
// invoke it on non-leaf nodes.
func (n *Node) BestChildByB(rng *rand.Rand) *Node {
	var candidates []*Node
	best := math.Inf(-1)
	for _, c := range n.children {
		if c == nil {
			continue
		}
		switch {
		case c.b > best:
			best = c.b
			candidates = candidates[:0]
			candidates = append(candidates, c)
		case c.b == best:
			candidates = append(candidates, c)
		}
	}
	if len(candidates) == 1 {
		return candidates[0]
	}
	return candidates[rng.Intn(len(candidates))]
}
