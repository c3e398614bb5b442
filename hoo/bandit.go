package hoo

import (
	"math"
	"math/rand"

	"github.com/arboscape/hoot/region"
)

// Bandit grows and refreshes a single HOO partition tree over a region.
//
// A Bandit is not safe for concurrent use: GeneratePath, Observe and
// BestAction mutate shared node state and must be called from one
// goroutine at a time, in the sequence GeneratePath -> SamplePoint ->
// (caller evaluates the action) -> Observe.
type Bandit struct {
	root *Node
	rng  *rand.Rand

	variant Variant
	v1, ce  float64
	rho     float64

	maxDepth int

	alpha, eta, xi float64

	horizon int

	path []*Node
}

// NewBandit builds a Bandit over reg, using rng for every random choice it
// ever makes (split axes, sampling, B-value tie-breaks). rng is not owned:
// the caller may reuse it across many Bandits for a reproducible run.
func NewBandit(reg region.Region, rng *rand.Rand, opts ...Option) (*Bandit, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	switch cfg.variant {
	case HOO, LDHOO, PolyHOO, THOO:
	default:
		return nil, ErrUnknownVariant
	}
	if (cfg.variant == LDHOO || cfg.variant == PolyHOO) && cfg.maxDepth == Unbounded {
		return nil, ErrMissingMaxDepth
	}
	if cfg.variant == THOO && cfg.horizon <= 0 {
		return nil, ErrMissingHorizon
	}

	d := reg.Dim()
	if !cfg.v1Set {
		cfg.v1 = 4.0 * float64(d)
	}
	rho := math.Pow(2.0, -2.0/float64(d))

	b := &Bandit{
		rng:      rng,
		variant:  cfg.variant,
		v1:       cfg.v1,
		ce:       cfg.ce,
		rho:      rho,
		maxDepth: cfg.maxDepth,
		alpha:    cfg.alpha,
		eta:      cfg.eta,
		xi:       cfg.xi,
		horizon:  cfg.horizon,
	}
	b.root = newNode(reg, 0, cfg.maxDepth, nil, rng)
	return b, nil
}

// GeneratePath descends from the root by repeatedly choosing the child
// with the highest B-value, expands the leaf it lands on, and returns
// that leaf. The descended path is recorded for the following Observe
// call.
func (b *Bandit) GeneratePath() *Node {
	node := b.root
	path := []*Node{node}
	for !node.IsLeaf() {
		node = node.BestChildByB(b.rng)
		path = append(path, node)
	}
	node.Expand(b.rng)
	b.path = path
	return node
}

// SamplePoint reduces node's region to a single action, either its center
// (ModeCenter) or a uniform random draw (ModeSample).
func (b *Bandit) SamplePoint(node *Node, mode SampleMode) []float64 {
	if mode == ModeSample {
		return node.Sample(b.rng)
	}
	return node.Center()
}

// Observe records reward along the path from the most recent
// GeneratePath call and refreshes U- and B-values. t is the live decision
// time step; t-HOO ignores it in favor of its declared horizon.
func (b *Bandit) Observe(reward float64, t int) {
	for _, n := range b.path {
		n.visits++
		n.rewardSum += reward
	}
	if b.variant == THOO {
		b.refreshPath()
	} else {
		b.refreshFull(b.root, t)
	}
}

// refreshFull recomputes U top-down and B bottom-up over the entire tree.
func (b *Bandit) refreshFull(n *Node, t int) {
	n.u = b.computeU(n, t)
	for _, c := range n.children {
		if c != nil {
			b.refreshFull(c, t)
		}
	}
	n.pendingB = true
	b.propagateB(n)
}

// propagateB computes n's B-value from its children and continues to n's
// parent, stopping at the first node that is not pending. refreshFull
// marks a node pending only once all its children are refreshed, so each
// node's B-value is computed exactly once per pass, from fresh children.
func (b *Bandit) propagateB(n *Node) {
	if !n.pendingB {
		return
	}
	n.pendingB = false
	n.b = computeB(n)
	if !n.IsRoot() {
		b.propagateB(n.parent)
	}
}

// refreshPath is t-HOO's refresh rule: only the nodes on the most recent
// descended path get a fresh U-value (using the declared horizon, not the
// live step count), and only the path below the root gets its B-value
// recomputed. The root's B-value is never consulted by GeneratePath (it
// only ever compares children), so leaving it stale here is harmless.
func (b *Bandit) refreshPath() {
	for _, n := range b.path {
		n.u = b.computeU(n, b.horizon)
	}
	node := b.path[len(b.path)-1]
	for !node.IsRoot() {
		node.b = computeB(node)
		node = node.parent
	}
}

// computeB derives a node's B-value from its U-value and the B-values of
// its (already up to date) children.
func computeB(n *Node) float64 {
	if n.IsLeaf() {
		return n.u
	}
	maxChildB := math.Inf(-1)
	for _, c := range n.children {
		if c != nil && c.b > maxChildB {
			maxChildB = c.b
		}
	}
	return math.Min(n.u, maxChildB)
}

// computeU returns n's optimistic upper confidence bound at time t (or
// horizon, for t-HOO). An unvisited node's U-value is +infinity so
// GeneratePath always prefers exploring it first.
func (b *Bandit) computeU(n *Node, t int) float64 {
	if n.visits == 0 {
		return math.Inf(1)
	}
	mean := n.AverageReward()
	diameter := b.v1 * math.Pow(b.rho, float64(n.depth))

	if b.variant == PolyHOO {
		confidence := b.ce * math.Pow(float64(t), b.alpha/b.xi) * math.Pow(float64(n.visits), b.eta-1)
		return mean + confidence + diameter
	}
	confidence := b.ce * math.Sqrt(2.0*math.Log(float64(t))/float64(n.visits))
	return mean + confidence + diameter
}

// BestAction returns the action at the leaf with the highest average
// reward, walking down from the root and at each step preferring any
// child whose subtree's best average reward is at least as good as the
// current best (a tolerant tie-walk: ties favor descending further).
func (b *Bandit) BestAction(mode SampleMode) []float64 {
	return b.SamplePoint(b.bestNode(b.root), mode)
}

func (b *Bandit) bestNode(n *Node) *Node {
	if n.IsLeaf() {
		return n
	}
	best := n
	bestAvg := n.AverageReward()
	for _, c := range n.children {
		if c == nil {
			continue
		}
		candidate := b.bestNode(c)
		if candidate.AverageReward() >= bestAvg {
			best = candidate
			bestAvg = candidate.AverageReward()
		}
	}
	return best
}

// Variant reports which of the four HOO variants b runs.
func (b *Bandit) Variant() Variant { return b.variant }

// Root returns the tree's root node.
func (b *Bandit) Root() *Node { return b.root }

// BestNode returns the node BestAction would sample from: the leaf
// reached by always descending into the child with the higher average
// reward, breaking ties by preferring to descend further.
func (b *Bandit) BestNode() *Node { return b.bestNode(b.root) }
