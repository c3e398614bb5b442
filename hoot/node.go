package hoot

import (
	"math/rand"
	"strconv"
	"strings"

	"github.com/arboscape/hoot/hoo"
	internalrng "github.com/arboscape/hoot/internal/rng"
	"github.com/arboscape/hoot/planning"
	"github.com/arboscape/hoot/region"
)

// banditFactory builds a fresh hoo.Bandit over reg using rng, carrying
// whatever variant/options configuration the root Node was constructed with.
// Every Node in a run shares the same factory so every decision point
// gets a consistently configured bandit.
type banditFactory func(reg region.Region, rng *rand.Rand) (*hoo.Bandit, error)

// Node is one point of decision in the outer tree: it owns a hoo.Bandit
// scoped to its planning.State's action region, and memoizes the
// successor state reached by each distinct HOO leaf it has ever selected.
type Node struct {
	state  *planning.State
	depth  int
	gamma  float64
	bandit *hoo.Bandit
	rng    *rand.Rand

	children map[string]*Node
	parent   *Node

	reward float64
	done   bool

	newBandit banditFactory
}

// NewRootNode builds the root of a fresh outer tree over state, whose
// bandit draws from rng directly. Every descendant node instead draws
// from a stream derived from its parent's rng (see SelectAction), so
// sibling subtrees never replay the same draws.
func NewRootNode(state *planning.State, gamma float64, rng *rand.Rand, newBandit banditFactory) (*Node, error) {
	bandit, err := newBandit(state.ActionRegion(), rng)
	if err != nil {
		return nil, err
	}
	return &Node{
		state:     state,
		depth:     0,
		gamma:     gamma,
		bandit:    bandit,
		rng:       rng,
		children:  make(map[string]*Node),
		newBandit: newBandit,
	}, nil
}

// State returns the planning state n owns.
func (n *Node) State() *planning.State { return n.state }

// Depth returns n's distance from the current root.
func (n *Node) Depth() int { return n.depth }

// Done reports whether the transition that produced n observed termination.
func (n *Node) Done() bool { return n.done }

// Reward returns the reward observed on the transition that produced n.
func (n *Node) Reward() float64 { return n.reward }

// Bandit returns the hoo.Bandit n owns.
func (n *Node) Bandit() *hoo.Bandit { return n.bandit }

// canonicalKey renders a float64 vector as a stable string: bisection
// centers that are bit-identical render identically, and nothing else
// does, since FormatFloat's 'g'/-1 verb is the shortest decimal that
// round-trips exactly.
func canonicalKey(point []float64) string {
	parts := make([]string, len(point))
	for i, x := range point {
		parts[i] = strconv.FormatFloat(x, 'g', -1, 64)
	}
	return strings.Join(parts, ";")
}

// SelectAction runs one HOO descent on n's bandit, forms an action from
// the leaf it lands on, and either reuses the previously simulated
// successor for that leaf's center or simulates a new one. Successor
// nodes are never re-simulated once memoized (P6).
func (n *Node) SelectAction(mode hoo.SampleMode) (*Node, float64, bool, error) {
	leaf := n.bandit.GeneratePath()
	action := n.bandit.SamplePoint(leaf, mode)
	key := canonicalKey(leaf.Center())

	if child, ok := n.children[key]; ok {
		return child, child.reward, child.done, nil
	}

	nextState, reward, done, err := n.state.Simulate(action)
	if err != nil {
		return nil, 0, false, err
	}

	// Each child gets its own derived stream, keyed by its insertion
	// order under n, so sibling decision nodes explore decorrelated
	// trajectories instead of replaying n's own draws.
	childRNG := internalrng.Derive(n.rng, uint64(len(n.children)))
	bandit, err := n.newBandit(nextState.ActionRegion(), childRNG)
	if err != nil {
		return nil, 0, false, err
	}
	child := &Node{
		state:     nextState,
		depth:     n.depth + 1,
		gamma:     n.gamma,
		bandit:    bandit,
		rng:       childRNG,
		children:  make(map[string]*Node),
		parent:    n,
		reward:    reward,
		done:      done,
		newBandit: n.newBandit,
	}
	n.children[key] = child
	return child, reward, done, nil
}

// Backpropagate discounts the reward sequence collected along one
// trajectory, normalizes by the discounted weight to keep the observed
// value in the convex hull of the individual rewards (P7), updates n's
// own bandit, and recurses into the parent until the root.
func (n *Node) Backpropagate(rewards []float64, t int) {
	d := n.depth
	if d >= len(rewards) {
		return
	}

	var rNum, wDen, gammaPow float64
	gammaPow = 1.0
	for i := d; i < len(rewards); i++ {
		rNum += gammaPow * rewards[i]
		wDen += gammaPow
		gammaPow *= n.gamma
	}
	n.bandit.Observe(rNum/wDen, t)

	if n.parent != nil {
		n.parent.Backpropagate(rewards, t)
	}
}

// Reset detaches n from its parent and recomputes the depth of every
// node in n's owned subtree with n at depth 0 — used when committing an
// action so the chosen child becomes the new root without losing its
// accumulated tree.
func (n *Node) Reset() {
	n.parent = nil
	n.resetDepths(0)
}

func (n *Node) resetDepths(depth int) {
	n.depth = depth
	for _, c := range n.children {
		c.resetDepths(depth + 1)
	}
}

// BestAction delegates to n's bandit.
func (n *Node) BestAction(mode hoo.SampleMode) []float64 {
	action, _ := n.BestActionAndKey(mode)
	return action
}

// BestActionAndKey delegates to n's bandit and additionally returns the
// canonical key of the leaf the action was drawn from, so a Driver can
// locate the matching memoized child even when mode samples a point that
// isn't bit-identical to the leaf's center.
func (n *Node) BestActionAndKey(mode hoo.SampleMode) ([]float64, string) {
	leaf := n.bandit.BestNode()
	action := n.bandit.SamplePoint(leaf, mode)
	return action, canonicalKey(leaf.Center())
}
