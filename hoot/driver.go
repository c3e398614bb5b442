package hoot

import "github.com/arboscape/hoot/hoo"

// DriverOption configures a Driver at construction time.
type DriverOption func(*Driver)

// WithSeed reseeds the driver's shared RNG to seed at the start of every
// Run call, so repeated Run calls from the same root produce the same
// sequence of n_iter trajectories.
func WithSeed(seed int64) DriverOption {
	return func(d *Driver) { d.seed = &seed }
}

// WithReRaiseOnFailure sets the failure policy for a simulation error
// encountered mid-trajectory: re-raise (abort Run, the default) or
// swallow (abandon that trajectory and continue with the next).
func WithReRaiseOnFailure(reRaise bool) DriverOption {
	return func(d *Driver) { d.reRaiseOnFailure = reRaise }
}

// rngSeeder is satisfied by *rand.Rand; captured as an interface here so
// Driver doesn't need to import math/rand just to call Seed.
type rngSeeder interface {
	Seed(seed int64)
}

// Driver runs planning iterations from a root Node and commits actions.
type Driver struct {
	root    *Node
	horizon int
	rng     rngSeeder

	seed             *int64
	reRaiseOnFailure bool

	// lastLeafKey caches the key of the leaf BestAction most recently
	// drew from, so Advance can still find the matching child when mode
	// is hoo.ModeSample and the committed action isn't bit-identical to
	// any memoized leaf center (canonicalKey(action) only always matches
	// under hoo.ModeCenter).
	lastLeafKey string
}

// NewDriver builds a Driver that plans to horizon steps deep from root,
// using rng for any reseeding WithSeed requests. reRaiseOnFailure
// defaults to true.
func NewDriver(root *Node, horizon int, rng rngSeeder, opts ...DriverOption) (*Driver, error) {
	if horizon < 1 {
		return nil, ErrInvalidHorizon
	}
	d := &Driver{
		root:             root,
		horizon:          horizon,
		rng:              rng,
		reRaiseOnFailure: true,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// Root returns the driver's current root node.
func (d *Driver) Root() *Node { return d.root }

// Run plans nIter trajectories from the current root and returns the
// resulting best action. A simulation failure mid-trajectory abandons
// that trajectory (it is not backpropagated) and, per reRaiseOnFailure,
// either aborts Run immediately or is swallowed so planning continues
// with the next iteration.
func (d *Driver) Run(nIter int, mode hoo.SampleMode) ([]float64, error) {
	if d.seed != nil {
		d.rng.Seed(*d.seed)
	}

	for t := 1; t <= nIter; t++ {
		rewards, lastNode, err := d.walk(mode)
		if err != nil {
			if d.reRaiseOnFailure {
				return nil, err
			}
			continue
		}
		lastNode.Backpropagate(rewards, t)
	}

	action, key := d.root.BestActionAndKey(mode)
	d.lastLeafKey = key
	return action, nil
}

// walk descends from the root via SelectAction until either done is
// observed or the horizon is reached, then pads the reward buffer to
// horizon entries (repeating the last observed reward) and appends a
// single trailing zero sentinel.
func (d *Driver) walk(mode hoo.SampleMode) ([]float64, *Node, error) {
	node := d.root
	rewards := make([]float64, 0, d.horizon)

	for i := 0; i < d.horizon; i++ {
		child, reward, done, err := node.SelectAction(mode)
		if err != nil {
			return nil, nil, err
		}
		node = child
		rewards = append(rewards, reward)
		if done {
			break
		}
	}

	last := 0.0
	if len(rewards) > 0 {
		last = rewards[len(rewards)-1]
	}
	for len(rewards) < d.horizon {
		rewards = append(rewards, last)
	}
	rewards = append(rewards, 0)

	return rewards, node, nil
}

// Advance commits action as the next real step: it looks up the
// memoized child for action's canonical key (falling back to the key of
// the leaf the most recent Run's BestAction drew from, for the
// hoo.ModeSample case), resets it to become the new root, and discards
// every sibling along with the old root.
func (d *Driver) Advance(action []float64) (reward float64, done bool, err error) {
	key := canonicalKey(action)
	child, ok := d.root.children[key]
	if !ok {
		child, ok = d.root.children[d.lastLeafKey]
	}
	if !ok {
		return 0, false, ErrNoSimulation
	}

	child.Reset()
	d.root = child
	return child.reward, child.done, nil
}
