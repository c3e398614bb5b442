package hoot_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arboscape/hoot/hoo"
	"github.com/arboscape/hoot/hoot"
	"github.com/arboscape/hoot/planning"
	"github.com/arboscape/hoot/region"
)

func newRootNode(t *testing.T, rng *rand.Rand, opts ...hoo.Option) *hoot.Node {
	t.Helper()
	ce, steps := newCountingEnv(t, 0)
	_ = steps
	state := planning.NewState(ce)
	factory := func(reg region.Region, r *rand.Rand) (*hoo.Bandit, error) {
		return hoo.NewBandit(reg, r, opts...)
	}
	root, err := hoot.NewRootNode(state, 0.99, rng, factory)
	require.NoError(t, err)
	return root
}

// TestSelectAction_DoesNotMutateParentState is P5.
func TestSelectAction_DoesNotMutateParentState(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	root := newRootNode(t, rng)

	before := append([]float64(nil), root.State().GetState()...)
	_, _, _, err := root.SelectAction(hoo.ModeCenter)
	require.NoError(t, err)

	require.Equal(t, before, root.State().GetState())
}

// TestSelectAction_MemoizesIdenticalLeaf is S5 / P6: a bandit pinned to
// a single leaf (maxDepth=0) must return the same successor node on a
// second call without invoking env.Step a second time.
func TestSelectAction_MemoizesIdenticalLeaf(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	ce, steps := newCountingEnv(t, 0)
	state := planning.NewState(ce)
	factory := func(reg region.Region, r *rand.Rand) (*hoo.Bandit, error) {
		return hoo.NewBandit(reg, r, hoo.WithVariant(hoo.LDHOO), hoo.WithMaxDepth(0))
	}
	root, err := hoot.NewRootNode(state, 0.99, rng, factory)
	require.NoError(t, err)

	first, reward1, done1, err := root.SelectAction(hoo.ModeCenter)
	require.NoError(t, err)
	require.Equal(t, 1, *steps)

	second, reward2, done2, err := root.SelectAction(hoo.ModeCenter)
	require.NoError(t, err)
	require.Equal(t, 1, *steps, "a memoized leaf must not re-invoke env.Step")

	require.Same(t, first, second)
	require.Equal(t, reward1, reward2)
	require.Equal(t, done1, done2)
}

func TestReset_RecomputesDepthsFromZero(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	root := newRootNode(t, rng)

	child, _, _, err := root.SelectAction(hoo.ModeCenter)
	require.NoError(t, err)
	grandchild, _, _, err := child.SelectAction(hoo.ModeCenter)
	require.NoError(t, err)
	require.Equal(t, 2, grandchild.Depth())

	child.Reset()
	require.Equal(t, 0, child.Depth())
	require.Equal(t, 1, grandchild.Depth())
}

// TestBackpropagate_NormalizedReturnStaysInHull is P7. The value is read
// from the root's bandit, whose SelectAction recorded the path that
// Backpropagate observes; the child's bandit has no recorded path yet.
func TestBackpropagate_NormalizedReturnStaysInHull(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	root := newRootNode(t, rng)

	child, reward, _, err := root.SelectAction(hoo.ModeCenter)
	require.NoError(t, err)
	rewards := []float64{reward, 0.3, 0.3, 0}

	child.Backpropagate(rewards, 1)

	normalized := root.Bandit().Root().AverageReward()
	min, max := rewards[0], rewards[0]
	for _, r := range rewards {
		if r < min {
			min = r
		}
		if r > max {
			max = r
		}
	}
	require.GreaterOrEqual(t, normalized, min)
	require.LessOrEqual(t, normalized, max)
}
