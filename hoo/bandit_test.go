package hoo_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arboscape/hoot/hoo"
	"github.com/arboscape/hoot/region"
)

func newRegion(t *testing.T, d int) region.Region {
	t.Helper()
	bounds := make([][2]float64, d)
	for i := range bounds {
		bounds[i] = [2]float64{0, 1}
	}
	r, err := region.New(bounds)
	require.NoError(t, err)
	return r
}

func TestNewBandit_RequiresMaxDepthForCappedVariants(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	r := newRegion(t, 1)

	_, err := hoo.NewBandit(r, rng, hoo.WithVariant(hoo.LDHOO))
	require.ErrorIs(t, err, hoo.ErrMissingMaxDepth)

	_, err = hoo.NewBandit(r, rng, hoo.WithVariant(hoo.PolyHOO))
	require.ErrorIs(t, err, hoo.ErrMissingMaxDepth)
}

func TestNewBandit_RequiresHorizonForTHOO(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	r := newRegion(t, 1)

	_, err := hoo.NewBandit(r, rng, hoo.WithVariant(hoo.THOO))
	require.ErrorIs(t, err, hoo.ErrMissingHorizon)

	_, err = hoo.NewBandit(r, rng, hoo.WithVariant(hoo.THOO), hoo.WithHorizon(10))
	require.NoError(t, err)
}

// TestObserve_S3 is the literal scenario S3 from the specification: a
// single observation of reward 1 at t=1 on a freshly built HOO bandit.
func TestObserve_S3(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	r := newRegion(t, 1)
	b, err := hoo.NewBandit(r, rng, hoo.WithCE(1.0), hoo.WithV1(4.0))
	require.NoError(t, err)

	leaf := b.GeneratePath()
	require.Same(t, b.Root(), leaf)
	b.Observe(1.0, 1)

	root := b.Root()
	require.Equal(t, 1, root.Visits())
	require.InDelta(t, 1.0, root.AverageReward(), 1e-12)

	wantU := 1.0 + 4.0 // mean=1, ce*sqrt(2*ln(1)/1)=0, v1*rho^0=v1
	require.InDelta(t, wantU, root.U(), 1e-9)
	require.Equal(t, root.U(), root.B())
}

// TestRefresh_LDHOOCap is the literal scenario S4: depth never exceeds
// H_max, and capped nodes keep accumulating visits without expanding.
func TestRefresh_LDHOOCap(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	r := newRegion(t, 1)
	b, err := hoo.NewBandit(r, rng, hoo.WithVariant(hoo.LDHOO), hoo.WithMaxDepth(2))
	require.NoError(t, err)

	for i := 0; i < 50; i++ {
		leaf := b.GeneratePath()
		require.LessOrEqual(t, leaf.Depth(), 2)
		b.Observe(rng.Float64(), i+1)
	}

	requireDepthCap(t, b.Root(), 2)
}

func requireDepthCap(t *testing.T, n *hoo.Node, maxDepth int) {
	t.Helper()
	require.LessOrEqual(t, n.Depth(), maxDepth)
	if n.Depth() == maxDepth {
		require.True(t, n.IsLeaf())
	}
	lower, upper := n.Children()
	if lower != nil {
		requireDepthCap(t, lower, maxDepth)
	}
	if upper != nil {
		requireDepthCap(t, upper, maxDepth)
	}
}

// TestInvariant_P1 checks B <= U everywhere, and B <= max child B for
// internal nodes, after many observations on an unbounded HOO tree.
func TestInvariant_P1(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	r := newRegion(t, 2)
	b, err := hoo.NewBandit(r, rng)
	require.NoError(t, err)

	for i := 0; i < 200; i++ {
		b.GeneratePath()
		b.Observe(rng.Float64(), i+1)
	}

	requireP1(t, b.Root())
}

func requireP1(t *testing.T, n *hoo.Node) {
	t.Helper()
	require.LessOrEqual(t, n.B(), n.U())

	lower, upper := n.Children()
	if lower == nil {
		return
	}
	maxChildB := math.Max(lower.B(), upper.B())
	require.LessOrEqual(t, n.B(), maxChildB)

	requireP1(t, lower)
	requireP1(t, upper)
}

// TestInvariant_P2 checks N(internal) = sum N(child) after refresh.
func TestInvariant_P2(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	r := newRegion(t, 1)
	b, err := hoo.NewBandit(r, rng)
	require.NoError(t, err)

	for i := 0; i < 100; i++ {
		b.GeneratePath()
		b.Observe(rng.Float64(), i+1)
	}

	requireP2(t, b.Root())
}

func requireP2(t *testing.T, n *hoo.Node) {
	t.Helper()
	lower, upper := n.Children()
	if lower == nil {
		return
	}
	require.Equal(t, n.Visits(), lower.Visits()+upper.Visits())
	requireP2(t, lower)
	requireP2(t, upper)
}

func TestBestAction_PrefersHigherReward(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	r := newRegion(t, 1)
	b, err := hoo.NewBandit(r, rng)
	require.NoError(t, err)

	for i := 0; i < 300; i++ {
		leaf := b.GeneratePath()
		x := b.SamplePoint(leaf, hoo.ModeCenter)
		reward := 1.0 - math.Abs(x[0]-0.75)
		b.Observe(reward, i+1)
	}

	action := b.BestAction(hoo.ModeCenter)
	require.InDelta(t, 0.75, action[0], 0.2)
}

func TestTHOO_RefreshesOnlyPath(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	r := newRegion(t, 1)
	b, err := hoo.NewBandit(r, rng, hoo.WithVariant(hoo.THOO), hoo.WithHorizon(64))
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		b.GeneratePath()
		b.Observe(rng.Float64(), i+1)
	}

	// Every visited node's U-value must have been computed with the
	// declared horizon (64), not the live step count (<=10): with a
	// positive mean and ce=1 this pins log(64) into the confidence term,
	// which we can't observe directly, so instead assert the documented
	// contract indirectly — the root itself is never re-assigned a B by
	// refreshPath, so it keeps its construction-time value until a full
	// sweep variant would have changed it.
	require.Equal(t, math.Inf(1), b.Root().B())
}
