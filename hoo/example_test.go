package hoo_test

import (
	"fmt"
	"math/rand"

	"github.com/arboscape/hoot/hoo"
	"github.com/arboscape/hoot/region"
)

// This example runs plain HOO over a 1-D region for a handful of rounds,
// rewarding points near 0.5, then reads off the best action found.
func Example() {
	r, err := region.New([][2]float64{{0, 1}})
	if err != nil {
		panic(err)
	}
	rng := rand.New(rand.NewSource(0))
	b, err := hoo.NewBandit(r, rng)
	if err != nil {
		panic(err)
	}

	for t := 1; t <= 500; t++ {
		leaf := b.GeneratePath()
		x := b.SamplePoint(leaf, hoo.ModeCenter)
		reward := 1 - (x[0]-0.5)*(x[0]-0.5)
		b.Observe(reward, t)
	}

	action := b.BestAction(hoo.ModeCenter)
	fmt.Printf("%.1f\n", action[0])
	// Output: 0.5
}
