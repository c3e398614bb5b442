package envs

import (
	"math"
	"math/rand"

	"github.com/arboscape/hoot/env"
	"github.com/arboscape/hoot/internal/rng"
	"github.com/arboscape/hoot/region"
	"github.com/arboscape/hoot/simulate"
)

func init() {
	simulate.Register("mountain_car", func(seed *int64, clipReward bool) (env.Environment, error) {
		return NewMountainCar(seed, clipReward)
	})
}

const (
	mountainCarMinPosition  = -1.2
	mountainCarMaxPosition  = 0.6
	mountainCarMaxSpeed     = 0.07
	mountainCarGoalPosition = 0.45
	mountainCarGoalVelocity = 0.0
	mountainCarPower        = 0.0015
	mountainCarMinAction    = -1.0
	mountainCarMaxAction    = 1.0
)

// MountainCar is the continuous-action mountain-car task: an
// underpowered car must build momentum by rocking between two hills to
// reach the goal position. Supplemental relative to the spec's
// testable scenarios — recovered from the reference implementation's
// environment set to round out the CLI's registered environments.
type MountainCar struct {
	position, velocity float64
	clipReward         bool
}

// NewMountainCar builds a MountainCar reset to a small random position
// near the bottom of the valley with zero velocity.
func NewMountainCar(seed *int64, clipReward bool) (*MountainCar, error) {
	m := &MountainCar{clipReward: clipReward}
	r := rng.FromSeed(seed)
	m.reset(r)
	return m, nil
}

func (m *MountainCar) reset(r *rand.Rand) {
	m.position = -0.6 + r.Float64()*0.2
	m.velocity = 0
}

func (m *MountainCar) ActionRegion() region.Region {
	reg, _ := region.New([][2]float64{{mountainCarMinAction, mountainCarMaxAction}})
	return reg
}

func (m *MountainCar) Step(action []float64) (float64, bool, error) {
	if !m.ActionRegion().Contains(action) {
		return 0, false, env.ErrActionOutOfRange
	}
	force := action[0]

	m.velocity += force*mountainCarPower - 0.0025*math.Cos(3*m.position)
	m.velocity = clamp(m.velocity, -mountainCarMaxSpeed, mountainCarMaxSpeed)

	m.position += m.velocity
	m.position = clamp(m.position, mountainCarMinPosition, mountainCarMaxPosition)
	if m.position == mountainCarMinPosition && m.velocity < 0 {
		m.velocity = 0
	}

	done := m.position >= mountainCarGoalPosition && m.velocity >= mountainCarGoalVelocity
	reward := -force * force * 0.1
	if done {
		reward += 100.0
	}
	if m.clipReward {
		reward = (reward + 0.1) / 100.1
	}
	return reward, done, nil
}

func (m *MountainCar) Snapshot() env.Environment {
	cp := *m
	return &cp
}

func (m *MountainCar) GetState() []float64 { return []float64{m.position, m.velocity} }

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
