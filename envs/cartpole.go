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
	simulate.Register("cartpole", func(seed *int64, clipReward bool) (env.Environment, error) {
		return NewContinuousCartPole(seed)
	})
}

const (
	cartPoleXThreshold         = 2.4
	cartPoleThetaThresholdRads = 12 * 2 * math.Pi / 360
)

// ContinuousCartPole is a continuous-force variant of the classic
// cart-pole balancing task: the pole's angle and the cart's position are
// tracked with explicit Euler integration (matching gym's default
// kinematics_integrator="euler") and the episode terminates once either
// crosses its threshold.
type ContinuousCartPole struct {
	gravity, massCart, massPole, totalMass float64
	length, poleMassLength                 float64
	tau, forceMag                          float64

	x, xDot, theta, thetaDot float64
}

// NewContinuousCartPole builds a cart-pole with the reference
// implementation's default physical constants, resetting its state to a
// small uniform random perturbation around the upright equilibrium.
func NewContinuousCartPole(seed *int64) (*ContinuousCartPole, error) {
	c := &ContinuousCartPole{
		gravity:  9.8,
		massCart: 1.0,
		massPole: 0.1,
		length:   0.5,
		tau:      0.02,
		forceMag: 10.0,
	}
	c.totalMass = c.massCart + c.massPole
	c.poleMassLength = c.massPole * c.length

	r := rng.FromSeed(seed)
	c.reset(r)
	return c, nil
}

func (c *ContinuousCartPole) reset(r *rand.Rand) {
	uniform := func() float64 { return -0.05 + r.Float64()*0.1 }
	c.x = uniform()
	c.xDot = uniform()
	c.theta = uniform()
	c.thetaDot = uniform()
}

func (c *ContinuousCartPole) ActionRegion() region.Region {
	reg, _ := region.New([][2]float64{{-c.forceMag, c.forceMag}})
	return reg
}

func (c *ContinuousCartPole) Step(action []float64) (float64, bool, error) {
	if !c.ActionRegion().Contains(action) {
		return 0, false, env.ErrActionOutOfRange
	}
	force := action[0]

	costheta := math.Cos(c.theta)
	sintheta := math.Sin(c.theta)

	temp := (force + c.poleMassLength*c.thetaDot*c.thetaDot*sintheta) / c.totalMass
	thetaAcc := (c.gravity*sintheta - costheta*temp) /
		(c.length * (4.0/3.0 - c.massPole*costheta*costheta/c.totalMass))
	xAcc := temp - c.poleMassLength*thetaAcc*costheta/c.totalMass

	c.x += c.tau * c.xDot
	c.xDot += c.tau * xAcc
	c.theta += c.tau * c.thetaDot
	c.thetaDot += c.tau * thetaAcc

	terminated := c.x < -cartPoleXThreshold || c.x > cartPoleXThreshold ||
		c.theta < -cartPoleThetaThresholdRads || c.theta > cartPoleThetaThresholdRads

	reward := 1.0
	if terminated {
		reward = 0.0
	}
	return reward, terminated, nil
}

func (c *ContinuousCartPole) Snapshot() env.Environment {
	cp := *c
	return &cp
}

func (c *ContinuousCartPole) GetState() []float64 {
	return []float64{c.x, c.xDot, c.theta, c.thetaDot}
}
