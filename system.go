package orrery

import (
	"fmt"
	"math"

	"github.com/phil-mansfield/orrery/geom"
)

const (
	// DefaultDt is roughly one solar day, in seconds.
	DefaultDt = 86459.0
	// DefaultSteps is the number of steps taken by StepSystem callers who
	// don't specify one.
	DefaultSteps = 1
)

// Point is a single (x, y) position sample.
type Point struct {
	X, Y float64
}

// Trajectory is the sequence of position samples of one body, in step order.
type Trajectory []Point

// Stepper advances a collection of particles through time. It keeps a
// scratch force buffer between calls so that repeated single steps do not
// allocate.
//
// A Stepper holds no reference to the particles between calls. The caller
// must have exclusive ownership of the particles for the duration of each
// call: concurrent modification is a precondition violation and is not
// detected.
type Stepper struct {
	forces []geom.Vec
	steps  int
}

// NewStepper returns a Stepper with a scratch buffer sized for n particles.
// The buffer grows as needed.
func NewStepper(n int) *Stepper {
	return &Stepper{forces: make([]geom.Vec, n)}
}

// Steps returns the number of steps which have completed successfully.
func (s *Stepper) Steps() int { return s.steps }

// Step performs a single integration step on ps, appending the pre-step
// position of ps[i] to trajs[i]. trajs must have the same length as ps.
//
// Forces are computed for every ordered pair before anything is modified, so
// a step which fails with ErrDegenerateGeometry leaves every particle (and
// trajs) untouched.
func (s *Stepper) Step(ps []Particle, dt float64, trajs []Trajectory) error {
	if err := checkDt(dt); err != nil { return err }
	if len(trajs) != len(ps) {
		return fmt.Errorf(
			"%w: %d trajectories given for %d bodies",
			ErrInvalidConfig, len(trajs), len(ps),
		)
	}

	if cap(s.forces) < len(ps) {
		s.forces = make([]geom.Vec, len(ps))
	}
	forces := s.forces[:len(ps)]

	for i := range ps {
		forces[i] = ps[i].Force()
		for j := range ps {
			if i == j { continue }
			f, err := ForceFrom(ps[i], ps[j])
			if err != nil {
				return &StepError{Step: s.steps, I: i, J: j, Err: err}
			}
			forces[i] = forces[i].Add(f)
		}
	}

	for i, p := range ps {
		p.SetForce(forces[i])
		pos := p.Position()
		trajs[i] = append(trajs[i], Point{pos[0], pos[1]})
		p.Advance(dt)
		p.ClearForce()
	}

	s.steps++
	return nil
}

// Run performs nsteps steps on ps and returns one trajectory of length
// nsteps per particle. If a step fails, the trajectories of every step
// which completed are returned alongside the error.
func (s *Stepper) Run(
	ps []Particle, dt float64, nsteps int,
) ([]Trajectory, error) {
	if nsteps < 0 {
		return nil, fmt.Errorf("%w: nsteps = %d", ErrInvalidConfig, nsteps)
	} else if err := checkDt(dt); err != nil {
		return nil, err
	}

	trajs := make([]Trajectory, len(ps))
	for i := range trajs {
		trajs[i] = make(Trajectory, 0, nsteps)
	}
	if len(ps) == 0 { return trajs, nil }

	for k := 0; k < nsteps; k++ {
		if err := s.Step(ps, dt, trajs); err != nil {
			return trajs, err
		}
	}
	return trajs, nil
}

// StepSystem advances ps by nsteps steps of size dt and returns the
// trajectory of each particle.
//
// Each trajectory is sampled at the start of every step, so its first point
// is the initial position and the position reached by the final step is
// only available by reading the particles themselves. An empty ps yields no
// trajectories and nsteps = 0 yields empty trajectories without modifying
// anything.
func StepSystem(ps []Particle, dt float64, nsteps int) ([]Trajectory, error) {
	return NewStepper(len(ps)).Run(ps, dt, nsteps)
}

func checkDt(dt float64) error {
	if math.IsNaN(dt) || math.IsInf(dt, 0) {
		return fmt.Errorf("%w: dt = %g", ErrInvalidConfig, dt)
	}
	return nil
}
