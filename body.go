package orrery

import (
	"fmt"
	"math"

	"github.com/phil-mansfield/orrery/geom"
)

// G is the gravitational constant in m^3 kg^-1 s^-2.
const G = 6.67e-11

// Particle is the capability set needed by the integrator. Anything which
// has a mass, position, velocity and force accumulator can be stepped.
type Particle interface {
	Mass() float64
	Position() geom.Vec
	Velocity() geom.Vec
	Force() geom.Vec

	SetForce(f geom.Vec)
	ClearForce()
	Advance(dt float64)
}

// Body is a point mass. The force accumulator holds the sum of
// other.Mass * d / |d|^3 over every other body for the current step: it is
// not multiplied by G until Advance is called.
type Body struct {
	mass            float64
	pos, vel, force geom.Vec
}

var _ Particle = &Body{}

// NewBody creates a body with the given mass, position, and velocity and a
// zeroed force accumulator.
func NewBody(mass float64, pos, vel geom.Vec) (*Body, error) {
	if mass < 0 || math.IsNaN(mass) || math.IsInf(mass, 0) {
		return nil, fmt.Errorf("%w: mass %g", ErrInvalidBody, mass)
	} else if !pos.IsFinite() {
		return nil, fmt.Errorf("%w: position %v", ErrInvalidBody, pos)
	} else if !vel.IsFinite() {
		return nil, fmt.Errorf("%w: velocity %v", ErrInvalidBody, vel)
	}
	return &Body{mass: mass, pos: pos, vel: vel}, nil
}

func (b *Body) Mass() float64       { return b.mass }
func (b *Body) Position() geom.Vec  { return b.pos }
func (b *Body) Velocity() geom.Vec  { return b.vel }
func (b *Body) Force() geom.Vec     { return b.force }
func (b *Body) SetForce(f geom.Vec) { b.force = f }
func (b *Body) ClearForce()         { b.force.Clear() }

// DirectionTo returns the vector pointing from b to other.
func (b *Body) DirectionTo(other Particle) geom.Vec {
	return other.Position().Sub(b.pos)
}

// ForceFrom returns the contribution of other to p's force accumulator,
// other.Mass() * d / |d|^3 where d points from p to other. It fails with
// ErrDegenerateGeometry if the two share a position.
func ForceFrom(p, other Particle) (geom.Vec, error) {
	d := other.Position().Sub(p.Position())
	r := d.Norm()
	if r == 0 {
		return geom.Vec{}, fmt.Errorf(
			"%w: both bodies at %v", ErrDegenerateGeometry, p.Position(),
		)
	}
	return d.Scale(other.Mass() / (r * r * r)), nil
}

// AccumulateForceFrom adds the pull of other to b's force accumulator. The
// accumulator is left unchanged if an error is returned.
func (b *Body) AccumulateForceFrom(other Particle) error {
	f, err := ForceFrom(b, other)
	if err != nil { return err }
	b.force = b.force.Add(f)
	return nil
}

// Advance moves b forward by dt seconds using semi-implicit Euler: the
// velocity is updated first and the new velocity moves the position.
func (b *Body) Advance(dt float64) {
	a := b.force.Scale(G)
	b.vel = b.vel.Add(a.Scale(dt))
	b.pos = b.pos.Add(b.vel.Scale(dt))
}

// Equal reports whether every part of the state of b and other is exactly
// equal.
func (b *Body) Equal(other *Body) bool {
	return b.mass == other.mass && b.pos.Equal(other.pos) &&
		b.vel.Equal(other.vel) && b.force.Equal(other.force)
}

func (b *Body) String() string {
	return fmt.Sprintf("%.3gkg %v %v", b.mass, b.pos, b.vel)
}

// Particles converts a slice of bodies into the slice of Particles expected
// by StepSystem. The bodies themselves are shared, not copied.
func Particles(bodies []*Body) []Particle {
	ps := make([]Particle, len(bodies))
	for i := range bodies { ps[i] = bodies[i] }
	return ps
}
