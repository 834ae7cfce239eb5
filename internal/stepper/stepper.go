// Package stepper advances body kinematics: it integrates the forces
// accumulated during the frame, applies damping, and resolves
// body-body and body-wall collisions through the world's broadphase
// and contact rules.
package stepper

import (
	"math"

	"github.com/san-kum/particlefield/internal/world"
)

const (
	// MaxDt caps a single step. Large wall-clock gaps (a backgrounded
	// window, a debugger pause) must not turn into destabilizing
	// integration steps.
	MaxDt = 0.1

	// DefaultDt is used when no timestamp history exists yet.
	DefaultDt = 1.0 / 60
)

type Stepper struct {
	w *world.World
}

func New(w *world.World) *Stepper {
	return &Stepper{w: w}
}

// Step advances the world by dt. dt is clamped to MaxDt; a
// non-positive dt falls back to DefaultDt. Forces accumulated before
// the call are consumed by this step and cleared afterwards, so a
// force written in frame N moves bodies in frame N.
func (s *Stepper) Step(dt float64) {
	if dt <= 0 {
		dt = DefaultDt
	}
	if dt > MaxDt {
		dt = MaxDt
	}

	s.integrate(dt)
	s.resolveCollisions()
}

// integrate is semi-implicit Euler: velocity first, position from the
// new velocity. Damping attenuates velocity as (1-d)^dt so the decay
// rate is framerate-independent.
func (s *Stepper) integrate(dt float64) {
	for _, b := range s.w.Bodies() {
		if b.Static() {
			b.Force = world.Vec2{}
			continue
		}

		acc := b.Force.Scale(b.InvMass).Add(s.w.Gravity)
		b.Vel = b.Vel.Add(acc.Scale(dt))

		if b.LinearDamping > 0 {
			b.Vel = b.Vel.Scale(math.Pow(1-b.LinearDamping, dt))
		}
		if b.AngularDamping > 0 {
			b.AngVel *= math.Pow(1-b.AngularDamping, dt)
		}

		b.Pos = b.Pos.Add(b.Vel.Scale(dt))
		b.Angle += b.AngVel * dt

		b.Force = world.Vec2{}
	}
}

func (s *Stepper) resolveCollisions() {
	for _, pair := range s.w.Pairs() {
		m, ok := collide(pair.A, pair.B)
		if !ok {
			continue
		}
		c := s.w.ContactFor(pair.A.Mat, pair.B.Mat)
		resolve(m, c)
	}
}
