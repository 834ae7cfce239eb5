// Package forces computes the per-frame external forces on every
// particle: pointer repulsion and long-range pairwise
// attraction.
//
// The pairwise pass visits every unordered particle pair and is the
// system's scalability bound: O(n^2) per frame caps interactive
// particle counts at a few thousand. Any future cutoff grid must keep
// two properties that tests pin down: the force on a pair is exactly
// zero outside (2*radius, attractionRadius], and the contributions on
// the two partners cancel exactly at every evaluation.
package forces

import (
	"fmt"
	"math"

	"github.com/san-kum/particlefield/internal/world"
)

// Defaults mirror the slider defaults exposed by the UI collaborator.
const (
	DefaultParticleRadius     = 7.0
	DefaultPushRadius         = 80.0
	DefaultPushStrength       = 30000.0
	DefaultAttractionRadius   = 150.0
	DefaultAttractionStrength = 25000.0
)

// Params are the tunable force-law parameters. All of them may change
// between frames; a ParticleRadius change additionally requires a full
// particle rebuild, because per-particle geometry is fixed at creation.
type Params struct {
	ParticleRadius     float64
	PushRadius         float64
	PushStrength       float64
	AttractionRadius   float64
	AttractionStrength float64
}

func Defaults() Params {
	return Params{
		ParticleRadius:     DefaultParticleRadius,
		PushRadius:         DefaultPushRadius,
		PushStrength:       DefaultPushStrength,
		AttractionRadius:   DefaultAttractionRadius,
		AttractionStrength: DefaultAttractionStrength,
	}
}

// Validate reports the first contract violation. Callers check before
// construction; frame code assumes valid parameters.
func (p Params) Validate() error {
	if p.ParticleRadius <= 0 {
		return world.ErrBadRadius
	}
	fields := map[string]float64{
		"push_radius":         p.PushRadius,
		"push_strength":       p.PushStrength,
		"attraction_radius":   p.AttractionRadius,
		"attraction_strength": p.AttractionStrength,
	}
	for name, v := range fields {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return fmt.Errorf("forces: %s must be finite and non-negative, got %v", name, v)
		}
	}
	return nil
}

// Apply accumulates this frame's external forces onto every particle.
// Forces are additive; the stepper consumes and clears them in the
// same frame.
func Apply(w *world.World, pointer world.Vec2, p Params) {
	particles := w.Particles()
	applyPointer(particles, pointer, p)
	applyPairwise(particles, p)
}

// applyPointer pushes particles away from the pointer. Inside distance
// 1 the force is dropped rather than allowed to blow up, and the
// normalized falloff (pushRadius-d)/pushRadius keeps the magnitude
// bounded by PushStrength.
func applyPointer(particles []*world.Body, pointer world.Vec2, p Params) {
	for _, b := range particles {
		delta := b.Pos.Sub(pointer)
		d := delta.Len()
		if d <= 1 || d >= p.PushRadius {
			continue
		}
		scale := (p.PushRadius - d) / p.PushRadius
		mag := scale * p.PushStrength
		b.ApplyForce(delta.Scale(mag / d))
	}
}

// applyPairwise is the inverse-square attraction between particle
// pairs. Overlapping pairs (d < 2r) get nothing here: short-range
// separation belongs to collision resolution. The force on A and the
// force on B are built from one computed vector and its negation, so
// the Newton pairing cancels exactly, not just within rounding.
func applyPairwise(particles []*world.Body, p Params) {
	minDist := 2 * p.ParticleRadius
	for i := 0; i < len(particles); i++ {
		a := particles[i]
		for j := i + 1; j < len(particles); j++ {
			b := particles[j]

			delta := b.Pos.Sub(a.Pos)
			d := delta.Len()
			if d < minDist || d > p.AttractionRadius {
				continue
			}

			mag := p.AttractionStrength / (d * d)
			f := delta.Scale(mag / d)
			a.ApplyForce(f)
			b.ApplyForce(world.Vec2{X: -f.X, Y: -f.Y})
		}
	}
}
