// Package metrics provides frame observers over the particle world.
package metrics

import (
	"math"

	"github.com/san-kum/particlefield/internal/world"
)

// Metric observes the world each frame and reduces to one value.
type Metric interface {
	Name() string
	OnFrame(w *world.World, t float64)
	Value() float64
	Reset()
}

// KineticEnergy tracks the total kinetic energy of the particles and
// keeps a bounded history for sparkline rendering.
type KineticEnergy struct {
	name    string
	last    float64
	history []float64
	keep    int
}

func NewKineticEnergy(keep int) *KineticEnergy {
	if keep <= 0 {
		keep = 120
	}
	return &KineticEnergy{name: "kinetic_energy", keep: keep}
}

func (k *KineticEnergy) Name() string { return k.name }

func (k *KineticEnergy) OnFrame(w *world.World, t float64) {
	ke := 0.0
	for _, p := range w.Particles() {
		ke += 0.5 * p.Mass * p.Vel.LenSq()
	}
	k.last = ke
	k.history = append(k.history, ke)
	if len(k.history) > k.keep {
		k.history = k.history[len(k.history)-k.keep:]
	}
}

func (k *KineticEnergy) Value() float64 { return k.last }

// History returns the retained per-frame values, oldest first.
func (k *KineticEnergy) History() []float64 { return k.history }

func (k *KineticEnergy) Reset() {
	k.last = 0
	k.history = k.history[:0]
}

// Momentum tracks the magnitude of the total linear momentum.
type Momentum struct {
	name string
	last float64
}

func NewMomentum() *Momentum {
	return &Momentum{name: "momentum"}
}

func (m *Momentum) Name() string { return m.name }

func (m *Momentum) OnFrame(w *world.World, t float64) {
	var px, py float64
	for _, p := range w.Particles() {
		px += p.Mass * p.Vel.X
		py += p.Mass * p.Vel.Y
	}
	m.last = math.Sqrt(px*px + py*py)
}

func (m *Momentum) Value() float64 { return m.last }

func (m *Momentum) Reset() { m.last = 0 }
