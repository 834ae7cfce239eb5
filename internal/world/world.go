package world

import (
	"math"
	"math/rand"
)

// Broadphase selects the collision candidate-pair strategy.
type Broadphase int

const (
	BroadphaseNaive Broadphase = iota
	BroadphaseGrid
)

// Contact is a registered friction/restitution rule for a material
// pair, overriding the default mix of the two body materials.
type Contact struct {
	Friction    float64
	Restitution float64
}

type World struct {
	Gravity    Vec2
	Broadphase Broadphase

	bodies    []*Body
	particles []*Body
	contacts  map[[2]int]Contact
	rng       *rand.Rand
}

func New(seed int64) *World {
	return &World{
		contacts: make(map[[2]int]Contact),
		rng:      rand.New(rand.NewSource(seed)),
	}
}

func (w *World) Add(b *Body) {
	w.bodies = append(w.bodies, b)
	if b.particle {
		w.particles = append(w.particles, b)
	}
}

func (w *World) Bodies() []*Body { return w.bodies }

// Particles returns the particle bodies in creation order. The slice
// is the store's own; callers must not reorder it.
func (w *World) Particles() []*Body { return w.particles }

// Seed batch-creates n particles placed at a uniformly random angle
// and an area-uniform random distance from the enclosure center, up
// to 0.8x the smaller half-extent. mat applies to every particle.
func (w *World) Seed(n int, radius, width, height float64, damping, angularDamping float64, mat Material) error {
	if n < 0 {
		return ErrBadCount
	}
	if radius <= 0 {
		return ErrBadRadius
	}
	if width <= 0 || height <= 0 {
		return ErrBadExtent
	}

	maxDist := 0.8 * math.Min(width/2, height/2)
	for i := 0; i < n; i++ {
		angle := w.rng.Float64() * 2 * math.Pi
		dist := maxDist * math.Sqrt(w.rng.Float64())
		pos := Vec2{dist * math.Cos(angle), dist * math.Sin(angle)}

		b := NewParticle(pos, radius, mat)
		b.LinearDamping = damping
		b.AngularDamping = angularDamping
		w.Add(b)
	}
	return nil
}

// RemoveParticles discards every particle body. Walls survive.
func (w *World) RemoveParticles() {
	kept := w.bodies[:0]
	for _, b := range w.bodies {
		if !b.particle {
			kept = append(kept, b)
		}
	}
	w.bodies = kept
	w.particles = w.particles[:0]
}

// RemoveWalls discards every non-particle body. Particles survive.
func (w *World) RemoveWalls() {
	kept := w.bodies[:0]
	for _, b := range w.bodies {
		if b.particle {
			kept = append(kept, b)
		}
	}
	w.bodies = kept
}

// Walls returns the non-particle bodies.
func (w *World) Walls() []*Body {
	var walls []*Body
	for _, b := range w.bodies {
		if !b.particle {
			walls = append(walls, b)
		}
	}
	return walls
}

func contactKey(a, b int) [2]int {
	if a > b {
		a, b = b, a
	}
	return [2]int{a, b}
}

// RegisterContact installs a contact rule for the material pair if one
// is not already present. Repeat registrations are no-ops.
func (w *World) RegisterContact(a, b int, c Contact) {
	k := contactKey(a, b)
	if _, ok := w.contacts[k]; ok {
		return
	}
	w.contacts[k] = c
}

// ContactFor returns the registered rule for a material pair, or the
// default mix (min restitution, geometric-mean friction) of the two
// body materials.
func (w *World) ContactFor(a, b Material) Contact {
	if c, ok := w.contacts[contactKey(a.ID, b.ID)]; ok {
		return c
	}
	return Contact{
		Friction:    math.Sqrt(a.Friction * b.Friction),
		Restitution: math.Min(a.Restitution, b.Restitution),
	}
}
