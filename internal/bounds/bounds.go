// Package bounds maintains the four static wall bodies enclosing the
// viewport.
package bounds

import "github.com/san-kum/particlefield/internal/world"

// DefaultThickness is the wall thickness in world units.
const DefaultThickness = 50.0

var wallMaterial = world.Material{
	ID:          world.WallMaterialID,
	Friction:    0,
	Restitution: 0.5,
}

// Manager rebuilds the enclosure whenever the viewport extent changes.
// Walls are never mutated in place: a rebuild removes all four and
// creates four new ones.
type Manager struct {
	w          *world.World
	thickness  float64
	registered bool
}

func New(w *world.World, thickness float64) *Manager {
	if thickness <= 0 {
		thickness = DefaultThickness
	}
	return &Manager{w: w, thickness: thickness}
}

func (m *Manager) Thickness() float64 { return m.thickness }

// Rebuild replaces the enclosure around a width x height viewport
// centered on the origin. Inset by their thickness, the four walls
// exactly border the viewport rectangle. Idempotent for identical
// dimensions. The particle/wall contact rule is registered once,
// not per rebuild.
func (m *Manager) Rebuild(width, height float64) error {
	if width <= 0 || height <= 0 {
		return world.ErrBadExtent
	}

	m.w.RemoveWalls()

	hw, hh := width/2, height/2
	t := m.thickness
	ht := t / 2

	// top, bottom, left, right
	m.w.Add(world.NewWall(world.Vec2{X: 0, Y: hh + ht}, world.Vec2{X: hw, Y: ht}, wallMaterial))
	m.w.Add(world.NewWall(world.Vec2{X: 0, Y: -hh - ht}, world.Vec2{X: hw, Y: ht}, wallMaterial))
	m.w.Add(world.NewWall(world.Vec2{X: -hw - ht, Y: 0}, world.Vec2{X: ht, Y: hh}, wallMaterial))
	m.w.Add(world.NewWall(world.Vec2{X: hw + ht, Y: 0}, world.Vec2{X: ht, Y: hh}, wallMaterial))

	if !m.registered {
		m.w.RegisterContact(world.ParticleMaterialID, world.WallMaterialID, world.Contact{
			Friction:    0,
			Restitution: 0.5,
		})
		m.registered = true
	}
	return nil
}
