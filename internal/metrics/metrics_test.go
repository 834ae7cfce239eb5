package metrics

import (
	"math"
	"testing"

	"github.com/san-kum/particlefield/internal/world"
)

func makeWorld(vels []world.Vec2) *world.World {
	w := world.New(1)
	mat := world.Material{ID: world.ParticleMaterialID, Friction: 0.2, Restitution: 0.6}
	for i, v := range vels {
		p := world.NewParticle(world.Vec2{X: float64(i) * 20}, 5, mat)
		p.Vel = v
		w.Add(p)
	}
	return w
}

func TestKineticEnergy(t *testing.T) {
	w := makeWorld([]world.Vec2{
		{X: 3, Y: 4},  // speed 5, KE 12.5
		{X: 0, Y: 2},  // KE 2
		{X: -1, Y: 0}, // KE 0.5
	})

	ke := NewKineticEnergy(10)
	ke.OnFrame(w, 0)

	if got, want := ke.Value(), 15.0; math.Abs(got-want) > 1e-9 {
		t.Errorf("kinetic energy = %v, want %v", got, want)
	}
}

func TestKineticEnergyHistoryBounded(t *testing.T) {
	w := makeWorld([]world.Vec2{{X: 1}})
	ke := NewKineticEnergy(3)

	for i := 0; i < 10; i++ {
		ke.OnFrame(w, float64(i))
	}
	if got := len(ke.History()); got != 3 {
		t.Errorf("history length = %d, want 3", got)
	}

	ke.Reset()
	if len(ke.History()) != 0 || ke.Value() != 0 {
		t.Error("reset should clear history and value")
	}
}

func TestKineticEnergyIgnoresWalls(t *testing.T) {
	w := makeWorld(nil)
	wall := world.NewWall(world.Vec2{Y: -100}, world.Vec2{X: 50, Y: 25},
		world.Material{ID: world.WallMaterialID, Restitution: 0.5})
	wall.Vel = world.Vec2{X: 99} // never happens in practice, but must not count
	w.Add(wall)

	ke := NewKineticEnergy(10)
	ke.OnFrame(w, 0)
	if ke.Value() != 0 {
		t.Errorf("kinetic energy = %v, want 0 for wall-only world", ke.Value())
	}
}

func TestMomentum(t *testing.T) {
	// opposite velocities cancel exactly
	w := makeWorld([]world.Vec2{{X: 5, Y: -2}, {X: -5, Y: 2}})

	m := NewMomentum()
	m.OnFrame(w, 0)
	if m.Value() != 0 {
		t.Errorf("momentum = %v, want 0 for balanced pair", m.Value())
	}

	w2 := makeWorld([]world.Vec2{{X: 3, Y: 4}})
	m.OnFrame(w2, 1)
	if got, want := m.Value(), 5.0; math.Abs(got-want) > 1e-9 {
		t.Errorf("momentum = %v, want %v", got, want)
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("reset should zero the value")
	}
}
