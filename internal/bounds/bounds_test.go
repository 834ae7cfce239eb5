package bounds

import (
	"testing"

	"github.com/san-kum/particlefield/internal/world"
)

func wallPositions(w *world.World) map[world.Vec2]world.Vec2 {
	walls := make(map[world.Vec2]world.Vec2)
	for _, b := range w.Walls() {
		walls[b.Pos] = b.Half
	}
	return walls
}

func TestRebuild_FourWalls(t *testing.T) {
	w := world.New(1)
	m := New(w, 50)

	if err := m.Rebuild(800, 600); err != nil {
		t.Fatalf("rebuild failed: %v", err)
	}

	walls := w.Walls()
	if len(walls) != 4 {
		t.Fatalf("expected 4 walls, got %d", len(walls))
	}

	want := map[world.Vec2]world.Vec2{
		{X: 0, Y: 325}:  {X: 400, Y: 25}, // top
		{X: 0, Y: -325}: {X: 400, Y: 25}, // bottom
		{X: -425, Y: 0}: {X: 25, Y: 300}, // left
		{X: 425, Y: 0}:  {X: 25, Y: 300}, // right
	}
	got := wallPositions(w)
	for pos, half := range want {
		gh, ok := got[pos]
		if !ok {
			t.Errorf("no wall at %v", pos)
			continue
		}
		if gh != half {
			t.Errorf("wall at %v has half-extent %v, want %v", pos, gh, half)
		}
	}

	for _, b := range walls {
		if !b.Static() {
			t.Error("wall is not immovable")
		}
		if b.IsParticle() {
			t.Error("wall flagged as particle")
		}
	}
}

func TestRebuild_Idempotent(t *testing.T) {
	w := world.New(1)
	m := New(w, 50)

	if err := m.Rebuild(800, 600); err != nil {
		t.Fatal(err)
	}
	first := wallPositions(w)

	if err := m.Rebuild(800, 600); err != nil {
		t.Fatal(err)
	}
	second := wallPositions(w)

	if len(second) != 4 {
		t.Fatalf("expected 4 walls after second rebuild, got %d", len(second))
	}
	for pos, half := range first {
		if second[pos] != half {
			t.Errorf("wall at %v changed between identical rebuilds", pos)
		}
	}
}

func TestRebuild_Resize(t *testing.T) {
	w := world.New(3)
	if err := w.Seed(50, 7, 800, 600, 0, 0, world.Material{ID: world.ParticleMaterialID}); err != nil {
		t.Fatal(err)
	}
	positions := make([]world.Vec2, 0, 50)
	for _, p := range w.Particles() {
		positions = append(positions, p.Pos)
	}

	m := New(w, 50)
	if err := m.Rebuild(800, 600); err != nil {
		t.Fatal(err)
	}
	if err := m.Rebuild(1200, 800); err != nil {
		t.Fatal(err)
	}

	walls := wallPositions(w)
	if len(walls) != 4 {
		t.Fatalf("expected exactly 4 walls after resize, got %d", len(walls))
	}
	for _, pos := range []world.Vec2{{X: 0, Y: 425}, {X: 0, Y: -425}, {X: -625, Y: 0}, {X: 625, Y: 0}} {
		if _, ok := walls[pos]; !ok {
			t.Errorf("no wall at %v after resize", pos)
		}
	}

	if len(w.Particles()) != 50 {
		t.Fatalf("resize changed particle count to %d", len(w.Particles()))
	}
	for i, p := range w.Particles() {
		if p.Pos != positions[i] {
			t.Errorf("resize moved particle %d from %v to %v", i, positions[i], p.Pos)
		}
	}
}

func TestRebuild_BadExtent(t *testing.T) {
	m := New(world.New(1), 50)
	if err := m.Rebuild(0, 600); err != world.ErrBadExtent {
		t.Errorf("got %v, want ErrBadExtent", err)
	}
	if err := m.Rebuild(800, -1); err != world.ErrBadExtent {
		t.Errorf("got %v, want ErrBadExtent", err)
	}
}

func TestRebuild_RegistersContactOnce(t *testing.T) {
	w := world.New(1)
	m := New(w, 50)
	if err := m.Rebuild(800, 600); err != nil {
		t.Fatal(err)
	}
	if err := m.Rebuild(1200, 800); err != nil {
		t.Fatal(err)
	}

	c := w.ContactFor(
		world.Material{ID: world.ParticleMaterialID, Friction: 0.9, Restitution: 0.9},
		world.Material{ID: world.WallMaterialID, Friction: 0.9, Restitution: 0.9},
	)
	// registered rule wins over the material mix
	if c.Friction != 0 || c.Restitution != 0.5 {
		t.Errorf("contact = %+v, want registered friction 0 restitution 0.5", c)
	}
}
