package world

import "math"

// Pair is a candidate collision pair produced by the broadphase.
type Pair struct {
	A, B *Body
}

// Pairs returns candidate collision pairs using the selected
// broadphase. Both strategies produce the same pair set for the same
// bodies; only the order may differ.
func (w *World) Pairs() []Pair {
	if w.Broadphase == BroadphaseGrid {
		return w.pairsGrid()
	}
	return w.pairsNaive()
}

func aabbOverlap(a, b *Body) bool {
	aMin, aMax := a.AABB()
	bMin, bMax := b.AABB()
	return aMin.X <= bMax.X && bMin.X <= aMax.X && aMin.Y <= bMax.Y && bMin.Y <= aMax.Y
}

func (w *World) pairsNaive() []Pair {
	var pairs []Pair
	for i := 0; i < len(w.bodies); i++ {
		a := w.bodies[i]
		for j := i + 1; j < len(w.bodies); j++ {
			b := w.bodies[j]
			if a.Static() && b.Static() {
				continue
			}
			if aabbOverlap(a, b) {
				pairs = append(pairs, Pair{a, b})
			}
		}
	}
	return pairs
}

type gridCell struct{ x, y int }

// pairsGrid bins particles into a uniform grid and emits
// particle-particle candidates from each cell and its forward
// neighbors, so no pair appears twice. Walls span entire viewport
// edges and are kept out of the grid; they are tested against every
// particle by AABB directly.
func (w *World) pairsGrid() []Pair {
	cell := w.gridCellSize()
	cells := make(map[gridCell][]*Body)
	for _, p := range w.particles {
		c := gridCell{int(math.Floor(p.Pos.X / cell)), int(math.Floor(p.Pos.Y / cell))}
		cells[c] = append(cells[c], p)
	}

	// forward half of the 8-neighborhood
	offsets := [4]gridCell{{1, 0}, {-1, 1}, {0, 1}, {1, 1}}

	var pairs []Pair
	for c, bin := range cells {
		for i := 0; i < len(bin); i++ {
			for j := i + 1; j < len(bin); j++ {
				if aabbOverlap(bin[i], bin[j]) {
					pairs = append(pairs, Pair{bin[i], bin[j]})
				}
			}
		}
		for _, off := range offsets {
			other := cells[gridCell{c.x + off.x, c.y + off.y}]
			for _, a := range bin {
				for _, b := range other {
					if aabbOverlap(a, b) {
						pairs = append(pairs, Pair{a, b})
					}
				}
			}
		}
	}

	for _, wall := range w.bodies {
		if wall.particle {
			continue
		}
		for _, p := range w.particles {
			if aabbOverlap(wall, p) {
				pairs = append(pairs, Pair{wall, p})
			}
		}
	}
	return pairs
}

func (w *World) gridCellSize() float64 {
	max := 1.0
	for _, p := range w.particles {
		if 2*p.Radius > max {
			max = 2 * p.Radius
		}
	}
	return 2 * max
}
