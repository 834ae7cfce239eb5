package sim

import "github.com/san-kum/particlefield/internal/forces"

// Input events arrive asynchronously from the UI collaborator and are
// queued in the simulation's inbox. The inbox is drained exactly once,
// at the start of each frame, so mid-frame state never observes a
// partial update.

type Event interface{ event() }

// PointerMoved updates the repulsion pointer. Last write wins.
type PointerMoved struct {
	X, Y float64
}

// Resized carries the new viewport extent; the boundary walls are
// rebuilt at the start of the next frame.
type Resized struct {
	Width, Height float64
}

// ParamsChanged replaces the force parameters. A particle-radius
// change triggers a full particle rebuild, since per-particle geometry
// is fixed at creation.
type ParamsChanged struct {
	Params forces.Params
}

// CountChanged triggers a full particle rebuild with the new count.
type CountChanged struct {
	Count int
}

// ColorChanged recolors every renderable.
type ColorChanged struct {
	Color string
}

func (PointerMoved) event()  {}
func (Resized) event()       {}
func (ParamsChanged) event() {}
func (CountChanged) event()  {}
func (ColorChanged) event()  {}
