package sim

import "github.com/san-kum/particlefield/internal/world"

// Renderable is the caller-facing drawing record for one particle.
// The renderable list and the particle store are parallel,
// index-aligned collections for the life of a run; any count rebuild
// replaces both together.
type Renderable struct {
	X, Y  float64
	Angle float64
	Color string
}

// Scheduler is the "invoke me before the next frame" primitive
// provided by the rendering collaborator.
type Scheduler interface {
	Request(fn func(now float64)) Handle
}

// Handle cancels a pending frame request. Cancel after delivery is a
// no-op.
type Handle interface {
	Cancel()
}

// Observer is notified after each completed frame.
type Observer interface {
	OnFrame(w *world.World, t float64)
}

// State is the simulation lifecycle. Disposed is terminal.
type State int

const (
	Uninitialized State = iota
	Running
	Disposed
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Running:
		return "running"
	case Disposed:
		return "disposed"
	}
	return "unknown"
}
