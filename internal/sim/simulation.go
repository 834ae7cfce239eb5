// Package sim orchestrates the per-frame loop: drain input, apply
// forces, step physics, sync renderables, request the next frame.
package sim

import (
	"fmt"
	"sync"

	"github.com/san-kum/particlefield/internal/bounds"
	"github.com/san-kum/particlefield/internal/config"
	"github.com/san-kum/particlefield/internal/forces"
	"github.com/san-kum/particlefield/internal/stepper"
	"github.com/san-kum/particlefield/internal/world"
)

var particleMaterial = world.Material{
	ID: world.ParticleMaterialID,
}

// Simulation is the owned aggregate of all mutable run state. All
// mutation happens inside Advance, which the scheduler invokes once
// per display frame; only Post may be called from other goroutines.
type Simulation struct {
	cfg    *config.Config
	state  State
	params forces.Params
	color  string

	world   *world.World
	bnds    *bounds.Manager
	step    *stepper.Stepper
	pointer world.Vec2

	width, height float64
	lastTime      float64
	started       bool // timestamp history exists

	renderables []Renderable
	observers   []Observer

	sched  Scheduler
	handle Handle

	mu    sync.Mutex
	inbox []Event
}

// New validates cfg and returns an Uninitialized simulation.
func New(cfg *config.Config) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Simulation{
		cfg:    cfg,
		params: cfg.ForceParams(),
		color:  cfg.Color,
		// park the pointer far outside any plausible push radius
		// until the first real pointer event arrives
		pointer: world.Vec2{X: 1e9, Y: 1e9},
	}, nil
}

func (s *Simulation) State() State { return s.state }

// Renderables returns the index-aligned drawing records. Valid to read
// between frames; the slice is replaced only by a count rebuild.
func (s *Simulation) Renderables() []Renderable { return s.renderables }

func (s *Simulation) Params() forces.Params { return s.params }

func (s *Simulation) AddObserver(o Observer) {
	s.observers = append(s.observers, o)
}

// Post queues an input event for the next frame. Safe to call from any
// goroutine; events posted after disposal are dropped.
func (s *Simulation) Post(ev Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == Disposed {
		return
	}
	s.inbox = append(s.inbox, ev)
}

// Start transitions Uninitialized -> Running: builds the world, seeds
// particles, erects the boundary walls at the current viewport, and
// requests the first frame.
func (s *Simulation) Start(sched Scheduler, width, height float64) error {
	if s.state != Uninitialized {
		return fmt.Errorf("sim: start from %s state", s.state)
	}

	w := world.New(s.cfg.Seed)
	w.Broadphase = s.cfg.BroadphaseMode()

	mat := particleMaterial
	mat.Friction = s.cfg.Friction
	mat.Restitution = s.cfg.Restitution
	if err := w.Seed(s.cfg.Particles, s.params.ParticleRadius, width, height,
		s.cfg.LinearDamping, s.cfg.AngularDamping, mat); err != nil {
		return err
	}

	b := bounds.New(w, s.cfg.Thickness)
	if err := b.Rebuild(width, height); err != nil {
		return err
	}

	s.world = w
	s.bnds = b
	s.step = stepper.New(w)
	s.width, s.height = width, height
	s.renderables = make([]Renderable, s.cfg.Particles)
	for i := range s.renderables {
		s.renderables[i].Color = s.color
	}
	s.syncRenderables()

	s.state = Running
	s.sched = sched
	s.requestNext()
	return nil
}

// Advance runs one frame at the given monotonic timestamp (seconds).
// A stale callback delivered after disposal does no work.
func (s *Simulation) Advance(now float64) {
	if s.state != Running {
		return
	}
	s.handle = nil

	s.drainInbox()

	// construction may have been torn down by a queued event; skip
	// the frame rather than fail, the loop self-corrects
	if s.world == nil || s.width <= 0 || s.height <= 0 {
		s.requestNext()
		return
	}

	dt := stepper.DefaultDt
	if s.started {
		dt = now - s.lastTime
	}
	s.started = true
	s.lastTime = now

	forces.Apply(s.world, s.pointer, s.params)
	s.step.Step(dt)
	s.syncRenderables()

	for _, o := range s.observers {
		o.OnFrame(s.world, now)
	}

	s.requestNext()
}

// Dispose transitions to the terminal state: the pending frame request
// is cancelled first, then resources are released. Any frame callback
// already in flight becomes a no-op via the state check in Advance.
func (s *Simulation) Dispose() {
	if s.state == Disposed {
		return
	}
	if s.handle != nil {
		s.handle.Cancel()
		s.handle = nil
	}
	s.mu.Lock()
	s.state = Disposed
	s.inbox = nil
	s.mu.Unlock()
	s.world = nil
	s.bnds = nil
	s.step = nil
	s.renderables = nil
	s.observers = nil
}

func (s *Simulation) requestNext() {
	if s.sched == nil || s.state != Running {
		return
	}
	s.handle = s.sched.Request(s.Advance)
}

func (s *Simulation) drainInbox() {
	s.mu.Lock()
	events := s.inbox
	s.inbox = nil
	s.mu.Unlock()

	for _, ev := range events {
		switch ev := ev.(type) {
		case PointerMoved:
			s.pointer = world.Vec2{X: ev.X, Y: ev.Y}
		case Resized:
			if s.bnds != nil && ev.Width > 0 && ev.Height > 0 {
				s.width, s.height = ev.Width, ev.Height
				s.bnds.Rebuild(ev.Width, ev.Height)
			}
		case ParamsChanged:
			if ev.Params.Validate() != nil {
				continue
			}
			rebuild := ev.Params.ParticleRadius != s.params.ParticleRadius
			s.params = ev.Params
			if rebuild {
				s.rebuildParticles(len(s.renderables))
			}
		case CountChanged:
			if ev.Count >= 0 {
				s.rebuildParticles(ev.Count)
			}
		case ColorChanged:
			s.color = ev.Color
			for i := range s.renderables {
				s.renderables[i].Color = ev.Color
			}
		}
	}
}

// rebuildParticles discards and recreates the particle store and the
// renderable list together, so the caller never observes the two
// collections out of step.
func (s *Simulation) rebuildParticles(n int) {
	if s.world == nil {
		return
	}
	s.world.RemoveParticles()

	mat := particleMaterial
	mat.Friction = s.cfg.Friction
	mat.Restitution = s.cfg.Restitution
	if err := s.world.Seed(n, s.params.ParticleRadius, s.width, s.height,
		s.cfg.LinearDamping, s.cfg.AngularDamping, mat); err != nil {
		return
	}

	s.renderables = make([]Renderable, n)
	for i := range s.renderables {
		s.renderables[i].Color = s.color
	}
	s.syncRenderables()
}

// syncRenderables copies particle kinematics into the renderable at
// the same index. It never reorders, inserts, or drops entries.
func (s *Simulation) syncRenderables() {
	particles := s.world.Particles()
	for i, p := range particles {
		if i >= len(s.renderables) {
			break
		}
		s.renderables[i].X = p.Pos.X
		s.renderables[i].Y = p.Pos.Y
		s.renderables[i].Angle = p.Angle
	}
}
