// Package world owns the simulated bodies and their physical state.
//
// A [World] holds circular particle bodies and immovable rectangular
// wall bodies, a gravity vector, the broadphase selection used for
// collision candidate pairs, and the registered contact rules between
// material pairs. Particles are created in a batch by [World.Seed] and
// are only ever destroyed all at once, on teardown or on a structural
// rebuild (particle count or radius change).
//
// Whether a body is a particle is explicit state set at creation,
// never inferred from its shape or mass.
package world
