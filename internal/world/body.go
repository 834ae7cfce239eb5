package world

// Material identifies a surface class and its base collision response.
// Contact rules registered on the World override the mixed response
// for a specific pair of material IDs.
type Material struct {
	ID          int
	Friction    float64
	Restitution float64
}

// Material IDs used by the simulation. Walls and particles carry
// distinct IDs so a contact rule can target the pair.
const (
	ParticleMaterialID = 1
	WallMaterialID     = 2
)

type Body struct {
	Pos    Vec2
	Vel    Vec2
	Force  Vec2 // per-frame accumulator, cleared by the stepper
	Angle  float64
	AngVel float64

	Mass    float64
	InvMass float64 // 0 for immovable bodies
	Inertia float64
	InvI    float64

	// Radius is set for particles, Half for walls.
	Radius float64
	Half   Vec2

	LinearDamping  float64 // [0,1)
	AngularDamping float64 // [0,1)
	Mat            Material

	particle bool
}

// NewParticle returns a dynamic circular body of mass 1.
func NewParticle(pos Vec2, radius float64, mat Material) *Body {
	// disc inertia: m r^2 / 2
	inertia := 0.5 * radius * radius
	return &Body{
		Pos:     pos,
		Mass:    1,
		InvMass: 1,
		Inertia: inertia,
		InvI:    1 / inertia,
		Radius:  radius,
		Mat:     mat,

		particle: true,
	}
}

// NewWall returns an immovable axis-aligned box body.
func NewWall(pos, half Vec2, mat Material) *Body {
	return &Body{
		Pos:  pos,
		Half: half,
		Mat:  mat,
	}
}

func (b *Body) IsParticle() bool { return b.particle }

func (b *Body) Static() bool { return b.InvMass == 0 }

// ApplyForce adds to the frame's force accumulator.
func (b *Body) ApplyForce(f Vec2) {
	b.Force = b.Force.Add(f)
}

// ApplyImpulse changes velocity immediately. r is the offset from the
// body center to the contact point; it feeds the angular response.
func (b *Body) ApplyImpulse(j, r Vec2) {
	if b.Static() {
		return
	}
	b.Vel = b.Vel.Add(j.Scale(b.InvMass))
	b.AngVel += b.InvI * r.Cross(j)
}

// AABB returns the axis-aligned bounds of the body.
func (b *Body) AABB() (min, max Vec2) {
	if b.particle {
		r := Vec2{b.Radius, b.Radius}
		return b.Pos.Sub(r), b.Pos.Add(r)
	}
	return b.Pos.Sub(b.Half), b.Pos.Add(b.Half)
}
