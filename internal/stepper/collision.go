package stepper

import (
	"math"

	"github.com/san-kum/particlefield/internal/world"
)

// manifold describes one contact: the unit normal points from a to b.
type manifold struct {
	a, b        *world.Body
	normal      world.Vec2
	penetration float64
	contact     world.Vec2
}

func collide(a, b *world.Body) (manifold, bool) {
	switch {
	case a.IsParticle() && b.IsParticle():
		return collideCircles(a, b)
	case a.IsParticle():
		return collideCircleBox(a, b)
	case b.IsParticle():
		return collideCircleBox(b, a)
	}
	return manifold{}, false
}

func collideCircles(a, b *world.Body) (manifold, bool) {
	delta := b.Pos.Sub(a.Pos)
	total := a.Radius + b.Radius
	distSq := delta.LenSq()
	if distSq >= total*total {
		return manifold{}, false
	}

	dist := math.Sqrt(distSq)
	normal := world.Vec2{X: 1}
	if dist > 0 {
		normal = delta.Scale(1 / dist)
	}
	pen := total - dist
	return manifold{
		a:           a,
		b:           b,
		normal:      normal,
		penetration: pen,
		contact:     a.Pos.Add(normal.Scale(a.Radius - pen/2)),
	}, true
}

// collideCircleBox tests a circle against an axis-aligned box. The
// manifold is always (a=circle, b=box) with the normal pointing from
// circle to box, regardless of the order the pair arrived in.
func collideCircleBox(circle, box *world.Body) (manifold, bool) {
	closest := world.Vec2{
		X: math.Max(box.Pos.X-box.Half.X, math.Min(circle.Pos.X, box.Pos.X+box.Half.X)),
		Y: math.Max(box.Pos.Y-box.Half.Y, math.Min(circle.Pos.Y, box.Pos.Y+box.Half.Y)),
	}

	delta := closest.Sub(circle.Pos)
	distSq := delta.LenSq()
	if distSq >= circle.Radius*circle.Radius {
		return manifold{}, false
	}

	dist := math.Sqrt(distSq)
	var normal world.Vec2
	pen := circle.Radius - dist
	if dist > 0 {
		normal = delta.Scale(1 / dist)
	} else {
		// center inside the box: push out along the axis of least
		// separation from a face
		dx := box.Half.X - math.Abs(circle.Pos.X-box.Pos.X)
		dy := box.Half.Y - math.Abs(circle.Pos.Y-box.Pos.Y)
		if dx < dy {
			normal = world.Vec2{X: math.Copysign(1, box.Pos.X-circle.Pos.X)}
			pen = dx + circle.Radius
		} else {
			normal = world.Vec2{Y: math.Copysign(1, box.Pos.Y-circle.Pos.Y)}
			pen = dy + circle.Radius
		}
	}

	return manifold{
		a:           circle,
		b:           box,
		normal:      normal,
		penetration: pen,
		contact:     closest,
	}, true
}

// resolve applies an impulse along the contact normal with the pair's
// restitution, a friction impulse along the tangent, and positional
// correction so resting contacts do not sink.
func resolve(m manifold, c world.Contact) {
	a, b := m.a, m.b
	invMassSum := a.InvMass + b.InvMass
	if invMassSum == 0 {
		return
	}

	rel := b.Vel.Sub(a.Vel)
	velAlongNormal := rel.Dot(m.normal)
	if velAlongNormal > 0 {
		return // separating
	}

	j := -(1 + c.Restitution) * velAlongNormal / invMassSum
	impulse := m.normal.Scale(j)

	ra := m.contact.Sub(a.Pos)
	rb := m.contact.Sub(b.Pos)
	a.ApplyImpulse(impulse.Scale(-1), ra)
	b.ApplyImpulse(impulse, rb)

	applyFriction(m, c, j, ra, rb)
	correctPositions(m, invMassSum)
}

func applyFriction(m manifold, c world.Contact, normalImpulse float64, ra, rb world.Vec2) {
	if c.Friction == 0 {
		return
	}
	a, b := m.a, m.b

	rel := b.Vel.Sub(a.Vel)
	tangent := rel.Sub(m.normal.Scale(rel.Dot(m.normal)))
	if tangent.LenSq() < 1e-8 {
		return
	}
	tangent = tangent.Normalize()

	jt := -rel.Dot(tangent) / (a.InvMass + b.InvMass)

	// Coulomb clamp
	maxFriction := math.Abs(normalImpulse) * c.Friction
	if math.Abs(jt) > maxFriction {
		jt = math.Copysign(maxFriction, jt)
	}

	fi := tangent.Scale(jt)
	a.ApplyImpulse(fi.Scale(-1), ra)
	b.ApplyImpulse(fi, rb)
}

const (
	correctionPercent = 0.4
	correctionSlop    = 0.01
)

func correctPositions(m manifold, invMassSum float64) {
	if m.penetration <= correctionSlop {
		return
	}
	correction := (m.penetration - correctionSlop) / invMassSum * correctionPercent
	cv := m.normal.Scale(correction)

	if !m.a.Static() {
		m.a.Pos = m.a.Pos.Sub(cv.Scale(m.a.InvMass))
	}
	if !m.b.Static() {
		m.b.Pos = m.b.Pos.Add(cv.Scale(m.b.InvMass))
	}
}
