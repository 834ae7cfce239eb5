package forces_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/particlefield/internal/forces"
	"github.com/san-kum/particlefield/internal/world"
)

var farPointer = world.Vec2{X: 1e9, Y: 1e9}

func pairWorld(a, b world.Vec2, radius float64) (*world.World, *world.Body, *world.Body) {
	w := world.New(1)
	pa := world.NewParticle(a, radius, world.Material{ID: world.ParticleMaterialID})
	pb := world.NewParticle(b, radius, world.Material{ID: world.ParticleMaterialID})
	w.Add(pa)
	w.Add(pb)
	return w, pa, pb
}

var _ = Describe("pairwise attraction", func() {
	var p forces.Params

	BeforeEach(func() {
		p = forces.Defaults()
	})

	It("applies no force to an overlapping pair", func() {
		w, a, b := pairWorld(world.Vec2{}, world.Vec2{X: 2*p.ParticleRadius - 0.01}, p.ParticleRadius)
		forces.Apply(w, farPointer, p)
		Expect(a.Force).To(Equal(world.Vec2{}))
		Expect(b.Force).To(Equal(world.Vec2{}))
	})

	It("applies no force beyond the attraction radius", func() {
		w, a, b := pairWorld(world.Vec2{}, world.Vec2{X: p.AttractionRadius + 0.01}, p.ParticleRadius)
		forces.Apply(w, farPointer, p)
		Expect(a.Force).To(Equal(world.Vec2{}))
		Expect(b.Force).To(Equal(world.Vec2{}))
	})

	It("cancels exactly between the two partners", func() {
		w, a, b := pairWorld(world.Vec2{X: 3, Y: 11}, world.Vec2{X: 97, Y: 53}, p.ParticleRadius)
		forces.Apply(w, farPointer, p)
		// exact negation, not approximate
		Expect(a.Force.X).To(Equal(-b.Force.X))
		Expect(a.Force.Y).To(Equal(-b.Force.Y))
		Expect(a.Force).NotTo(Equal(world.Vec2{}))
	})

	It("matches the inverse-square magnitude at distance 100", func() {
		p.AttractionRadius = 150
		p.AttractionStrength = 25000
		w, a, b := pairWorld(world.Vec2{}, world.Vec2{X: 100}, p.ParticleRadius)
		forces.Apply(w, farPointer, p)

		// 25000 / 100^2 = 2.5, directed along the connecting line
		Expect(a.Force.Len()).To(BeNumerically("~", 2.5, 1e-9))
		Expect(a.Force.X).To(BeNumerically(">", 0))
		Expect(a.Force.Y).To(BeZero())
		Expect(b.Force.X).To(BeNumerically("<", 0))
	})

	It("sums contributions from multiple partners", func() {
		w := world.New(1)
		center := world.NewParticle(world.Vec2{}, 7, world.Material{ID: world.ParticleMaterialID})
		left := world.NewParticle(world.Vec2{X: -100}, 7, world.Material{ID: world.ParticleMaterialID})
		right := world.NewParticle(world.Vec2{X: 100}, 7, world.Material{ID: world.ParticleMaterialID})
		w.Add(center)
		w.Add(left)
		w.Add(right)

		forces.Apply(w, farPointer, forces.Defaults())
		// symmetric pulls cancel on the middle particle
		Expect(center.Force.X).To(BeNumerically("~", 0, 1e-12))
		Expect(center.Force.Y).To(BeZero())
	})
})

var _ = Describe("pointer repulsion", func() {
	var p forces.Params

	BeforeEach(func() {
		p = forces.Defaults()
	})

	forceAt := func(dist float64) world.Vec2 {
		w := world.New(1)
		b := world.NewParticle(world.Vec2{X: dist}, p.ParticleRadius, world.Material{ID: world.ParticleMaterialID})
		w.Add(b)
		forces.Apply(w, world.Vec2{}, p)
		return b.Force
	}

	It("is zero at or beyond the push radius", func() {
		Expect(forceAt(p.PushRadius)).To(Equal(world.Vec2{}))
		Expect(forceAt(p.PushRadius + 50)).To(Equal(world.Vec2{}))
	})

	It("is zero inside the singular core", func() {
		Expect(forceAt(0.5)).To(Equal(world.Vec2{}))
		Expect(forceAt(1.0)).To(Equal(world.Vec2{}))
	})

	It("pushes away from the pointer", func() {
		f := forceAt(40)
		Expect(f.X).To(BeNumerically(">", 0))
		Expect(f.Y).To(BeZero())
	})

	It("scales linearly with the distance falloff", func() {
		p.PushRadius = 80
		// (80-40)/80 = 0.5
		f := forceAt(40)
		Expect(f.Len()).To(BeNumerically("~", 0.5*p.PushStrength, 1e-9))
	})

	It("decreases strictly as distance grows", func() {
		prev := math.Inf(1)
		for d := 2.0; d < p.PushRadius; d += 2 {
			mag := forceAt(d).Len()
			Expect(mag).To(BeNumerically("<", prev),
				"force at distance %v should be below force at %v", d, d-2)
			prev = mag
		}
	})
})

var _ = Describe("parameter validation", func() {
	It("accepts the defaults", func() {
		Expect(forces.Defaults().Validate()).To(Succeed())
	})

	It("rejects a non-positive particle radius", func() {
		p := forces.Defaults()
		p.ParticleRadius = 0
		Expect(p.Validate()).To(MatchError(world.ErrBadRadius))
	})

	It("rejects non-finite strengths", func() {
		p := forces.Defaults()
		p.PushStrength = math.Inf(1)
		Expect(p.Validate()).To(HaveOccurred())

		p = forces.Defaults()
		p.AttractionStrength = math.NaN()
		Expect(p.Validate()).To(HaveOccurred())
	})

	It("rejects negative radii", func() {
		p := forces.Defaults()
		p.AttractionRadius = -1
		Expect(p.Validate()).To(HaveOccurred())
	})
})
