package sparkle_test

import (
	"math"
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/kaleido/internal/geom"
	"github.com/san-kum/kaleido/internal/sparkle"
)

func fixedLifetime(l float64, capacity int) sparkle.Config {
	cfg := sparkle.DefaultConfig()
	cfg.Lifetime = sparkle.Range{Min: l, Max: l}
	cfg.Cap = capacity
	return cfg
}

func tick(s *sparkle.System) []geom.Primitive {
	var out []geom.Primitive
	s.Update(geom.Collect(&out))
	return out
}

var _ = Describe("System", func() {
	var rng *rand.Rand

	BeforeEach(func() {
		rng = rand.New(rand.NewSource(1))
	})

	Describe("population", func() {
		It("grows by exactly one per tick while nothing expires", func() {
			s := sparkle.NewWithConfig(fixedLifetime(1000, sparkle.Cap), rng)
			for n := 1; n <= sparkle.Cap; n++ {
				tick(s)
				Expect(s.Len()).To(Equal(n))
			}
		})

		It("grows one per tick with default lifetimes before the first expiry", func() {
			s := sparkle.New(rng)
			for n := 1; n < 30; n++ {
				tick(s)
				Expect(s.Len()).To(Equal(n))
			}
		})

		It("never exceeds the cap", func() {
			s := sparkle.New(rng)
			for i := 0; i < 2000; i++ {
				Expect(s.Len()).To(BeNumerically("<=", sparkle.Cap))
				before := s.Spawned()
				tick(s)
				Expect(s.Spawned() - before).To(BeNumerically("<=", 1))
				Expect(s.Len()).To(BeNumerically("<=", sparkle.Cap))
			}
		})

		It("stops spawning at the cap", func() {
			s := sparkle.NewWithConfig(fixedLifetime(1000, sparkle.Cap), rng)
			for i := 0; i < 3*sparkle.Cap; i++ {
				tick(s)
			}
			Expect(s.Len()).To(Equal(sparkle.Cap))
			Expect(s.Spawned()).To(BeEquivalentTo(sparkle.Cap))
		})
	})

	Describe("expiry", func() {
		DescribeTable("removes a sparkle at tick ceil(L)",
			func(lifetime float64, last int) {
				s := sparkle.NewWithConfig(fixedLifetime(lifetime, 1), rng)
				for i := 1; i < last; i++ {
					Expect(tick(s)).To(HaveLen(1), "tick %d", i)
				}
				Expect(tick(s)).To(BeEmpty())
				Expect(s.Len()).To(BeZero())
				Expect(s.Spawned()).To(BeEquivalentTo(1))

				// the next tick spawns a replacement, not the old sparkle
				tick(s)
				Expect(s.Spawned()).To(BeEquivalentTo(2))
			},
			Entry("integer lifetime", 5.0, 5),
			Entry("fractional lifetime", 4.5, 5),
			Entry("single tick", 1.0, 1),
		)
	})

	Describe("animation", func() {
		It("grows size and cycles hue each tick", func() {
			s := sparkle.NewWithConfig(fixedLifetime(100, 1), rng)
			tick(s)
			first := s.Live()[0]
			tick(s)
			second := s.Live()[0]

			Expect(second.Size).To(BeNumerically("~", first.Size*sparkle.GrowthRate, 1e-12))
			Expect(second.Hue).To(BeNumerically("~", math.Mod(first.Hue+1, 360), 1e-9))
			Expect(second.Lifetime).To(Equal(first.Lifetime - 1))
		})

		It("keeps hue in [0,360)", func() {
			s := sparkle.NewWithConfig(fixedLifetime(1000, 5), rng)
			for i := 0; i < 800; i++ {
				tick(s)
				for _, sp := range s.Live() {
					Expect(sp.Hue).To(BeNumerically(">=", 0))
					Expect(sp.Hue).To(BeNumerically("<", 360))
				}
			}
		})

		It("emits the sparkle before growing it", func() {
			s := sparkle.NewWithConfig(fixedLifetime(100, 1), rng)
			out := tick(s)
			Expect(out).To(HaveLen(1))
			sphere, ok := out[0].Shape.(geom.Sphere)
			Expect(ok).To(BeTrue())
			Expect(sphere.Radius * sparkle.GrowthRate).To(BeNumerically("~", s.Live()[0].Size, 1e-12))
			Expect(sphere.Slices).To(Equal(8))
			Expect(sphere.Stacks).To(Equal(8))
		})

		It("emits fully saturated, bright, translucent colors", func() {
			s := sparkle.New(rng)
			for i := 0; i < 40; i++ {
				for _, p := range tick(s) {
					c := p.Color
					Expect(c.A).To(Equal(0.7))
					Expect(math.Max(c.R, math.Max(c.G, c.B))).To(BeNumerically("~", 1, 1e-12))
					Expect(math.Min(c.R, math.Min(c.G, c.B))).To(BeNumerically("~", 0, 1e-12))
				}
			}
		})
	})

	Describe("spawning", func() {
		It("draws positions and sizes from the configured ranges", func() {
			cfg := sparkle.DefaultConfig()
			s := sparkle.NewWithConfig(cfg, rng)
			for i := 0; i < 25; i++ {
				tick(s)
			}
			for _, sp := range s.Live() {
				Expect(cfg.X.Contains(sp.Position.X())).To(BeTrue())
				Expect(cfg.Y.Contains(sp.Position.Y())).To(BeTrue())
				Expect(cfg.Z.Contains(sp.Position.Z())).To(BeTrue())
				Expect(sp.Lifetime).To(BeNumerically("<", cfg.Lifetime.Max))
			}
		})

		It("is reproducible for a fixed seed", func() {
			a := sparkle.New(rand.New(rand.NewSource(9)))
			b := sparkle.New(rand.New(rand.NewSource(9)))
			for i := 0; i < 100; i++ {
				Expect(tick(a)).To(Equal(tick(b)))
			}
		})

		It("accepts a nil emitter", func() {
			s := sparkle.New(rng)
			Expect(func() { s.Update(nil) }).NotTo(Panic())
			Expect(s.Len()).To(Equal(1))
		})
	})
})
