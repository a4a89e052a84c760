// Package sparkle runs the population of short-lived, growing,
// color-cycling points scattered around the kaleidoscope.
package sparkle

import (
	"math/rand"

	"github.com/san-kum/kaleido/internal/geom"
	"github.com/san-kum/kaleido/internal/palette"
)

const (
	// Cap is the default population limit.
	Cap = 50

	GrowthRate = 1.02
	HueStep    = 1.0

	detail = 8
)

// Sparkle is one live particle. Lifetime counts down in ticks.
type Sparkle struct {
	Position geom.Vec3
	Size     float64
	Lifetime float64
	Hue      float64
}

type Range struct {
	Min, Max float64
}

func (r Range) sample(rng *rand.Rand) float64 {
	return r.Min + (r.Max-r.Min)*rng.Float64()
}

func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Config sets the population limit and the spawn distributions.
type Config struct {
	Cap      int
	X, Y, Z  Range
	Size     Range
	Lifetime Range
}

func DefaultConfig() Config {
	return Config{
		Cap:      Cap,
		X:        Range{-5, 5},
		Y:        Range{-5, 5},
		Z:        Range{-1, 1},
		Size:     Range{0.05, 0.2},
		Lifetime: Range{30, 60},
	}
}

// System owns the live sparkles. It is not safe for concurrent use.
type System struct {
	cfg     Config
	rng     *rand.Rand
	live    []Sparkle
	spawned uint64
}

// New returns an empty system with the default configuration.
func New(rng *rand.Rand) *System {
	return NewWithConfig(DefaultConfig(), rng)
}

func NewWithConfig(cfg Config, rng *rand.Rand) *System {
	if cfg.Cap <= 0 {
		cfg.Cap = Cap
	}
	return &System{
		cfg:  cfg,
		rng:  rng,
		live: make([]Sparkle, 0, cfg.Cap),
	}
}

// Update runs one tick: spawn one sparkle if under the cap, then age every
// sparkle, drop the expired ones and emit the rest before they grow and shift
// hue. emit may be nil.
func (s *System) Update(emit geom.Emitter) {
	if len(s.live) < s.cfg.Cap {
		s.live = append(s.live, s.spawn())
	}

	n := 0
	for _, sp := range s.live {
		sp.Lifetime--
		if sp.Lifetime <= 0 {
			continue
		}
		if emit != nil {
			emit(geom.Primitive{
				Shape: geom.Sphere{Center: sp.Position, Radius: sp.Size, Slices: detail, Stacks: detail},
				Color: palette.RGBA(sp.Hue, 1.0, 1.0, palette.Alpha),
			})
		}
		sp.Size *= GrowthRate
		sp.Hue = palette.WrapHue(sp.Hue + HueStep)
		s.live[n] = sp
		n++
	}
	s.live = s.live[:n]
}

func (s *System) spawn() Sparkle {
	s.spawned++
	return Sparkle{
		Position: geom.Vec3{
			s.cfg.X.sample(s.rng),
			s.cfg.Y.sample(s.rng),
			s.cfg.Z.sample(s.rng),
		},
		Size:     s.cfg.Size.sample(s.rng),
		Lifetime: s.cfg.Lifetime.sample(s.rng),
		Hue:      s.rng.Float64() * 360,
	}
}

// Len is the live population.
func (s *System) Len() int { return len(s.live) }

// Spawned counts sparkles created since construction.
func (s *System) Spawned() uint64 { return s.spawned }

func (s *System) Config() Config { return s.cfg }

// Live returns a copy of the live set.
func (s *System) Live() []Sparkle {
	out := make([]Sparkle, len(s.live))
	copy(out, s.live)
	return out
}
