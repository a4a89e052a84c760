// Package noise provides the coherent noise used to jitter sphere placement
// smoothly across frames.
package noise

import (
	"github.com/aquilax/go-perlin"
)

const (
	alpha   = 2.0
	beta    = 2.0
	octaves = 1
)

// Source is a smooth 2D noise function, deterministic for a given seed.
type Source interface {
	Noise2D(x, y float64) float64
}

type Perlin struct {
	p    *perlin.Perlin
	seed int64
}

// New returns single-octave Perlin noise for seed.
func New(seed int64) *Perlin {
	return &Perlin{
		p:    perlin.NewPerlin(alpha, beta, octaves, seed),
		seed: seed,
	}
}

// Seed returns the seed the noise was built from.
func (n *Perlin) Seed() int64 { return n.seed }

// Noise2D returns gradient noise, roughly in [-1,1] and zero on lattice points.
func (n *Perlin) Noise2D(x, y float64) float64 {
	return n.p.Noise2D(x, y)
}

// Func adapts a plain function into a Source.
type Func func(x, y float64) float64

func (f Func) Noise2D(x, y float64) float64 { return f(x, y) }
