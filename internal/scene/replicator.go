package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/san-kum/kaleido/internal/geom"
	"github.com/san-kum/kaleido/internal/noise"
)

// Sectors is the order of the rotational symmetry.
const Sectors = 8

// SectorRotation is the transform of copy i before the world rotation.
func SectorRotation(i int) mgl64.Mat4 {
	return mgl64.HomogRotate3DZ(float64(i) * 2 * math.Pi / Sectors)
}

// Replicate emits Sectors copies of the sector, each rotated by a multiple of
// 45 degrees about the view axis and then by the world Y rotation.
func Replicate(t Tuning, src noise.Source, emit geom.Emitter) {
	world := t.World()
	for i := 0; i < Sectors; i++ {
		Sector(t, src, geom.Through(world.Mul4(SectorRotation(i)), emit))
	}
}
