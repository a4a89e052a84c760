package scene

import (
	"math"

	"github.com/san-kum/kaleido/internal/geom"
	"github.com/san-kum/kaleido/internal/noise"
	"github.com/san-kum/kaleido/internal/palette"
)

const Alpha = palette.Alpha

const (
	radialCount = 4

	vineCount   = 6
	vineSamples = 20 // segments; 21 points
	vineRadius  = 0.05

	blobCount = 25

	sphereDetail = 10
)

// SectorSize is the number of primitives one sector emits.
const SectorSize = radialCount + vineCount*vineSamples + blobCount

// Sector emits the primitives of one angular slice for the current tuning.
func Sector(t Tuning, src noise.Source, emit geom.Emitter) {
	radials(t, emit)
	vines(t, emit)
	blobs(t, src, emit)
}

func hue(v float64) float64 { return math.Mod(v, 360) }

// radials emits thin triangles fanning out from the origin.
func radials(t Tuning, emit geom.Emitter) {
	f := float64(t.Frame)
	for k := 0; k < radialCount; k++ {
		fk := float64(k)
		angle := fk * math.Pi / 8
		length := (1.0 + 0.5*math.Sin(f*0.02+fk)) * t.PulseFactor
		depth := 0.2 * math.Sin(f*0.01+fk)

		tip := geom.Vec3{length * math.Cos(angle), length * math.Sin(angle), depth}
		emit(geom.Primitive{
			Shape: geom.Triangle{V0: geom.Vec3{}, V1: tip, V2: tip.Mul(0.9)},
			Color: palette.RGBA(hue(f*5+fk*90), 0.8, 1.0, Alpha),
		})
	}
}

// VineControls returns the four control points of vine m at frame f.
func VineControls(f float64, m int) (p0, p1, p2, p3 geom.Vec3) {
	fm := float64(m)
	off := fm * 0.2
	p0 = geom.Vec3{0.5 + off, 0, 0}
	p1 = geom.Vec3{
		1.0 + off + 0.2*math.Sin(f*0.03+fm),
		0.5 * math.Cos(f*0.02+fm),
		0.1 * math.Sin(f*0.02+fm),
	}
	p2 = geom.Vec3{
		1.5 + off + 0.3*math.Sin(f*0.04+fm),
		1.0 * math.Cos(f*0.03+fm),
		0.2 * math.Sin(f*0.03+fm),
	}
	p3 = geom.Vec3{2.0 + off, 0, 0}
	return p0, p1, p2, p3
}

// vines emits chains of small spheres along cubic Bezier curves. The last
// sample only closes the final segment and gets no sphere.
func vines(t Tuning, emit geom.Emitter) {
	f := float64(t.Frame)
	for m := 0; m < vineCount; m++ {
		col := palette.RGBA(hue(f*4+float64(m)*60), 0.8, 1.0, Alpha)
		p0, p1, p2, p3 := VineControls(f, m)
		pts := SampleBezier(p0, p1, p2, p3, vineSamples)
		for i := 0; i < len(pts)-1; i++ {
			emit(geom.Primitive{
				Shape: geom.Sphere{Center: pts[i], Radius: vineRadius, Slices: sphereDetail, Stacks: sphereDetail},
				Color: col,
			})
		}
	}
}

// blobs emits spheres along the sector axis whose height and size follow the
// noise field.
func blobs(t Tuning, src noise.Source, emit geom.Emitter) {
	f := float64(t.Frame)
	for j := 0; j < blobCount; j++ {
		fj := float64(j)
		x := 0.2 + fj*0.12
		n := src.Noise2D(x*0.01, f*0.01)
		y := (n - 0.5) * 1.8 * t.PulseFactor
		z := 0.1 * math.Sin(f*0.01+fj)

		emit(geom.Primitive{
			Shape: geom.Sphere{Center: geom.Vec3{x, y, z}, Radius: 0.15 + n*0.4, Slices: sphereDetail, Stacks: sphereDetail},
			Color: palette.RGBA(hue(f*3+fj*14), 0.7, 1.0, Alpha),
		})
	}
}
