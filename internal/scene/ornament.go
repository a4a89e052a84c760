package scene

import (
	"math"

	"github.com/san-kum/kaleido/internal/geom"
	"github.com/san-kum/kaleido/internal/palette"
)

const ornamentDetail = 20

// Ornament emits the pulsing sphere at the center of the pattern.
func Ornament(t Tuning, emit geom.Emitter) {
	f := float64(t.Frame)
	radius := 0.5 + 0.2*math.Sin(f*0.03)*t.PulseFactor
	emit(geom.Primitive{
		Shape: geom.Sphere{Radius: radius, Slices: ornamentDetail, Stacks: ornamentDetail},
		Color: palette.RGBA(hue(f*6), 0.8, 1.0, Alpha),
	})
}
