// Package palette converts the hue/saturation/brightness values used by the
// scene generators into RGB.
package palette

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/san-kum/kaleido/internal/geom"
)

// Alpha is the opacity every scene primitive is drawn with.
const Alpha = 0.7

// HSBToRGB converts hue in degrees and saturation/brightness in [0,1] to RGB.
// Hue wraps modulo 360; saturation and brightness are clamped.
func HSBToRGB(h, s, b float64) colorful.Color {
	h = WrapHue(h)
	s, b = clamp01(s), clamp01(b)
	if s == 0 {
		return colorful.Color{R: b, G: b, B: b}
	}

	h /= 60
	i := math.Floor(h)
	f := h - i
	p := b * (1 - s)
	q := b * (1 - s*f)
	t := b * (1 - s*(1-f))

	switch i {
	case 0:
		return colorful.Color{R: b, G: t, B: p}
	case 1:
		return colorful.Color{R: q, G: b, B: p}
	case 2:
		return colorful.Color{R: p, G: b, B: t}
	case 3:
		return colorful.Color{R: p, G: q, B: b}
	case 4:
		return colorful.Color{R: t, G: p, B: b}
	default:
		return colorful.Color{R: b, G: p, B: q}
	}
}

// RGBA converts and attaches an alpha.
func RGBA(h, s, b, alpha float64) geom.RGBA {
	return geom.FromColor(HSBToRGB(h, s, b), alpha)
}

// WrapHue maps any finite hue into [0,360).
func WrapHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	// tiny negative inputs round up to exactly 360
	if h >= 360 {
		h = 0
	}
	return h
}

func clamp01(v float64) float64 {
	return math.Min(1, math.Max(0, v))
}
