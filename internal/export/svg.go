// Package export writes frames in formats that outlive the process.
package export

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/san-kum/kaleido/internal/geom"
	"github.com/san-kum/kaleido/internal/projection"
)

type shape struct {
	depth float64
	svg   string
}

// FrameToSVG projects prims for a width x height image and writes them as SVG
// circles and polygons, farthest first.
func FrameToSVG(w io.Writer, prims []geom.Primitive, width, height int, bg colorful.Color) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("export: invalid image size %dx%d", width, height)
	}
	proj, err := projection.Setup(projection.Default(width, height), nil)
	if err != nil {
		return err
	}
	vp := projection.NewViewport(proj, width, height)

	shapes := make([]shape, 0, len(prims))
	for _, p := range prims {
		switch s := p.Shape.(type) {
		case geom.Sphere:
			c, ok := vp.Project(s.Center)
			if !ok || !projection.Visible(c.Z) {
				continue
			}
			r := vp.Scale(math.Abs(s.Radius), c.W)
			shapes = append(shapes, shape{c.Z, fmt.Sprintf(
				`<circle cx="%.2f" cy="%.2f" r="%.2f" %s/>`, c.X, c.Y, r, fill(p.Color))})
		case geom.Triangle:
			a, okA := vp.Project(s.V0)
			b, okB := vp.Project(s.V1)
			d, okD := vp.Project(s.V2)
			if !okA || !okB || !okD {
				continue
			}
			z := (a.Z + b.Z + d.Z) / 3
			if !projection.Visible(z) {
				continue
			}
			shapes = append(shapes, shape{z, fmt.Sprintf(
				`<polygon points="%.2f,%.2f %.2f,%.2f %.2f,%.2f" %s/>`,
				a.X, a.Y, b.X, b.Y, d.X, d.Y, fill(p.Color))})
		}
	}

	// painter's order; emission order breaks ties so blending matches
	sort.SliceStable(shapes, func(i, j int) bool {
		return shapes[i].depth > shapes[j].depth
	})

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, bg.Clamped().Hex()))
	for _, s := range shapes {
		sb.WriteString(s.svg)
		sb.WriteByte('\n')
	}
	sb.WriteString("</svg>\n")

	_, err = io.WriteString(w, sb.String())
	return err
}

func fill(c geom.RGBA) string {
	return fmt.Sprintf(`fill="%s" fill-opacity="%.2f"`, c.Color().Clamped().Hex(), c.A)
}
