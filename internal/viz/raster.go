package viz

import (
	"math"

	"github.com/san-kum/kaleido/internal/geom"
	"github.com/san-kum/kaleido/internal/projection"
)

// Spheres never shrink below one pixel.
const minPixelRadius = 0.5

// Rasterizer draws primitives onto a Canvas using the same projection and
// view as the window host.
type Rasterizer struct {
	Projection projection.Projection
	view       projection.Viewport
}

// NewRasterizer builds the projection for a canvas of width x height pixels.
func NewRasterizer(width, height int) (*Rasterizer, error) {
	proj, err := projection.Setup(projection.Default(width, height), nil)
	if err != nil {
		return nil, err
	}
	return &Rasterizer{
		Projection: proj,
		view:       projection.NewViewport(proj, width, height),
	}, nil
}

// Draw rasterizes prims in order. Later primitives blend over earlier ones
// where they pass the depth test.
func (r *Rasterizer) Draw(c *Canvas, prims []geom.Primitive) {
	for _, p := range prims {
		switch s := p.Shape.(type) {
		case geom.Sphere:
			r.sphere(c, s, p.Color)
		case geom.Triangle:
			r.triangle(c, s, p.Color)
		}
	}
}

// sphere fills a disc at the center depth.
func (r *Rasterizer) sphere(c *Canvas, s geom.Sphere, col geom.RGBA) {
	p, ok := r.view.Project(s.Center)
	if !ok || !projection.Visible(p.Z) {
		return
	}

	rad := math.Max(r.view.Scale(math.Abs(s.Radius), p.W), minPixelRadius)

	x0, x1 := max(int(math.Floor(p.X-rad)), 0), min(int(math.Ceil(p.X+rad)), c.Width-1)
	y0, y1 := max(int(math.Floor(p.Y-rad)), 0), min(int(math.Ceil(p.Y+rad)), c.Height-1)

	covered := false
	for y := y0; y <= y1; y++ {
		dy := float64(y) + 0.5 - p.Y
		for x := x0; x <= x1; x++ {
			dx := float64(x) + 0.5 - p.X
			if dx*dx+dy*dy <= rad*rad {
				c.Plot(x, y, p.Z, col)
				covered = true
			}
		}
	}
	if !covered {
		c.Plot(int(math.Floor(p.X)), int(math.Floor(p.Y)), p.Z, col)
	}
}

// triangle fills by barycentric coverage, interpolating depth. Both windings
// are filled.
func (r *Rasterizer) triangle(c *Canvas, t geom.Triangle, col geom.RGBA) {
	a, okA := r.view.Project(t.V0)
	b, okB := r.view.Project(t.V1)
	d, okD := r.view.Project(t.V2)
	if !okA || !okB || !okD {
		return
	}
	area := edge(a, b, d.X, d.Y)
	if area == 0 {
		return
	}

	x0 := max(int(math.Floor(math.Min(a.X, math.Min(b.X, d.X)))), 0)
	x1 := min(int(math.Ceil(math.Max(a.X, math.Max(b.X, d.X)))), c.Width-1)
	y0 := max(int(math.Floor(math.Min(a.Y, math.Min(b.Y, d.Y)))), 0)
	y1 := min(int(math.Ceil(math.Max(a.Y, math.Max(b.Y, d.Y)))), c.Height-1)

	for y := y0; y <= y1; y++ {
		py := float64(y) + 0.5
		for x := x0; x <= x1; x++ {
			px := float64(x) + 0.5
			w0 := edge(b, d, px, py) / area
			w1 := edge(d, a, px, py) / area
			w2 := edge(a, b, px, py) / area
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}
			z := w0*a.Z + w1*b.Z + w2*d.Z
			if projection.Visible(z) {
				c.Plot(x, y, z, col)
			}
		}
	}
}

func edge(a, b projection.ScreenPoint, x, y float64) float64 {
	return (b.X-a.X)*(y-a.Y) - (b.Y-a.Y)*(x-a.X)
}
