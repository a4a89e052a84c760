package geom

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"
)

type Vec3 = mgl64.Vec3

// RGBA is a straight (non-premultiplied) color with channels in [0,1].
type RGBA struct {
	R, G, B, A float64
}

// FromColor pairs an opaque color with an alpha value.
func FromColor(c colorful.Color, alpha float64) RGBA {
	return RGBA{R: c.R, G: c.G, B: c.B, A: alpha}
}

// Color drops the alpha channel.
func (c RGBA) Color() colorful.Color {
	return colorful.Color{R: c.R, G: c.G, B: c.B}
}

// Shape is implemented by Sphere and Triangle only.
type Shape interface {
	transform(m mgl64.Mat4) Shape
	isShape()
}

type Sphere struct {
	Center Vec3
	Radius float64
	Slices int
	Stacks int
}

type Triangle struct {
	V0, V1, V2 Vec3
}

func (Sphere) isShape()   {}
func (Triangle) isShape() {}

func (s Sphere) transform(m mgl64.Mat4) Shape {
	s.Center = mgl64.TransformCoordinate(s.Center, m)
	return s
}

func (t Triangle) transform(m mgl64.Mat4) Shape {
	t.V0 = mgl64.TransformCoordinate(t.V0, m)
	t.V1 = mgl64.TransformCoordinate(t.V1, m)
	t.V2 = mgl64.TransformCoordinate(t.V2, m)
	return t
}

// Primitive is one drawable element of a frame.
type Primitive struct {
	Shape Shape
	Color RGBA
}

func (p Primitive) String() string {
	switch s := p.Shape.(type) {
	case Sphere:
		return fmt.Sprintf("sphere c=%.3v r=%.3f", s.Center, s.Radius)
	case Triangle:
		return fmt.Sprintf("triangle %.3v %.3v %.3v", s.V0, s.V1, s.V2)
	default:
		return "unknown"
	}
}

// Finite reports whether every coordinate, radius and color channel is a
// finite number.
func (p Primitive) Finite() bool {
	c := p.Color
	if !finite(c.R, c.G, c.B, c.A) {
		return false
	}
	switch s := p.Shape.(type) {
	case Sphere:
		return finite(s.Radius) && finite(s.Center[:]...)
	case Triangle:
		return finite(s.V0[:]...) && finite(s.V1[:]...) && finite(s.V2[:]...)
	default:
		return false
	}
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Transform applies a rigid transform to the shape. Sphere radii are left
// untouched, so m must not scale.
func Transform(p Primitive, m mgl64.Mat4) Primitive {
	p.Shape = p.Shape.transform(m)
	return p
}

// Emitter receives primitives in emission order.
type Emitter func(Primitive)

// Through returns an emitter that transforms every primitive by m before
// handing it to next.
func Through(m mgl64.Mat4, next Emitter) Emitter {
	return func(p Primitive) {
		next(Transform(p, m))
	}
}

// Collect returns an emitter appending to *dst.
func Collect(dst *[]Primitive) Emitter {
	return func(p Primitive) {
		*dst = append(*dst, p)
	}
}

// Counts tallies primitives per shape kind.
func Counts(prims []Primitive) (spheres, triangles int) {
	for _, p := range prims {
		switch p.Shape.(type) {
		case Sphere:
			spheres++
		case Triangle:
			triangles++
		}
	}
	return spheres, triangles
}
