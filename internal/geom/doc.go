// Package geom defines the drawable primitives exchanged between the scene
// generators and the renderers.
//
// A frame is an ordered slice of [Primitive] values. Each primitive pairs a
// [Shape] with an [RGBA] color:
//
//   - [Sphere]: center, radius and tessellation detail
//   - [Triangle]: three vertices
//
// Shape is a closed set; renderers type-switch over it:
//
//	switch s := p.Shape.(type) {
//	case geom.Sphere:
//		drawSphere(s, p.Color)
//	case geom.Triangle:
//		drawTriangle(s, p.Color)
//	}
//
// Primitives are plain values. They are produced once per tick, consumed by
// the renderer and dropped; nothing holds on to them across frames.
package geom
