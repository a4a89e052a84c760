package scene

import "github.com/san-kum/kaleido/internal/geom"

// Bezier evaluates the cubic Bezier curve with control points p0..p3 at t.
func Bezier(p0, p1, p2, p3 geom.Vec3, t float64) geom.Vec3 {
	mt := 1 - t
	a := mt * mt * mt
	b := 3 * mt * mt * t
	c := 3 * mt * t * t
	d := t * t * t
	return p0.Mul(a).Add(p1.Mul(b)).Add(p2.Mul(c)).Add(p3.Mul(d))
}

// SampleBezier evaluates the curve at n+1 evenly spaced parameters from 0 to 1.
func SampleBezier(p0, p1, p2, p3 geom.Vec3, n int) []geom.Vec3 {
	pts := make([]geom.Vec3, n+1)
	for i := 0; i <= n; i++ {
		pts[i] = Bezier(p0, p1, p2, p3, float64(i)/float64(n))
	}
	return pts
}
