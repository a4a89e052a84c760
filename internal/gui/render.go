package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/san-kum/kaleido/internal/geom"
	"github.com/san-kum/kaleido/internal/projection"
)

func drawPrimitive(p geom.Primitive) {
	col := toColor(p.Color.Color(), p.Color.A)

	switch s := p.Shape.(type) {
	case geom.Sphere:
		rl.DrawSphereEx(toVector3(s.Center), float32(s.Radius), int32(s.Stacks), int32(s.Slices), col)
	case geom.Triangle:
		v0, v1, v2 := toVector3(s.V0), toVector3(s.V1), toVector3(s.V2)
		// raylib culls back faces; the petals are seen from both sides.
		rl.DrawTriangle3D(v0, v1, v2, col)
		rl.DrawTriangle3D(v0, v2, v1, col)
	}
}

func toVector3(v geom.Vec3) rl.Vector3 {
	return rl.NewVector3(float32(v.X()), float32(v.Y()), float32(v.Z()))
}

func toColor(c colorful.Color, alpha float64) rl.Color {
	c = c.Clamped()
	return rl.ColorFromNormalized(rl.NewVector4(float32(c.R), float32(c.G), float32(c.B), float32(mgl64.Clamp(alpha, 0, 1))))
}

// Both matrix types are column major, so M{i} is element i.
func toRaylib(m mgl64.Mat4) rl.Matrix {
	return rl.Matrix{
		M0: float32(m[0]), M1: float32(m[1]), M2: float32(m[2]), M3: float32(m[3]),
		M4: float32(m[4]), M5: float32(m[5]), M6: float32(m[6]), M7: float32(m[7]),
		M8: float32(m[8]), M9: float32(m[9]), M10: float32(m[10]), M11: float32(m[11]),
		M12: float32(m[12]), M13: float32(m[13]), M14: float32(m[14]), M15: float32(m[15]),
	}
}

func fromRaylib(m rl.Matrix) mgl64.Mat4 {
	return mgl64.Mat4{
		float64(m.M0), float64(m.M1), float64(m.M2), float64(m.M3),
		float64(m.M4), float64(m.M5), float64(m.M6), float64(m.M7),
		float64(m.M8), float64(m.M9), float64(m.M10), float64(m.M11),
		float64(m.M12), float64(m.M13), float64(m.M14), float64(m.M15),
	}
}

// raymathProjection builds the projection with raymath so the window uses the
// same matrix code as the rest of raylib.
func raymathProjection(p projection.Params) (mgl64.Mat4, error) {
	l, r, b, t := p.Bounds()
	m := rl.MatrixFrustum(
		float32(l), float32(r),
		float32(b), float32(t),
		float32(p.Near), float32(p.Far),
	)
	return fromRaylib(m), nil
}
