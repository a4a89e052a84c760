package projection

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Viewport maps world coordinates to pixels on a width x height surface with
// the camera DefaultDistance units back from the origin. Y grows downward.
type Viewport struct {
	Width, Height int

	mvp   mgl64.Mat4
	focal float64
}

// ScreenPoint is a projected position. Z is NDC depth in [-1,1] for visible
// points and W is the distance in front of the camera.
type ScreenPoint struct {
	X, Y, Z, W float64
}

func NewViewport(proj Projection, width, height int) Viewport {
	return Viewport{
		Width:  width,
		Height: height,
		mvp:    proj.Matrix.Mul4(View(DefaultDistance)),
		focal:  proj.Matrix[5],
	}
}

// Project reports false for points at or behind the camera plane.
func (v Viewport) Project(p mgl64.Vec3) (ScreenPoint, bool) {
	clip := v.mvp.Mul4x1(p.Vec4(1))
	if clip.W() <= 0 {
		return ScreenPoint{}, false
	}
	inv := 1 / clip.W()
	return ScreenPoint{
		X: (clip.X()*inv + 1) / 2 * float64(v.Width),
		Y: (1 - clip.Y()*inv) / 2 * float64(v.Height),
		Z: clip.Z() * inv,
		W: clip.W(),
	}, true
}

// Scale returns the on-screen size in pixels of a world length r seen at
// distance w.
func (v Viewport) Scale(r, w float64) float64 {
	return r * v.focal / w * float64(v.Height) / 2
}

// Visible reports whether a depth lies between the near and far planes.
func Visible(z float64) bool { return z >= -1 && z <= 1 }
