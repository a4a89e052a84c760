// Package projection builds the perspective and view matrices shared by the
// window and terminal renderers.
package projection

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

var (
	// ErrInvalidParams indicates a frustum that cannot be built.
	ErrInvalidParams = errors.New("projection: invalid parameters")

	// ErrNotFinite indicates the preferred call produced NaN or Inf entries.
	ErrNotFinite = errors.New("projection: matrix is not finite")
)

const (
	DefaultFovY     = 45.0
	DefaultNear     = 0.1
	DefaultFar      = 50.0
	DefaultDistance = 5.0
)

// Params describe a symmetric perspective frustum. FovY is in degrees.
type Params struct {
	FovY   float64
	Aspect float64
	Near   float64
	Far    float64
}

// Default returns the scene frustum for a width x height surface.
func Default(width, height int) Params {
	aspect := 1.0
	if height > 0 {
		aspect = float64(width) / float64(height)
	}
	return Params{FovY: DefaultFovY, Aspect: aspect, Near: DefaultNear, Far: DefaultFar}
}

func (p Params) Validate() error {
	switch {
	case !(p.FovY > 0 && p.FovY < 180):
		return fmt.Errorf("%w: fov %v", ErrInvalidParams, p.FovY)
	case !(p.Aspect > 0) || math.IsInf(p.Aspect, 0):
		return fmt.Errorf("%w: aspect %v", ErrInvalidParams, p.Aspect)
	case !(p.Near > 0):
		return fmt.Errorf("%w: near %v", ErrInvalidParams, p.Near)
	case !(p.Far > p.Near):
		return fmt.Errorf("%w: far %v <= near %v", ErrInvalidParams, p.Far, p.Near)
	}
	return nil
}

// Method records which path produced a projection.
type Method int

const (
	MethodPerspective Method = iota
	MethodFrustum
)

func (m Method) String() string {
	switch m {
	case MethodPerspective:
		return "perspective"
	case MethodFrustum:
		return "frustum"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// PerspectiveFunc is a preferred way of building the projection, typically
// supplied by a renderer.
type PerspectiveFunc func(p Params) (mgl64.Mat4, error)

// Projection is the outcome of Setup. Cause is set when the preferred call
// failed and the frustum fallback was used.
type Projection struct {
	Matrix mgl64.Mat4
	Method Method
	Cause  error
}

// Setup tries preferred and falls back to an explicit frustum built from the
// same parameters. A nil preferred means Perspective.
func Setup(p Params, preferred PerspectiveFunc) (Projection, error) {
	if err := p.Validate(); err != nil {
		return Projection{}, err
	}
	if preferred == nil {
		preferred = Perspective
	}

	m, err := preferred(p)
	if err == nil {
		err = finite(m)
	}
	if err == nil {
		return Projection{Matrix: m, Method: MethodPerspective}, nil
	}

	fm, ferr := Frustum(p)
	if ferr != nil {
		return Projection{}, errors.Join(err, ferr)
	}
	return Projection{Matrix: fm, Method: MethodFrustum, Cause: err}, nil
}

// Perspective wraps mgl64.Perspective.
func Perspective(p Params) (mgl64.Mat4, error) {
	m := mgl64.Perspective(mgl64.DegToRad(p.FovY), p.Aspect, p.Near, p.Far)
	if err := finite(m); err != nil {
		return mgl64.Mat4{}, err
	}
	return m, nil
}

// Bounds returns the near-plane extents of the frustum.
func (p Params) Bounds() (left, right, bottom, top float64) {
	top = p.Near * math.Tan(mgl64.DegToRad(p.FovY)/2)
	bottom = -top
	right = top * p.Aspect
	left = -right
	return left, right, bottom, top
}

// Frustum builds the projection from explicit near-plane bounds.
func Frustum(p Params) (mgl64.Mat4, error) {
	l, r, b, t := p.Bounds()
	m := mgl64.Frustum(l, r, b, t, p.Near, p.Far)
	if err := finite(m); err != nil {
		return mgl64.Mat4{}, err
	}
	return m, nil
}

// View pulls the camera back distance units along +Z.
func View(distance float64) mgl64.Mat4 {
	return mgl64.Translate3D(0, 0, -distance)
}

func finite(m mgl64.Mat4) error {
	for _, v := range m {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrNotFinite
		}
	}
	return nil
}
