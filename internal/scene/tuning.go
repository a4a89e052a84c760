package scene

import (
	"github.com/go-gl/mathgl/mgl64"
)

const (
	PulseMin       = 0.8
	PulseMax       = 1.2
	RotateSpeedMin = 0.005
	RotateSpeedMax = 0.02

	// YRotationStep is added to Tuning.YRotation every tick, in radians.
	YRotationStep = 0.005
)

// Tuning is the animation state read by every generator. The render loop is
// its only writer.
type Tuning struct {
	PulseFactor float64
	// RotateSpeed follows the pointer like PulseFactor. It is reported by the
	// hosts but the Y rotation advances at the fixed YRotationStep.
	RotateSpeed float64
	YRotation   float64
	Frame       uint64
}

func DefaultTuning() Tuning {
	return Tuning{
		PulseFactor: 1.0,
		RotateSpeed: 0.01,
	}
}

// Pointer remaps a pointer position inside a width x height surface.
// X drives RotateSpeed and Y drives PulseFactor.
func (t *Tuning) Pointer(x, y, width, height float64) {
	t.RotateSpeed = Remap(x, 0, width, RotateSpeedMin, RotateSpeedMax)
	t.PulseFactor = Remap(y, 0, height, PulseMin, PulseMax)
}

// Advance moves to the next frame.
func (t *Tuning) Advance() {
	t.Frame++
}

// World is the slow rotation about the vertical axis shared by the whole
// scene.
func (t Tuning) World() mgl64.Mat4 {
	return mgl64.HomogRotate3DY(t.YRotation)
}

// Remap maps v linearly from [inMin,inMax] to [outMin,outMax], clamping v to
// the input range first.
func Remap(v, inMin, inMax, outMin, outMax float64) float64 {
	if inMax == inMin {
		return outMin
	}
	lo, hi := inMin, inMax
	if lo > hi {
		lo, hi = hi, lo
	}
	t := (mgl64.Clamp(v, lo, hi) - inMin) / (inMax - inMin)
	// lerp form keeps both ends exact
	return outMin*(1-t) + outMax*t
}
