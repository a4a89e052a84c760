package scene

import (
	"errors"
	"fmt"

	"github.com/san-kum/kaleido/internal/geom"
)

var (
	// ErrRenderer indicates a frame the host renderer cannot draw.
	ErrRenderer = errors.New("scene: renderer failure")

	// ErrFramePanic indicates a panic was recovered inside a tick.
	ErrFramePanic = errors.New("scene: panic during frame")
)

// FrameError wraps a failure with the frame it happened in.
type FrameError struct {
	Frame   uint64
	Wrapped error
}

func (e *FrameError) Error() string {
	return fmt.Sprintf("frame %d: %v", e.Frame, e.Wrapped)
}

func (e *FrameError) Unwrap() error {
	return e.Wrapped
}

// Guard runs one tick of a render loop. Errors and panics are returned as a
// *FrameError tagged with frame.
func Guard(frame uint64, fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &FrameError{Frame: frame, Wrapped: fmt.Errorf("%w: %v", ErrFramePanic, r)}
		}
	}()

	if err := fn(); err != nil {
		return &FrameError{Frame: frame, Wrapped: err}
	}
	return nil
}

// CheckFrame returns ErrRenderer for the first primitive with a NaN or
// infinite value. Hosts call it before handing a frame to the renderer.
func CheckFrame(prims []geom.Primitive) error {
	for i, p := range prims {
		if !p.Finite() {
			return fmt.Errorf("%w: primitive %d is not finite: %v", ErrRenderer, i, p)
		}
	}
	return nil
}
