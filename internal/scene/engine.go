package scene

import (
	"github.com/san-kum/kaleido/internal/geom"
	"github.com/san-kum/kaleido/internal/noise"
	"github.com/san-kum/kaleido/internal/sparkle"
)

// FrameSize is the number of primitives in a frame without sparkles.
const FrameSize = Sectors*SectorSize + 1

// Engine produces one frame of primitives per tick.
type Engine struct {
	Tuning   Tuning
	Noise    noise.Source
	Sparkles *sparkle.System
}

// NewEngine returns an engine at frame 0. sparkles may be nil.
func NewEngine(src noise.Source, sparkles *sparkle.System) *Engine {
	return &Engine{
		Tuning:   DefaultTuning(),
		Noise:    src,
		Sparkles: sparkles,
	}
}

// Input feeds the pointer position for the coming tick.
func (e *Engine) Input(x, y, width, height float64) {
	e.Tuning.Pointer(x, y, width, height)
}

// Frame returns the index of the frame the next Tick will generate.
func (e *Engine) Frame() uint64 { return e.Tuning.Frame }

// Tick advances the world rotation, generates the frame and moves to the next
// frame index. Order: 8 sectors, ornament, sparkles.
func (e *Engine) Tick() []geom.Primitive {
	e.Tuning.YRotation += YRotationStep

	prims := make([]geom.Primitive, 0, FrameSize+sparkle.Cap)
	emit := geom.Collect(&prims)

	Replicate(e.Tuning, e.Noise, emit)

	world := geom.Through(e.Tuning.World(), emit)
	Ornament(e.Tuning, world)
	if e.Sparkles != nil {
		e.Sparkles.Update(world)
	}

	e.Tuning.Advance()
	return prims
}
