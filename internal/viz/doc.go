// Package viz renders the kaleidoscope in a terminal.
//
// Frames from a [scene.Engine] are rasterized in software onto a [Canvas] of
// half-block pixels, two per character cell, with a depth buffer and alpha
// blending. [Model] is the Bubble Tea program that ticks the engine, feeds it
// mouse motion and lays the canvas out next to a status panel.
//
// # Key Bindings
//
//	Mouse - x tunes rotate speed, y tunes pulse
//	T     - Cycle panel themes
//	G     - Toggle GIF recording
//	?     - Show help overlay
//	Q     - Quit
//
// # Recording
//
// Frames can be recorded as a GIF animation with the G key. Recordings are
// saved to kaleido.gif in the current directory.
package viz
