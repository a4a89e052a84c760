// Package scene generates the kaleidoscope, one tick at a time.
//
// The pattern is built from a single angular sector:
//
//   - [Sector]: radial triangles, cubic Bezier vines and noise-placed spheres
//   - [Replicate]: the sector repeated under 8-fold rotation about the view
//     axis, all of it turning slowly about the vertical axis
//   - [Ornament]: a pulsing sphere at the origin
//
// [Engine] owns the per-tick animation state ([Tuning]) and the sparkle
// population and produces the full primitive list for a frame:
//
//	eng := scene.NewEngine(noise.New(seed), sparkle.New(rng))
//	for running {
//		eng.Input(mouseX, mouseY, width, height)
//		draw(eng.Tick())
//	}
//
// Everything except the sparkles is a pure function of Tuning and the noise
// seed, so two calls with the same inputs emit identical primitives.
//
// # Thread Safety
//
// Engine is NOT thread-safe. It is driven by a single render loop.
package scene
