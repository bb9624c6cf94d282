// Package particles renders a drifting field of points joined by faint lines
// to their near neighbours.
//
// The field is advanced one step per frame with straight-line motion that
// reflects off the surface edges, then drawn as filled discs plus a line for
// every pair closer than LinkDistance. Lines fade linearly with distance.
//
// A Manager ties this to a host: it reads the viewport and pixel ratio from a
// Display, draws onto a Canvas and asks a Scheduler for each next frame.
//
//	m := particles.NewManager(particles.Options{
//		Display:   display,
//		Scheduler: frames,
//		Acquire:   func() particles.Canvas { return canvas },
//	})
//	m.Mount(particles.ThemeDark)
//	defer m.Teardown()
package particles
