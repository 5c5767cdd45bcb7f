// Package uidriver defines the contract between a retained-mode GUI layer
// and a host-supplied rendering backend.
//
// # Overview
//
// The GUI layer issues every draw and measurement request through the
// [Renderer] interface without knowing which graphics API sits behind it.
// Backends live under backend/: backend/software renders into an in-memory
// framebuffer and doubles as the reference implementation for tests, and
// backend/ebitengine renders through Ebitengine.
//
// # Quick Start
//
//	r, err := software.New(800, 600,
//	    software.WithTextures(store),
//	)
//	if err != nil {
//	    return err
//	}
//
//	// Nested clipping is caller-owned: push intersects, pop restores.
//	sc := uidriver.NewScissorStack(r)
//	_ = sc.Push(uidriver.Rect{X: 10, Y: 10, W: 200, H: 100})
//	_ = r.DrawRectangle(uidriver.Rect{X: 0, Y: 0, W: 400, H: 400}, uidriver.Blue)
//	sc.Pop()
//
// # Scissor Region
//
// A backend exposes a single scissor slot. Setting a region replaces the
// previous one; it never intersects. [ScissorStack] layers stack-like
// nesting on top of that slot by reading, intersecting and restoring the
// region around each child.
//
// # Pixel Queries
//
// [FindPixelOffset] scans a texture region in row-major order and returns
// the first exact match, or the nearest colour under a [Metric] when asked
// to. Offsets are relative to the searched region's top-left corner.
//
// # Coordinate System
//
// Integer pixel coordinates, origin at the top-left, X right, Y down.
// Rectangles are half-open: a Rect{X: 0, Y: 0, W: 4, H: 4} covers pixels
// 0..3 on both axes.
//
// # Threading
//
// Backends are not safe for concurrent use. All calls for one backend must
// come from the goroutine that owns its graphics context, one frame at a
// time.
package uidriver

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
