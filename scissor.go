package uidriver

import "fmt"

// ScissorTarget is the part of a Renderer the scissor stack drives.
type ScissorTarget interface {
	ScreenBounds() Rect
	SetScissorRegion(r Rect) error
	ScissorRegion() (Rect, bool)
	ClearScissorRegion()
}

// ScissorStack manages nested clip regions on top of a backend's single
// scissor slot. Each Push narrows the region to the intersection of the
// current region and the new one; Pop restores exactly what was active
// before the matching Push.
//
// The backend never holds more than one rectangle. ScissorStack is owned by
// the GUI layer and, like the backend, is not safe for concurrent use.
type ScissorStack struct {
	target  ScissorTarget
	entries []scissorEntry
}

// scissorEntry is the region that was active before a Push.
type scissorEntry struct {
	prev Rect
	set  bool
}

// NewScissorStack creates a stack driving target.
func NewScissorStack(target ScissorTarget) *ScissorStack {
	return &ScissorStack{
		target:  target,
		entries: make([]scissorEntry, 0, 8),
	}
}

// Push narrows the scissor region to r intersected with the current region,
// or with the screen bounds when no region is set. A negative size fails
// with ErrInvalidArgument, as it does for SetScissorRegion.
func (s *ScissorStack) Push(r Rect) error {
	if r.W < 0 || r.H < 0 {
		return NewOpError("ScissorStack.Push", "", fmt.Errorf("region %v: %w", r, ErrInvalidArgument))
	}

	prev, set := s.target.ScissorRegion()
	base := prev
	if !set {
		base = s.target.ScreenBounds()
	}

	if err := s.target.SetScissorRegion(base.Intersect(r)); err != nil {
		return NewOpError("ScissorStack.Push", "", err)
	}

	s.entries = append(s.entries, scissorEntry{prev: prev, set: set})
	return nil
}

// Pop restores the region that was active before the most recent Push.
// If the stack is empty, this is a no-op.
func (s *ScissorStack) Pop() {
	if len(s.entries) == 0 {
		return
	}

	last := len(s.entries) - 1
	entry := s.entries[last]
	s.entries = s.entries[:last]

	if !entry.set {
		s.target.ClearScissorRegion()
		return
	}
	if err := s.target.SetScissorRegion(entry.prev); err != nil {
		// prev was read back from the target, so it was accepted once.
		Logger().Warn("uidriver: scissor restore rejected", "region", entry.prev, "err", err)
	}
}

// Current returns the effective clip region: the backend's region, or the
// screen bounds when none is set.
func (s *ScissorStack) Current() Rect {
	if r, ok := s.target.ScissorRegion(); ok {
		return r
	}
	return s.target.ScreenBounds()
}

// Depth returns the number of active pushes.
func (s *ScissorStack) Depth() int {
	return len(s.entries)
}

// Reset pops every entry, leaving the region as it was before the first
// Push.
func (s *ScissorStack) Reset() {
	for len(s.entries) > 0 {
		s.Pop()
	}
}

// WithScissor runs fn with region pushed onto s and pops it afterwards,
// including when fn returns an error.
func WithScissor(s *ScissorStack, region Rect, fn func() error) error {
	if err := s.Push(region); err != nil {
		return err
	}
	defer s.Pop()
	return fn()
}
