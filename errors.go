package uidriver

import (
	"errors"
	"fmt"
)

// Error kinds surfaced by every backend. Backends wrap them with context,
// so callers test with errors.Is.
var (
	// ErrResourceNotFound is returned for unknown texture or font ids.
	ErrResourceNotFound = errors.New("uidriver: resource not found")

	// ErrInvalidArgument is returned for out-of-bounds rectangles or
	// offsets and for zero or negative sizes.
	ErrInvalidArgument = errors.New("uidriver: invalid argument")

	// ErrUnsupportedEffect is returned for unknown effect identifiers.
	ErrUnsupportedEffect = errors.New("uidriver: unsupported effect")
)

// OpError records the failing operation and the resource it was applied to.
type OpError struct {
	Op       string // operation name, e.g. "DrawTexture"
	Resource string // texture, font or effect id; may be empty
	Err      error
}

func (e *OpError) Error() string {
	if e.Resource == "" {
		return e.Op + ": " + e.Err.Error()
	}
	return fmt.Sprintf("%s %q: %v", e.Op, e.Resource, e.Err)
}

func (e *OpError) Unwrap() error {
	return e.Err
}

// NewOpError wraps err. It returns nil when err is nil.
func NewOpError(op, resource string, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, Resource: resource, Err: err}
}

// Skippable reports whether a failed draw call should be skipped while the
// rest of the frame continues. Missing resources and unsupported effects
// are skippable; invalid arguments point at a layout bug and are not.
func Skippable(err error) bool {
	return errors.Is(err, ErrResourceNotFound) || errors.Is(err, ErrUnsupportedEffect)
}
