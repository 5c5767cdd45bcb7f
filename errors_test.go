package uidriver

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpError(t *testing.T) {
	err := NewOpError("DrawTexture", "button", ErrResourceNotFound)
	assert.True(t, errors.Is(err, ErrResourceNotFound))
	assert.Equal(t, `DrawTexture "button": uidriver: resource not found`, err.Error())

	var op *OpError
	assert.True(t, errors.As(err, &op))
	assert.Equal(t, "button", op.Resource)

	assert.Nil(t, NewOpError("DrawRectangle", "", nil))
}

func TestSkippable(t *testing.T) {
	assert.True(t, Skippable(fmt.Errorf("font %q: %w", "x", ErrResourceNotFound)))
	assert.True(t, Skippable(NewOpError("DrawText", "glow", ErrUnsupportedEffect)))
	assert.False(t, Skippable(NewOpError("DrawTexture", "a", ErrInvalidArgument)))
	assert.False(t, Skippable(nil))
}
