package condition

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_CarriesCodeAndMessage(t *testing.T) {
	err := New(TypeMismatch, "value is %s", "string")
	assert.Equal(t, TypeMismatch, err.Code())
	assert.Equal(t, "type mismatch: value is string", err.Error())
}

func TestWrap_PreservesCause(t *testing.T) {
	cause := errors.New("boom")
	err := Wrap(ExecutionFailure, cause, "statement 2 failed")

	assert.Equal(t, ExecutionFailure, err.Code())
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "boom")
}

func TestCodeOf_WalksWrappedChain(t *testing.T) {
	inner := New(IndexOutOfRange, "index 7")
	outer := fmt.Errorf("reading array: %w", inner)

	assert.Equal(t, IndexOutOfRange, CodeOf(outer))
	assert.Equal(t, CodeNone, CodeOf(errors.New("plain")))
	assert.Equal(t, CodeNone, CodeOf(nil))
}

func TestIs_MatchesByCode(t *testing.T) {
	err := fmt.Errorf("dispatch: %w", New(ArityMismatch, "2 != 3"))

	require.True(t, errors.Is(err, New(ArityMismatch, "")))
	assert.False(t, errors.Is(err, New(TypeMismatch, "")))
}

func TestCode_String(t *testing.T) {
	assert.Equal(t, "structural violation", StructuralViolation.String())
	assert.Equal(t, "unknown", Code(99).String())
}
