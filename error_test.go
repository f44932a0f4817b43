package safeunwrap_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tarantool/go-safeunwrap"
)

func TestViolationError_Error(t *testing.T) {
	t.Parallel()

	parent := errors.New("eof")

	tests := []struct {
		name     string
		err      safeunwrap.ViolationError
		expected string
	}{
		{
			name:     "no reason, no parent",
			err:      safeunwrap.ViolationError{}, //nolint:exhaustruct
			expected: "unwrap of empty value",
		},
		{
			name:     "reason only",
			err:      safeunwrap.ViolationError{Reason: "should fail"}, //nolint:exhaustruct
			expected: "[BUG] violated: should fail",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}

	t.Run("parent without reason", func(t *testing.T) {
		t.Parallel()

		err := recoverViolation(t, func() { safeunwrap.Err[int](parent).Unwrap("") })
		assert.Equal(t, "unwrap of error value: eof", err.Error())
	})
}

func TestViolationError_Is(t *testing.T) {
	t.Parallel()

	err := safeunwrap.ViolationError{Reason: "reason"} //nolint:exhaustruct

	assert.ErrorIs(t, err, safeunwrap.ErrViolated)
	assert.ErrorIs(t, fmt.Errorf("wrapped: %w", err), safeunwrap.ErrViolated)
	assert.NotErrorIs(t, errors.New("other"), safeunwrap.ErrViolated)
}

func TestViolationError_Unwrap(t *testing.T) {
	t.Parallel()

	assert.NoError(t, safeunwrap.ViolationError{}.Unwrap()) //nolint:exhaustruct
}
