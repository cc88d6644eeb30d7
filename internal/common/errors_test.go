package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserError(t *testing.T) {
	t.Run("message only", func(t *testing.T) {
		err := NewUserError("storage path is not configured", nil)
		assert.Equal(t, "storage path is not configured", err.Error())
	})

	t.Run("wraps cause", func(t *testing.T) {
		err := NewUserError("storage path is not configured", ErrMissingConfig)
		assert.Equal(t, "storage path is not configured: missing configuration", err.Error())
		assert.ErrorIs(t, err, ErrMissingConfig)

		var userErr *UserError
		require.ErrorAs(t, err, &userErr)
		assert.Equal(t, "storage path is not configured", userErr.UserMessage)
	})
}

func TestSentinelWrapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{
			name:     "storage unavailable",
			err:      fmt.Errorf("%w: /tmp/moneylover.db", ErrStorageUnavailable),
			sentinel: ErrStorageUnavailable,
		},
		{
			name:     "corrupt state",
			err:      fmt.Errorf("%w: unexpected end of JSON input", ErrCorruptState),
			sentinel: ErrCorruptState,
		},
		{
			name:     "invalid config",
			err:      fmt.Errorf("%w: log level %q", ErrInvalidConfig, "loud"),
			sentinel: ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.err, tt.sentinel)
			assert.NotErrorIs(t, tt.err, errors.New(tt.sentinel.Error()))
		})
	}
}
