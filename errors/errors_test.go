package errors

import (
	// Go Internal Packages
	"fmt"
	"testing"

	// External Packages
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindedErrors(t *testing.T) {
	err := AccountLockedErr(7)
	assert.True(t, Is(Locked, err))
	assert.False(t, Is(InsufficientFunds, err))
	assert.Equal(t, Locked, KindOf(err))
	assert.Equal(t, "account 7 is locked", err.Error())

	wrapped := E(Invalid, "dispatch failed", err)
	assert.True(t, Is(Invalid, wrapped))
	assert.True(t, Is(Locked, wrapped), "kinds deeper in the chain are still found")
	assert.Equal(t, Invalid, KindOf(wrapped), "KindOf reports the outermost kind")

	assert.Equal(t, Other, KindOf(fmt.Errorf("plain")))
	assert.False(t, Is(Locked, nil))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "locked", Locked.String())
	assert.Equal(t, "insufficient_funds", InsufficientFunds.String())
	assert.Equal(t, "not_found", NotFound.String())
	assert.Equal(t, "invalid", Invalid.String())
	assert.Equal(t, "other", Other.String())
}

func TestValidationErrs(t *testing.T) {
	t.Run("empty collector yields nil", func(t *testing.T) {
		assert.NoError(t, ValidationErrs().Err())
	})

	t.Run("collected fields are joined", func(t *testing.T) {
		ve := ValidationErrs()
		ve.Add("application", "cannot be empty")
		ve.Add("stream.channel_size", "must be positive")

		err := ve.Err()
		require.Error(t, err)
		assert.True(t, Is(Invalid, err))
		assert.Equal(t, "application: cannot be empty; stream.channel_size: must be positive", err.Error())
	})
}
