package tunnel

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsBenignError(t *testing.T) {
	t.Run("Success_ConnectionRefused", func(t *testing.T) {
		err := errors.New("failed to run ssh tunnel: connection refused: serveo.net")

		assert.True(t, IsBenignError(err))
	})

	t.Run("Success_TunnelServerOffline", func(t *testing.T) {
		err := errors.New("tunnel server offline")

		assert.True(t, IsBenignError(err))
	})

	t.Run("Success_NilError", func(t *testing.T) {
		assert.False(t, IsBenignError(nil))
	})

	t.Run("Success_UnrelatedError", func(t *testing.T) {
		err := errors.New("permission denied (publickey)")

		assert.False(t, IsBenignError(err))
	})
}
