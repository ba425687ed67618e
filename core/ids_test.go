package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewID(t *testing.T) {
	t.Run("Success_PrefixedAndLowercase", func(t *testing.T) {
		id := NewID("stw")

		assert.True(t, strings.HasPrefix(id, "stw-"))
		assert.Equal(t, strings.ToLower(id), id)
		assert.Len(t, id, len("stw-")+26)
	})

	t.Run("Success_Unique", func(t *testing.T) {
		assert.NotEqual(t, NewID("stw"), NewID("stw"))
	})

	t.Run("Error_EmptyPrefixPanics", func(t *testing.T) {
		assert.Panics(t, func() { NewID(" ") })
	})
}
