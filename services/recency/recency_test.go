package recency

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserve(t *testing.T) {
	t.Run("Success_FirstDeliveryIsNew", func(t *testing.T) {
		cache := NewCache()

		outcome := cache.Observe("m1", "hello")

		assert.Equal(t, OutcomeNew, outcome)
	})

	t.Run("Success_IdenticalTextIsUnchanged", func(t *testing.T) {
		cache := NewCache()
		cache.Observe("m1", "hello")

		outcome := cache.Observe("m1", "hello")

		assert.Equal(t, OutcomeUnchanged, outcome)
	})

	t.Run("Success_DifferentTextIsChanged", func(t *testing.T) {
		cache := NewCache()
		cache.Observe("m1", "hello")

		outcome := cache.Observe("m1", "hello!!")

		assert.Equal(t, OutcomeTextChanged, outcome)
	})

	t.Run("Success_IDsAreIndependent", func(t *testing.T) {
		cache := NewCache()
		cache.Observe("m1", "hello")

		outcome := cache.Observe("m2", "hello")

		assert.Equal(t, OutcomeNew, outcome)
	})

	t.Run("Success_RecordsLastSeenTimestamp", func(t *testing.T) {
		cache := NewCache()
		first := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
		second := first.Add(time.Minute)
		times := []time.Time{first, second}
		cache.now = func() time.Time {
			next := times[0]
			times = times[1:]
			return next
		}

		cache.Observe("m1", "hello")
		cache.Observe("m1", "hello!!")

		record := cache.Get("m1")
		require.True(t, record.IsPresent())
		assert.Equal(t, "hello!!", record.MustGet().Text)
		assert.Equal(t, second, record.MustGet().LastSeen)
	})
}

func TestGet(t *testing.T) {
	t.Run("Success_MissingIDIsNone", func(t *testing.T) {
		cache := NewCache()

		assert.False(t, cache.Get("m1").IsPresent())
	})
}
