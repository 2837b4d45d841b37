package generic_test

import (
	"strings"
	"testing"
	"time"

	"crazygenerics/internal/core/domain/model/generic"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaxHolder(t *testing.T) {
	t.Run("should start absent", func(t *testing.T) {
		h := generic.NewMaxHolder[int]()

		_, ok := h.Max()

		assert.False(t, ok)
	})

	t.Run("should keep the greatest value", func(t *testing.T) {
		h := generic.NewMaxHolder[int]()

		h.Put(3)
		h.Put(5)
		h.Put(2)
		got, ok := h.Max()

		require.True(t, ok)
		assert.Equal(t, 5, got)

		h.Put(5)
		got, _ = h.Max()
		assert.Equal(t, 5, got)
	})

	t.Run("should keep initial value when nothing exceeds it", func(t *testing.T) {
		h := generic.NewMaxHolderOf(10)

		h.Put(4)
		h.Put(9)
		got, ok := h.Max()

		require.True(t, ok)
		assert.Equal(t, 10, got)
	})

	t.Run("should accept a first value below the zero value", func(t *testing.T) {
		h := generic.NewMaxHolder[int]()

		h.Put(-7)
		got, ok := h.Max()

		require.True(t, ok)
		assert.Equal(t, -7, got)
	})

	t.Run("should keep the first of equal values", func(t *testing.T) {
		type word struct{ text, origin string }
		h := generic.NewMaxHolderFunc(func(a, b word) int {
			return strings.Compare(strings.ToLower(a.text), strings.ToLower(b.text))
		})

		h.Put(word{text: "Go", origin: "first"})
		h.Put(word{text: "go", origin: "second"})
		got, _ := h.Max()

		assert.Equal(t, "first", got.origin)
	})

	t.Run("should order self-comparing types", func(t *testing.T) {
		base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		h := generic.NewComparableMaxHolder[time.Time]()

		h.Put(base)
		h.Put(base.Add(time.Hour))
		h.Put(base.Add(-time.Hour))
		got, ok := h.Max()

		require.True(t, ok)
		assert.Equal(t, base.Add(time.Hour), got)
	})
}
