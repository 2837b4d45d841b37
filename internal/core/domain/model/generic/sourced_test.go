package generic_test

import (
	"testing"

	"crazygenerics/internal/core/domain/model/generic"

	"github.com/stretchr/testify/assert"
)

func TestSourced(t *testing.T) {
	t.Run("should hold value and source", func(t *testing.T) {
		s := generic.NewSourced(42, "sensor-a")

		assert.Equal(t, 42, s.Value())
		assert.Equal(t, "sensor-a", s.Source())
	})

	t.Run("should allow mutation of both fields", func(t *testing.T) {
		s := generic.NewSourced([]string{"a"}, "memory")

		s.SetValue([]string{"b", "c"})
		s.SetSource("postgres")

		assert.Equal(t, []string{"b", "c"}, s.Value())
		assert.Equal(t, "postgres", s.Source())
	})

	t.Run("should accept zero values", func(t *testing.T) {
		s := generic.NewSourced[*int](nil, "")

		assert.Nil(t, s.Value())
		assert.Empty(t, s.Source())
	})
}
