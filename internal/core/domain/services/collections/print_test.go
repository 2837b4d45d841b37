package collections_test

import (
	"bytes"
	"errors"
	"testing"

	"crazygenerics/internal/core/domain/services/collections"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingWriter struct{ writes int }

func (w *failingWriter) Write(_ []byte) (int, error) {
	w.writes++
	return 0, errors.New("disk full")
}

func TestFprint(t *testing.T) {
	t.Run("should write one marked line per element", func(t *testing.T) {
		var buf bytes.Buffer

		require.NoError(t, collections.Fprint(&buf, []int{1, 2, 3}))

		assert.Equal(t, " – 1\n – 2\n – 3\n", buf.String())
	})

	t.Run("should write nothing for empty input", func(t *testing.T) {
		var buf bytes.Buffer

		require.NoError(t, collections.Fprint[string](&buf, nil))

		assert.Empty(t, buf.String())
	})

	t.Run("should use String method of elements", func(t *testing.T) {
		var buf bytes.Buffer
		e := persistedEntity(t, 4, baseTime)

		require.NoError(t, collections.Fprint(&buf, []any{e}))

		assert.Contains(t, buf.String(), " – BaseEntity{id=4")
	})

	t.Run("should stop at first write error", func(t *testing.T) {
		w := &failingWriter{}

		err := collections.Fprint(w, []string{"a", "b"})

		require.Error(t, err)
		assert.Equal(t, 1, w.writes)
	})
}
