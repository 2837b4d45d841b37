package entityrepo

import (
	"testing"
	"time"

	"crazygenerics/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromDomain(t *testing.T) {
	createdOn := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	t.Run("new entity maps to zero ID", func(t *testing.T) {
		id := kernel.NewUUID()
		e, err := kernel.NewBaseEntity(id, createdOn)
		require.NoError(t, err)

		dto := fromDomain.Convert(e)

		assert.Zero(t, dto.ID)
		assert.Equal(t, id.Bytes(), dto.UUID)
		assert.Equal(t, createdOn, dto.CreatedOn)
	})

	t.Run("persisted entity keeps its ID", func(t *testing.T) {
		e, err := kernel.RestoreBaseEntity(12, kernel.NewUUID(), createdOn)
		require.NoError(t, err)

		assert.Equal(t, int64(12), fromDomain.Convert(e).ID)
	})
}

func TestToDomain(t *testing.T) {
	t.Run("restores persisted entity", func(t *testing.T) {
		id := kernel.NewUUID()
		dto := EntityDTO{ID: 3, UUID: id.Bytes(), CreatedOn: time.Now()}

		e, err := toDomain(dto)

		require.NoError(t, err)
		assert.Equal(t, int64(3), *e.ID())
		assert.True(t, e.UUID().IsEqual(id))
	})

	t.Run("rejects nil UUID", func(t *testing.T) {
		_, err := toDomain(EntityDTO{ID: 3, CreatedOn: time.Now()})

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})
}
