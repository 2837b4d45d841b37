package collections_test

import (
	"testing"
	"time"

	"crazygenerics/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)

func newEntity(t *testing.T, uuid kernel.UUID, createdOn time.Time) *kernel.BaseEntity {
	t.Helper()
	e, err := kernel.NewBaseEntity(uuid, createdOn)
	require.NoError(t, err)
	return e
}

func persistedEntity(t *testing.T, id int64, createdOn time.Time) *kernel.BaseEntity {
	t.Helper()
	e, err := kernel.RestoreBaseEntity(id, kernel.NewUUID(), createdOn)
	require.NoError(t, err)
	return e
}
