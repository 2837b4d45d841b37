package cmd_test

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"crazygenerics/cmd"
	"crazygenerics/internal/core/application/usecases/commands"
	"crazygenerics/internal/core/application/usecases/queries"
	"crazygenerics/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompositionRoot(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	testCases := []struct {
		name    string
		storage string
	}{
		{name: "memory", storage: cmd.StorageMemory},
		{name: "sqlite", storage: cmd.StorageSQLite},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			config := validConfig()
			config.Storage = tc.storage
			config.SQLitePath = filepath.Join(t.TempDir(), "entities.db")

			root, err := cmd.NewCompositionRoot(t.Context(), config, logger)
			require.NoError(t, err)
			t.Cleanup(func() { assert.NoError(t, root.Close()) })

			registerCmd, err := commands.NewRegisterEntityCommand(kernel.NewUUID(), time.Now())
			require.NoError(t, err)
			saved, err := root.CreateRegisterEntityCommandHandler().Handle(t.Context(), registerCmd)
			require.NoError(t, err)
			assert.False(t, saved.IsNew())

			entities, err := root.CreateGetEntitiesQueryHandler().Handle(t.Context(), queries.NewGetEntitiesQuery())
			require.NoError(t, err)
			assert.Len(t, entities, 1)

			latest, err := root.CreateGetLatestEntityQueryHandler().Handle(t.Context(), queries.NewGetLatestEntityQuery())
			require.NoError(t, err)
			assert.True(t, latest.UUID().IsEqual(saved.UUID()))

			assert.NotNil(t, root.CreateHTTPServer())
			assert.NotNil(t, root.CreateJobManager())
		})
	}
}

func TestCompositionRoot_UnknownStorage(t *testing.T) {
	config := validConfig()
	config.Storage = "redis"

	_, err := cmd.NewCompositionRoot(t.Context(), config, slog.New(slog.NewTextHandler(io.Discard, nil)))

	require.ErrorContains(t, err, `unknown storage "redis"`)
}
