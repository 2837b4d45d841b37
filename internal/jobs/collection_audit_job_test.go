package jobs_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"crazygenerics/internal/adapters/out/memory"
	"crazygenerics/internal/core/application/usecases/queries"
	"crazygenerics/internal/core/domain/model/kernel"
	"crazygenerics/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newAuditJob(schedule string) (*jobs.CollectionAuditJob, *memory.ListRepository[*kernel.BaseEntity]) {
	repo := memory.NewListRepository[*kernel.BaseEntity]()
	return jobs.NewCollectionAuditJob(queries.NewGetEntitiesQueryHandler(repo), schedule, discardLogger()), repo
}

func save(t *testing.T, repo *memory.ListRepository[*kernel.BaseEntity], createdOn time.Time) {
	t.Helper()
	e, err := kernel.NewBaseEntity(kernel.NewUUID(), createdOn)
	require.NoError(t, err)
	require.NoError(t, repo.Save(t.Context(), e))
}

func TestCollectionAuditJob_Audit(t *testing.T) {
	job, repo := newAuditJob("")

	result, err := job.Audit(t.Context())
	require.NoError(t, err)
	assert.Equal(t, jobs.AuditResult{}, result)

	save(t, repo, baseTime.Add(time.Hour))
	save(t, repo, baseTime)

	result, err = job.Audit(t.Context())
	require.NoError(t, err)
	assert.Equal(t, 2, result.Count)
	assert.Equal(t, 1, result.Growth)
	require.True(t, result.HasNewest)
	assert.Equal(t, baseTime.Add(time.Hour), result.Newest)

	result, err = job.Audit(t.Context())
	require.NoError(t, err)
	assert.Equal(t, 0, result.Growth)
}

func TestCollectionAuditJob_NewestSurvivesOlderSnapshots(t *testing.T) {
	job, repo := newAuditJob("")
	save(t, repo, baseTime)

	_, err := job.Audit(t.Context())
	require.NoError(t, err)

	save(t, repo, baseTime.Add(-time.Hour))
	result, err := job.Audit(t.Context())

	require.NoError(t, err)
	assert.Equal(t, baseTime, result.Newest)
}

func TestCollectionAuditJob_AuditFailsOnCancelledContext(t *testing.T) {
	job, _ := newAuditJob("")
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	_, err := job.Audit(ctx)

	require.ErrorIs(t, err, context.Canceled)
}

func TestCollectionAuditJob_StartStop(t *testing.T) {
	job, _ := newAuditJob("* * * * * *")

	require.NoError(t, job.Start())
	job.Stop()
}

func TestCollectionAuditJob_StartRejectsBadSchedule(t *testing.T) {
	job, _ := newAuditJob("every now and then")

	require.Error(t, job.Start())
	job.Stop()
}

func TestJobManager(t *testing.T) {
	repo := memory.NewListRepository[*kernel.BaseEntity]()
	handler := queries.NewGetEntitiesQueryHandler(repo)

	t.Run("start and stop", func(t *testing.T) {
		jm := jobs.NewJobManager(handler, jobs.DefaultAuditSchedule, discardLogger())

		require.NoError(t, jm.StartAll())
		jm.StopAll()
	})

	t.Run("bad schedule", func(t *testing.T) {
		jm := jobs.NewJobManager(handler, "0 0", discardLogger())

		err := jm.StartAll()

		require.ErrorContains(t, err, "failed to start collection audit job")
		jm.StopAll()
	})
}
