package jobs

import (
	"fmt"
	"log/slog"

	"crazygenerics/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	collectionAuditJob *CollectionAuditJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	getEntitiesHandler queries.GetEntitiesQueryHandler,
	auditSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		collectionAuditJob: NewCollectionAuditJob(getEntitiesHandler, auditSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.collectionAuditJob.Start(); err != nil {
		return fmt.Errorf("failed to start collection audit job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.collectionAuditJob.Stop()
}
