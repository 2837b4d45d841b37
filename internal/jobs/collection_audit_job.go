package jobs

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"crazygenerics/internal/core/application/usecases/queries"
	"crazygenerics/internal/core/domain/model/generic"
	"crazygenerics/internal/core/domain/model/kernel"

	"github.com/robfig/cron/v3"
)

// DefaultAuditSchedule runs the audit every ten seconds.
const DefaultAuditSchedule = "*/10 * * * * *"

// AuditResult describes one audit run.
type AuditResult struct {
	// Count is the size of the current snapshot
	Count int
	// Growth is the sign of the size change against the previous snapshot
	Growth int
	// Newest is the latest creation time seen across all runs
	Newest time.Time
	// HasNewest is false until some run has seen an entity
	HasNewest bool
}

// CollectionAuditJob periodically snapshots the entity collection, reports
// whether it grew or shrank since the previous run and tracks the newest
// creation time ever observed.
type CollectionAuditJob struct {
	handler  queries.GetEntitiesQueryHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger

	mu       sync.Mutex
	previous generic.List[*kernel.BaseEntity]
	newest   *generic.MaxHolder[time.Time]
}

// NewCollectionAuditJob creates an audit job running on the given cron
// schedule (with seconds). An empty schedule means DefaultAuditSchedule.
func NewCollectionAuditJob(
	handler queries.GetEntitiesQueryHandler,
	schedule string,
	logger *slog.Logger,
) *CollectionAuditJob {
	if schedule == "" {
		schedule = DefaultAuditSchedule
	}
	logger = logger.With("component", "collection_audit_job")
	cronLogger := cronSlogLogger{logger: logger}

	return &CollectionAuditJob{
		handler:  handler,
		schedule: schedule,
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithLogger(cronLogger),
			cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)),
		),
		logger: logger,
		newest: generic.NewComparableMaxHolder[time.Time](),
	}
}

// Audit takes a snapshot and compares it with the previous one.
func (j *CollectionAuditJob) Audit(ctx context.Context) (AuditResult, error) {
	entities, err := j.handler.Handle(ctx, queries.NewGetEntitiesQuery())
	if err != nil {
		return AuditResult{}, err
	}
	snapshot := generic.ListOf(entities...)

	j.mu.Lock()
	defer j.mu.Unlock()

	for e := range snapshot.All() {
		j.newest.Put(e.CreatedOn())
	}

	result := AuditResult{
		Count:  snapshot.Len(),
		Growth: snapshot.CompareTo(j.previous),
	}
	result.Newest, result.HasNewest = j.newest.Max()
	j.previous = snapshot

	return result, nil
}

// Start schedules the audit and starts the scheduler.
func (j *CollectionAuditJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		result, err := j.Audit(ctx)
		if err != nil {
			j.logger.ErrorContext(ctx, "Collection audit failed", "error", err)
			return
		}

		attrs := []any{"count", result.Count, "growth", result.Growth}
		if result.HasNewest {
			attrs = append(attrs, "newest", result.Newest)
		}
		j.logger.InfoContext(ctx, "Collection audited", attrs...)
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Collection audit job started", "schedule", j.schedule)
	return nil
}

// Stop stops the scheduler and waits for a running audit to finish.
func (j *CollectionAuditJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Collection audit job stopped")
}

// cronSlogLogger adapts slog to cron.Logger.
type cronSlogLogger struct {
	logger *slog.Logger
}

func (l cronSlogLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug(msg, keysAndValues...)
}

func (l cronSlogLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error(msg, append(keysAndValues, "error", err)...)
}
