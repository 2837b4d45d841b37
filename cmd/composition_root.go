package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	httpadapter "crazygenerics/internal/adapters/in/http"
	"crazygenerics/internal/adapters/out/memory"
	"crazygenerics/internal/adapters/out/postgres"
	"crazygenerics/internal/adapters/out/postgres/entityrepo"
	sqliterepo "crazygenerics/internal/adapters/out/sqlite/entityrepo"
	"crazygenerics/internal/core/application/usecases/commands"
	"crazygenerics/internal/core/application/usecases/queries"
	"crazygenerics/internal/core/domain/model/kernel"
	"crazygenerics/internal/core/ports"
	"crazygenerics/internal/jobs"
)

type CompositionRoot struct {
	config     Config
	logger     *slog.Logger
	now        func() time.Time
	repository ports.EntityRepository
	closers    []func() error
}

// NewCompositionRoot opens the storage selected by config.
func NewCompositionRoot(ctx context.Context, config Config, logger *slog.Logger) (*CompositionRoot, error) {
	root := &CompositionRoot{
		config: config,
		logger: logger,
		now:    time.Now,
	}

	switch config.Storage {
	case StorageMemory:
		root.repository = memory.NewListRepository[*kernel.BaseEntity]()
	case StoragePostgres:
		db, err := postgres.Open(config.PostgresSettings().DSN())
		if err != nil {
			return nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		root.closers = append(root.closers, sqlDB.Close)
		root.repository = entityrepo.NewGormEntityRepository(db)
	case StorageSQLite:
		repo, err := sqliterepo.Open(ctx, config.SQLitePath)
		if err != nil {
			return nil, err
		}
		root.closers = append(root.closers, repo.Close)
		root.repository = repo
	default:
		return nil, fmt.Errorf("unknown storage %q", config.Storage)
	}

	logger.InfoContext(ctx, "Storage opened", "storage", config.Storage)
	return root, nil
}

// Close releases the storage connections.
func (c *CompositionRoot) Close() error {
	var closeErrors []error
	for _, closeFn := range c.closers {
		closeErrors = append(closeErrors, closeFn())
	}
	c.closers = nil
	return errors.Join(closeErrors...)
}

func (c *CompositionRoot) Repository() ports.EntityRepository {
	return c.repository
}

func (c *CompositionRoot) CreateRegisterEntityCommandHandler() commands.RegisterEntityCommandHandler {
	return commands.NewRegisterEntityCommandHandler(c.repository)
}

func (c *CompositionRoot) CreateGetEntitiesQueryHandler() queries.GetEntitiesQueryHandler {
	return queries.NewGetEntitiesQueryHandler(c.repository)
}

func (c *CompositionRoot) CreateGetLatestEntityQueryHandler() queries.GetLatestEntityQueryHandler {
	return queries.NewGetLatestEntityQueryHandler(c.repository)
}

func (c *CompositionRoot) CreateGetCollectionReportQueryHandler() queries.GetCollectionReportQueryHandler {
	return queries.NewGetCollectionReportQueryHandler(c.repository, c.now)
}

func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(
		c.config.Storage,
		c.now,
		c.CreateRegisterEntityCommandHandler(),
		c.CreateGetEntitiesQueryHandler(),
		c.CreateGetLatestEntityQueryHandler(),
		c.CreateGetCollectionReportQueryHandler(),
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGetEntitiesQueryHandler(), c.config.AuditSchedule, c.logger)
}
