package queries

import (
	"context"
	"errors"
	"time"

	"crazygenerics/internal/core/domain/model/kernel"
	"crazygenerics/internal/core/domain/services/collections"
	"crazygenerics/internal/core/ports"
	"crazygenerics/internal/pkg/guard"
)

var ErrGetCollectionReportQueryIsNotConstructed = errors.New(
	"GetCollectionReportQuery must be created via NewGetCollectionReportQuery constructor",
)

// GetCollectionReportQuery summarizes the entity collection. When a target UUID
// is given the report also tells whether that key is duplicated.
//
// Example:
//
//	target := kernel.NewUUID()
//	query, _ := NewGetCollectionReportQuery(&target)
//	report, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(report.Count, *report.HasDuplicates)
type GetCollectionReportQuery struct {
	target *kernel.UUID
	guard  guard.ConstructorGuard
}

// NewGetCollectionReportQuery creates the query. target may be nil.
func NewGetCollectionReportQuery(target *kernel.UUID) (GetCollectionReportQuery, error) {
	if target != nil {
		if err := target.Validate(); err != nil {
			return GetCollectionReportQuery{}, err
		}
		t := *target
		target = &t
	}
	return GetCollectionReportQuery{target: target, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCollectionReportQuery) Validate() error {
	return q.guard.Validate(ErrGetCollectionReportQueryIsNotConstructed)
}

// Target returns the UUID checked for duplicates, or nil.
func (q GetCollectionReportQuery) Target() *kernel.UUID {
	return q.target
}

// GetCollectionReportQueryResponse is the read model of the report.
type GetCollectionReportQueryResponse struct {
	// Count is the number of stored entities
	Count int
	// HasNewEntities is true when some entity has no identity yet
	HasNewEntities bool
	// AllValid is true when no entity claims to be created in the future
	AllValid bool
	// Latest is the most recently created entity; nil for an empty collection
	Latest *kernel.BaseEntity
	// HasDuplicates is set only when the query named a target
	HasDuplicates *bool
}

// GetCollectionReportQueryHandler answers GetCollectionReportQuery.
type GetCollectionReportQueryHandler struct {
	repository ports.EntityRepository
	now        func() time.Time
}

// NewGetCollectionReportQueryHandler creates a handler backed by repository.
// now supplies the reference time for the validity check; nil means time.Now.
func NewGetCollectionReportQueryHandler(
	repository ports.EntityRepository,
	now func() time.Time,
) GetCollectionReportQueryHandler {
	if now == nil {
		now = time.Now
	}
	return GetCollectionReportQueryHandler{repository: repository, now: now}
}

// Handle builds the report from a single repository snapshot.
func (h GetCollectionReportQueryHandler) Handle(
	ctx context.Context,
	query GetCollectionReportQuery,
) (GetCollectionReportQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCollectionReportQueryResponse{}, err
	}

	entities, err := h.repository.EntityCollection(ctx)
	if err != nil {
		return GetCollectionReportQueryResponse{}, err
	}

	now := h.now()
	report := GetCollectionReportQueryResponse{
		Count:          len(entities),
		HasNewEntities: collections.HasNewEntities(entities),
		AllValid:       collections.IsValidCollection(entities, collections.NotCreatedAfter[*kernel.BaseEntity](now)),
	}

	if latest, findErr := collections.FindMostRecentlyCreatedEntity(entities); findErr == nil {
		report.Latest = latest
	}

	if target := query.Target(); target != nil {
		probe, probeErr := kernel.NewBaseEntity(*target, now)
		if probeErr != nil {
			return GetCollectionReportQueryResponse{}, probeErr
		}
		duplicated := collections.HasDuplicates(entities, probe)
		report.HasDuplicates = &duplicated
	}

	return report, nil
}
