package queries

import (
	"context"
	"errors"

	"crazygenerics/internal/core/domain/model/kernel"
	"crazygenerics/internal/core/domain/services/collections"
	"crazygenerics/internal/core/ports"
	"crazygenerics/internal/pkg/guard"
)

var ErrGetLatestEntityQueryIsNotConstructed = errors.New(
	"GetLatestEntityQuery must be created via NewGetLatestEntityQuery constructor",
)

// GetLatestEntityQuery retrieves the most recently created entity.
type GetLatestEntityQuery struct {
	guard guard.ConstructorGuard
}

// NewGetLatestEntityQuery creates the query.
func NewGetLatestEntityQuery() GetLatestEntityQuery {
	return GetLatestEntityQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetLatestEntityQuery) Validate() error {
	return q.guard.Validate(ErrGetLatestEntityQueryIsNotConstructed)
}

// GetLatestEntityQueryHandler answers GetLatestEntityQuery.
type GetLatestEntityQueryHandler struct {
	repository ports.EntityRepository
}

// NewGetLatestEntityQueryHandler creates a handler backed by repository.
func NewGetLatestEntityQueryHandler(repository ports.EntityRepository) GetLatestEntityQueryHandler {
	return GetLatestEntityQueryHandler{repository: repository}
}

// Handle returns the entity with the latest creation time, or an error wrapping
// errs.ErrNoSuchElement when the collection is empty.
func (h GetLatestEntityQueryHandler) Handle(ctx context.Context, query GetLatestEntityQuery) (*kernel.BaseEntity, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	entities, err := h.repository.EntityCollection(ctx)
	if err != nil {
		return nil, err
	}

	return collections.FindMostRecentlyCreatedEntity(entities)
}
