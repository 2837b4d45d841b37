package queries

import (
	"context"
	"errors"

	"crazygenerics/internal/core/domain/model/kernel"
	"crazygenerics/internal/core/ports"
	"crazygenerics/internal/pkg/guard"
)

var ErrGetEntitiesQueryIsNotConstructed = errors.New(
	"GetEntitiesQuery must be created via NewGetEntitiesQuery constructor",
)

// GetEntitiesQuery retrieves the whole entity collection.
type GetEntitiesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetEntitiesQuery creates the query.
func NewGetEntitiesQuery() GetEntitiesQuery {
	return GetEntitiesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetEntitiesQuery) Validate() error {
	return q.guard.Validate(ErrGetEntitiesQueryIsNotConstructed)
}

// GetEntitiesQueryHandler answers GetEntitiesQuery from the repository.
type GetEntitiesQueryHandler struct {
	repository ports.EntityRepository
}

// NewGetEntitiesQueryHandler creates a handler backed by repository.
func NewGetEntitiesQueryHandler(repository ports.EntityRepository) GetEntitiesQueryHandler {
	return GetEntitiesQueryHandler{repository: repository}
}

// Handle returns every stored entity in repository order.
func (h GetEntitiesQueryHandler) Handle(ctx context.Context, query GetEntitiesQuery) ([]*kernel.BaseEntity, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return h.repository.EntityCollection(ctx)
}
