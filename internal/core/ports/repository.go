// Package ports declares the contracts the application core expects from
// persistence adapters.
package ports

import (
	"context"

	"crazygenerics/internal/core/domain/model/kernel"
)

// CollectionRepository stores entities of type E and hands them back as a
// container of type C.
//
// Implementations decide how identities are assigned; after a successful Save
// the stored copy of the entity has a non-nil ID.
type CollectionRepository[E kernel.Entity, C any] interface {
	// Save persists entity.
	Save(ctx context.Context, entity E) error

	// EntityCollection returns every stored entity. The returned container is
	// owned by the caller.
	EntityCollection(ctx context.Context) (C, error)
}

// ListRepository is a CollectionRepository whose container is an ordered,
// indexable slice in insertion order.
type ListRepository[E kernel.Entity] = CollectionRepository[E, []E]

// EntityRepository is the repository the application layer is wired with.
type EntityRepository = ListRepository[*kernel.BaseEntity]
