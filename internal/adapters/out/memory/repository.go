// Package memory provides a slice-backed repository for tests, demos and the
// default "memory" storage backend.
package memory

import (
	"context"
	"slices"
	"sync"

	"crazygenerics/internal/core/domain/model/kernel"
	"crazygenerics/internal/core/ports"
)

// identityAssigner is implemented by entities that accept a persistent identity,
// such as *kernel.BaseEntity.
type identityAssigner interface {
	AssignID(id int64) error
}

// ListRepository keeps entities in insertion order. New entities that implement
// AssignID receive sequential identities starting at 1.
// It is safe for concurrent use.
type ListRepository[E kernel.Entity] struct {
	mu       sync.RWMutex
	entities []E
	lastID   int64
}

var _ ports.ListRepository[*kernel.BaseEntity] = (*ListRepository[*kernel.BaseEntity])(nil)

// NewListRepository creates an empty repository.
func NewListRepository[E kernel.Entity]() *ListRepository[E] {
	return &ListRepository[E]{}
}

// Save appends entity, assigning an identity when it has none.
func (r *ListRepository[E]) Save(ctx context.Context, entity E) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if v, ok := any(entity).(interface{ Validate() error }); ok {
		if err := v.Validate(); err != nil {
			return err
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if entity.ID() == nil {
		if assigner, ok := any(entity).(identityAssigner); ok {
			if err := assigner.AssignID(r.lastID + 1); err != nil {
				return err
			}
			r.lastID++
		}
	} else if id := *entity.ID(); id > r.lastID {
		r.lastID = id
	}

	r.entities = append(r.entities, entity)
	return nil
}

// EntityCollection returns a copy of the stored entities in insertion order.
func (r *ListRepository[E]) EntityCollection(ctx context.Context) ([]E, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.entities == nil {
		return []E{}, nil
	}
	return slices.Clone(r.entities), nil
}
