package collections

import (
	"time"

	"crazygenerics/internal/core/domain/model/kernel"
	"crazygenerics/internal/pkg/errs"
)

// CreatedOnComparator orders entities by creation time, oldest first.
func CreatedOnComparator[E kernel.Entity](a, b E) int {
	return a.CreatedOn().Compare(b.CreatedOn())
}

// HasNewEntities reports whether at least one entity has no persistent identity yet.
func HasNewEntities[E kernel.Entity](entities []E) bool {
	for _, e := range entities {
		if e.ID() == nil {
			return true
		}
	}
	return false
}

// IsValidCollection reports whether every entity satisfies valid.
// It is true for an empty collection.
func IsValidCollection[E kernel.Entity](entities []E, valid func(E) bool) bool {
	for _, e := range entities {
		if !valid(e) {
			return false
		}
	}
	return true
}

// HasDuplicates reports whether more than one entity shares target's UUID.
// target itself is counted when present, so a collection holding target once
// has no duplicates while one holding it twice does.
func HasDuplicates[E kernel.Entity](entities []E, target E) bool {
	key := target.UUID()
	count := 0
	for _, e := range entities {
		if e.UUID().IsEqual(key) {
			count++
			if count > 1 {
				return true
			}
		}
	}
	return false
}

// FindMostRecentlyCreatedEntity returns the entity with the latest CreatedOn.
// The first of several entities created at the same instant wins.
//
// Returns:
//   - E: the newest entity
//   - error: *errs.NoSuchElementError (errs.ErrNoSuchElement) when entities is empty
func FindMostRecentlyCreatedEntity[E kernel.Entity](entities []E) (E, error) {
	latest, ok := FindMax(entities, CreatedOnComparator[E])
	if !ok {
		var zero E
		return zero, errs.NewNoSuchElementError("entities")
	}
	return latest, nil
}

// NotCreatedAfter returns a predicate accepting entities created at or before now.
func NotCreatedAfter[E kernel.Entity](now time.Time) func(E) bool {
	return func(e E) bool {
		return !e.CreatedOn().After(now)
	}
}
