package cmd

import (
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"time"

	"crazygenerics/internal/adapters/out/memory"
	"crazygenerics/internal/core/domain/model/generic"
	"crazygenerics/internal/core/domain/model/kernel"
	"crazygenerics/internal/core/domain/services/collections"
)

var demoUUIDs = []string{
	"7c9e6679-7425-40de-944b-e07fc1f90ae7",
	"16fd2706-8baf-433b-82eb-8c7fada847da",
	"7c9e6679-7425-40de-944b-e07fc1f90ae7",
	"e4eaaaf2-d142-11e1-b3e4-080027620cdd",
}

// RunDemo builds a small entity collection relative to now and writes the
// answers of the collection utilities to w.
func RunDemo(ctx context.Context, w io.Writer, now time.Time) error {
	repo := memory.NewListRepository[*kernel.BaseEntity]()

	entities := make([]*kernel.BaseEntity, 0, len(demoUUIDs))
	for i, raw := range demoUUIDs {
		id, err := kernel.UUIDFromString(raw)
		if err != nil {
			return err
		}
		entity, err := kernel.NewBaseEntity(id, now.Add(time.Duration(i-len(demoUUIDs))*time.Hour))
		if err != nil {
			return err
		}
		entities = append(entities, entity)
	}
	// The last entity stays unsaved so the collection holds a new one.
	for _, entity := range entities[:len(entities)-1] {
		if err := repo.Save(ctx, entity); err != nil {
			return err
		}
	}
	stored, err := repo.EntityCollection(ctx)
	if err != nil {
		return err
	}
	all := append(stored, entities[len(entities)-1])

	p := &printer{w: w}
	sourced := generic.NewSourced(all, "memory")
	p.printf("Entities from %s:\n", sourced.Source())
	if err = collections.Fprint(w, sourced.Value()); err != nil {
		return err
	}

	p.printf("has new entities: %t\n", collections.HasNewEntities(all))
	p.printf("all valid: %t\n", collections.IsValidCollection(all, collections.NotCreatedAfter[*kernel.BaseEntity](now)))
	p.printf("first uuid duplicated: %t\n", collections.HasDuplicates(all, all[0]))
	p.printf("second uuid duplicated: %t\n", collections.HasDuplicates(all, all[1]))

	latest, err := collections.FindMostRecentlyCreatedEntity(all)
	if err != nil {
		return err
	}
	p.printf("most recent: %s\n", latest.UUID())

	if oldest, ok := collections.FindMax(all, func(a, b *kernel.BaseEntity) int {
		return collections.CreatedOnComparator(b, a)
	}); ok {
		p.printf("oldest: %s\n", oldest.UUID())
	}

	if err = collections.Swap(all, 0, len(all)-1); err != nil {
		return err
	}
	p.printf("after swap first is new: %t\n", all[0].IsNew())
	if err = collections.Swap(all, 0, len(all)); err != nil {
		p.printf("swap rejected: %v\n", err)
	}

	smaller := generic.ListOf(all[:2]...)
	p.printf("full collection compared to first two: %d\n", generic.List[*kernel.BaseEntity](all).CompareTo(smaller))

	count := generic.NewLimited(len(all), 1, 3)
	if err = count.Validate("count"); err != nil {
		p.printf("limit check: %v\n", err)
	}

	newest := generic.NewComparableMaxHolder[time.Time]()
	for _, entity := range all {
		newest.Put(entity.CreatedOn())
	}
	if value, ok := newest.Max(); ok {
		p.printf("newest createdOn: %s\n", value.Format(time.RFC3339))
	}

	var smallest *kernel.UUID
	var smallestBytes []byte
	var processor generic.StrictProcessor[kernel.UUID] = generic.StrictProcessorFunc[kernel.UUID](func(id kernel.UUID) {
		if smallest != nil && id.Compare(*smallest) >= 0 {
			return
		}
		data, marshalErr := id.MarshalBinary()
		if marshalErr != nil {
			return
		}
		smallest, smallestBytes = &id, data
	})
	for _, entity := range all {
		processor.Process(entity.UUID())
	}
	if smallest != nil {
		p.printf("smallest uuid: %s\n", hex.EncodeToString(smallestBytes))
	}

	return p.err
}

// printer remembers the first write error so the demo reads top to bottom.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}
