package http

import (
	"time"

	"crazygenerics/internal/core/application/usecases/queries"
	"crazygenerics/internal/core/domain/model/generic"
	"crazygenerics/internal/core/domain/model/kernel"
)

// Error is the body of every failed response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewEntity is the optional body of POST /api/v1/entities.
type NewEntity struct {
	UUID      *string    `json:"uuid,omitempty"`
	CreatedOn *time.Time `json:"createdOn,omitempty"`
}

// Entity is the wire form of kernel.BaseEntity.
type Entity struct {
	ID        *int64    `json:"id"`
	UUID      string    `json:"uuid"`
	CreatedOn time.Time `json:"createdOn"`
}

// SourcedEntities tags a listing with the storage backend it was read from.
type SourcedEntities struct {
	Source string   `json:"source"`
	Value  []Entity `json:"value"`
}

// Report is the wire form of the collection report.
type Report struct {
	Count          int     `json:"count"`
	HasNewEntities bool    `json:"hasNewEntities"`
	AllValid       bool    `json:"allValid"`
	Latest         *Entity `json:"latest,omitempty"`
	HasDuplicates  *bool   `json:"hasDuplicates,omitempty"`
}

var entityToResponse generic.Converter[*kernel.BaseEntity, Entity] = generic.ConverterFunc[*kernel.BaseEntity, Entity](
	func(e *kernel.BaseEntity) Entity {
		return Entity{
			ID:        e.ID(),
			UUID:      e.UUID().String(),
			CreatedOn: e.CreatedOn(),
		}
	},
)

func sourcedToResponse(s *generic.Sourced[[]*kernel.BaseEntity]) SourcedEntities {
	return SourcedEntities{
		Source: s.Source(),
		Value:  generic.ConvertAll(entityToResponse, s.Value()),
	}
}

func reportToResponse(r queries.GetCollectionReportQueryResponse) Report {
	resp := Report{
		Count:          r.Count,
		HasNewEntities: r.HasNewEntities,
		AllValid:       r.AllValid,
		HasDuplicates:  r.HasDuplicates,
	}
	if r.Latest != nil {
		latest := entityToResponse.Convert(r.Latest)
		resp.Latest = &latest
	}
	return resp
}
