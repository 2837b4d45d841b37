// Package entityrepo persists kernel.BaseEntity values with GORM.
package entityrepo

import (
	"time"

	"crazygenerics/internal/core/domain/model/generic"
	"crazygenerics/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// EntityDTO is the row layout of the entities table. UUID is indexed but not
// unique: duplicates are legal and detected by the collection utilities.
type EntityDTO struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	UUID      uuid.UUID `gorm:"type:uuid;index;not null"`
	CreatedOn time.Time `gorm:"not null"`
}

// TableName overrides GORM's default naming.
func (EntityDTO) TableName() string {
	return "entities"
}

// fromDomain maps an entity to its row; a new entity maps to ID 0 so the
// database assigns one.
var fromDomain generic.Converter[*kernel.BaseEntity, EntityDTO] = generic.ConverterFunc[*kernel.BaseEntity, EntityDTO](
	func(entity *kernel.BaseEntity) EntityDTO {
		var id int64
		if entity.ID() != nil {
			id = *entity.ID()
		}
		return EntityDTO{
			ID:        id,
			UUID:      entity.UUID().Bytes(),
			CreatedOn: entity.CreatedOn(),
		}
	},
)

// toDomain restores an entity from its row.
func toDomain(dto EntityDTO) (*kernel.BaseEntity, error) {
	id, err := kernel.UUIDFromBytes(dto.UUID[:])
	if err != nil {
		return nil, err
	}

	return kernel.RestoreBaseEntity(dto.ID, id, dto.CreatedOn)
}
