package entityrepo

import (
	"context"

	"crazygenerics/internal/core/domain/model/kernel"
	"crazygenerics/internal/core/ports"

	"gorm.io/gorm"
)

// GormEntityRepository implements ports.EntityRepository using GORM.
type GormEntityRepository struct {
	db *gorm.DB
}

var _ ports.EntityRepository = (*GormEntityRepository)(nil)

// NewGormEntityRepository creates a new GORM entity repository.
func NewGormEntityRepository(db *gorm.DB) *GormEntityRepository {
	return &GormEntityRepository{db: db}
}

// Save inserts a new entity, or upserts a restored one by ID. A new entity
// receives the database-generated ID.
func (r *GormEntityRepository) Save(ctx context.Context, entity *kernel.BaseEntity) error {
	id, err := r.write(ctx, r.db, entity)
	if err != nil {
		return err
	}

	if entity.IsNew() {
		return entity.AssignID(id)
	}
	return nil
}

// SaveAll saves every entity in one transaction; either all rows are written or none.
// Identities are assigned only after the transaction commits.
func (r *GormEntityRepository) SaveAll(ctx context.Context, entities []*kernel.BaseEntity) error {
	ids := make([]int64, len(entities))
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i, e := range entities {
			id, err := r.write(ctx, tx, e)
			if err != nil {
				return err
			}
			ids[i] = id
		}
		return nil
	})
	if err != nil {
		return err
	}

	for i, e := range entities {
		if e.IsNew() {
			if err = e.AssignID(ids[i]); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *GormEntityRepository) write(ctx context.Context, db *gorm.DB, entity *kernel.BaseEntity) (int64, error) {
	if err := entity.Validate(); err != nil {
		return 0, err
	}

	dto := fromDomain.Convert(entity)
	if err := db.WithContext(ctx).Save(&dto).Error; err != nil {
		return 0, err
	}
	return dto.ID, nil
}

// EntityCollection returns every stored entity ordered by ID.
func (r *GormEntityRepository) EntityCollection(ctx context.Context) ([]*kernel.BaseEntity, error) {
	var dtos []EntityDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	entities := make([]*kernel.BaseEntity, 0, len(dtos))
	for _, dto := range dtos {
		e, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		entities = append(entities, e)
	}

	return entities, nil
}
