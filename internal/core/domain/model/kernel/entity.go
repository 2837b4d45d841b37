package kernel

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"crazygenerics/internal/pkg/errs"
	"crazygenerics/internal/pkg/guard"
)

var (
	// ErrBaseEntityIsNotConstructed is returned when a BaseEntity was not created through
	// NewBaseEntity or RestoreBaseEntity.
	ErrBaseEntityIsNotConstructed = errors.New("BaseEntity must be created via NewBaseEntity or RestoreBaseEntity")
	// ErrCreatedOnIsRequired is returned for a zero creation timestamp.
	ErrCreatedOnIsRequired = errs.NewValueIsRequiredError("createdOn")
	// ErrIDIsInvalid is returned for a non-positive persistent identity.
	ErrIDIsInvalid = errs.NewValueIsInvalidError("id")
	// ErrIDAlreadyAssigned is returned when AssignID is called on a persisted entity.
	ErrIDAlreadyAssigned = errors.New("entity identity is already assigned")
)

// Entity is the shape every collection utility and repository works with.
//
// Key properties:
//   - ID is the persistent identity; nil means the entity has not been saved yet
//   - UUID is the stable deduplication key, assigned at creation
//   - CreatedOn orders entities by creation time
type Entity interface {
	ID() *int64
	UUID() UUID
	CreatedOn() time.Time
}

// BaseEntity is the default Entity implementation.
//
// Business rules:
//   - UUID must be valid
//   - CreatedOn must be set
//   - ID, once assigned, is positive and never changes
//
// Example usage:
//
//	entity, err := kernel.NewBaseEntity(kernel.NewUUID(), time.Now())
//	if err != nil {
//	    // handle error
//	}
//	entity.IsNew() // true until a repository assigns an ID
type BaseEntity struct {
	// id is nil until the entity is persisted
	id *int64
	// uuid is the deduplication key
	uuid UUID
	// createdOn is the creation timestamp
	createdOn time.Time
	// guard ensures the entity was properly constructed
	guard guard.ConstructorGuard
}

var _ Entity = (*BaseEntity)(nil)

// NewBaseEntity creates an entity that has not been persisted yet.
//
// Parameters:
//   - uuid: deduplication key (must be valid)
//   - createdOn: creation timestamp (must not be zero)
//
// Returns:
//   - *BaseEntity: entity with an absent identity
//   - error: joined validation errors
func NewBaseEntity(uuid UUID, createdOn time.Time) (*BaseEntity, error) {
	entity := &BaseEntity{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		entity.setUUID(uuid),
		entity.setCreatedOn(createdOn),
	); err != nil {
		return nil, err
	}

	return entity, nil
}

// RestoreBaseEntity reconstructs a persisted entity from storage.
func RestoreBaseEntity(id int64, uuid UUID, createdOn time.Time) (*BaseEntity, error) {
	entity, err := NewBaseEntity(uuid, createdOn)
	if err != nil {
		return nil, err
	}

	if err = entity.AssignID(id); err != nil {
		return nil, err
	}

	return entity, nil
}

// ID returns a copy of the persistent identity, or nil for a new entity.
func (e *BaseEntity) ID() *int64 {
	if e.id == nil {
		return nil
	}
	id := *e.id
	return &id
}

// UUID returns the deduplication key.
func (e *BaseEntity) UUID() UUID {
	return e.uuid
}

// CreatedOn returns the creation timestamp.
func (e *BaseEntity) CreatedOn() time.Time {
	return e.createdOn
}

// IsNew reports whether the entity still lacks a persistent identity.
func (e *BaseEntity) IsNew() bool {
	return e.id == nil
}

// AssignID sets the persistent identity. It can be called once.
func (e *BaseEntity) AssignID(id int64) error {
	if err := e.Validate(); err != nil {
		return err
	}
	if e.id != nil {
		return ErrIDAlreadyAssigned
	}
	if id <= 0 {
		return ErrIDIsInvalid
	}

	e.id = &id
	return nil
}

// Validate checks that the entity was built by a constructor.
func (e *BaseEntity) Validate() error {
	if e == nil {
		return ErrBaseEntityIsNotConstructed
	}
	return e.guard.Validate(ErrBaseEntityIsNotConstructed)
}

// String renders the entity for printing; a new entity shows id=<new>.
func (e *BaseEntity) String() string {
	id := "<new>"
	if e.id != nil {
		id = strconv.FormatInt(*e.id, 10)
	}
	return fmt.Sprintf("BaseEntity{id=%s, uuid=%s, createdOn=%s}", id, e.uuid, e.createdOn.Format(time.RFC3339Nano))
}

func (e *BaseEntity) setUUID(uuid UUID) error {
	if err := uuid.Validate(); err != nil {
		return err
	}

	e.uuid = uuid
	return nil
}

func (e *BaseEntity) setCreatedOn(createdOn time.Time) error {
	if createdOn.IsZero() {
		return ErrCreatedOnIsRequired
	}

	e.createdOn = createdOn
	return nil
}
