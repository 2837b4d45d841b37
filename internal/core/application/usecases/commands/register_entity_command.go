package commands

import (
	"errors"
	"time"

	"crazygenerics/internal/core/domain/model/kernel"
	"crazygenerics/internal/pkg/guard"
)

var (
	ErrRegisterEntityCommandIsNotConstructed = errors.New(
		"RegisterEntityCommand must be created via NewRegisterEntityCommand constructor",
	)
	ErrCreatedOnIsRequired = errors.New("createdOn is required")
)

// RegisterEntityCommand asks for a new entity with the given deduplication key
// and creation time to be stored.
//
// Example:
//
//	cmd, err := NewRegisterEntityCommand(kernel.NewUUID(), time.Now())
//	if err != nil {
//	    return fmt.Errorf("invalid entity data: %w", err)
//	}
//	entity, err := handler.Handle(ctx, cmd)
type RegisterEntityCommand struct { //nolint:recvcheck //using for validation
	uuid      kernel.UUID
	createdOn time.Time

	guard guard.ConstructorGuard
}

// NewRegisterEntityCommand validates uuid and createdOn and builds the command.
func NewRegisterEntityCommand(uuid kernel.UUID, createdOn time.Time) (RegisterEntityCommand, error) {
	cmd := RegisterEntityCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUUID(uuid),
		cmd.setCreatedOn(createdOn),
	); err != nil {
		return RegisterEntityCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterEntityCommand) Validate() error {
	return c.guard.Validate(ErrRegisterEntityCommandIsNotConstructed)
}

// UUID returns the deduplication key of the entity to register.
func (c RegisterEntityCommand) UUID() kernel.UUID {
	return c.uuid
}

// CreatedOn returns the creation time of the entity to register.
func (c RegisterEntityCommand) CreatedOn() time.Time {
	return c.createdOn
}

func (c *RegisterEntityCommand) setUUID(uuid kernel.UUID) error {
	if err := uuid.Validate(); err != nil {
		return err
	}

	c.uuid = uuid
	return nil
}

func (c *RegisterEntityCommand) setCreatedOn(createdOn time.Time) error {
	if createdOn.IsZero() {
		return ErrCreatedOnIsRequired
	}

	c.createdOn = createdOn
	return nil
}
