package commands

import (
	"context"

	"crazygenerics/internal/core/domain/model/kernel"
	"crazygenerics/internal/core/ports"
)

// RegisterEntityCommandHandler stores new entities through the configured repository.
type RegisterEntityCommandHandler struct {
	repository ports.EntityRepository
}

// NewRegisterEntityCommandHandler creates a handler backed by repository.
func NewRegisterEntityCommandHandler(repository ports.EntityRepository) RegisterEntityCommandHandler {
	return RegisterEntityCommandHandler{repository: repository}
}

// Handle builds the entity described by cmd and saves it. The returned entity
// carries the identity assigned by the repository.
func (h RegisterEntityCommandHandler) Handle(ctx context.Context, cmd RegisterEntityCommand) (*kernel.BaseEntity, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	entity, err := kernel.NewBaseEntity(cmd.UUID(), cmd.CreatedOn())
	if err != nil {
		return nil, err
	}

	if err = h.repository.Save(ctx, entity); err != nil {
		return nil, err
	}

	return entity, nil
}
