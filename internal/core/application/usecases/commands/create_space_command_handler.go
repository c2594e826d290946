package commands

import (
	"context"
	"errors"

	"cargospace/internal/core/domain/model/space"
	"cargospace/internal/pkg/errs"
)

// CreateSpaceCommandHandler handles the business logic for offering a new
// logistics space. Enforces the global uniqueness of the capacity token ID.
type CreateSpaceCommandHandler struct {
	uowFactory SpaceUoWFactory
}

// NewCreateSpaceCommandHandler creates a handler for space creation.
func NewCreateSpaceCommandHandler(uowFactory SpaceUoWFactory) CreateSpaceCommandHandler {
	return CreateSpaceCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the space creation command. Fails with
// ObjectAlreadyExists when the token ID is taken; the repository's unique
// index backs the pre-check against concurrent creators.
func (h *CreateSpaceCommandHandler) Handle(ctx context.Context, cmd CreateSpaceCommand) (*space.Space, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	spaceRepo := uow.SpaceRepository()

	_, err := spaceRepo.GetByTokenID(ctx, cmd.TokenID())
	if err == nil {
		return nil, errs.NewObjectAlreadyExistsError("tokenId", cmd.TokenID())
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	newSpace, err := space.NewSpace(
		cmd.SpaceID(),
		cmd.TokenID(),
		cmd.Source(),
		cmd.Destination(),
		cmd.Dimensions(),
		cmd.MaxWeight(),
		cmd.OwnerID(),
	)
	if err != nil {
		return nil, err
	}

	if err = spaceRepo.Add(ctx, newSpace); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newSpace, nil
}
