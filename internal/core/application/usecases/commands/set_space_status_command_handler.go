package commands

import (
	"context"

	"cargospace/internal/core/domain/model/space"
)

// SetSpaceStatusCommandHandler handles forced space status updates from the
// operator endpoint.
type SetSpaceStatusCommandHandler struct {
	uowFactory SpaceUoWFactory
}

// NewSetSpaceStatusCommandHandler creates a handler for space status
// updates.
func NewSetSpaceStatusCommandHandler(uowFactory SpaceUoWFactory) SetSpaceStatusCommandHandler {
	return SetSpaceStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status update. Fails with ObjectNotFound when the
// space does not exist; any valid status value is applied verbatim.
func (h *SetSpaceStatusCommandHandler) Handle(ctx context.Context, cmd SetSpaceStatusCommand) (*space.Space, error) {
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

	sp, err := spaceRepo.Get(ctx, cmd.SpaceID())
	if err != nil {
		return nil, err
	}

	if err = sp.SetStatus(cmd.Status()); err != nil {
		return nil, err
	}

	if err = spaceRepo.Update(ctx, sp); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return sp, nil
}
