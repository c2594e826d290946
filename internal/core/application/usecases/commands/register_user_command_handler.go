package commands

import (
	"context"
	"errors"

	"cargospace/internal/core/domain/model/user"
	"cargospace/internal/pkg/errs"
)

// RegisterUserCommandHandler handles account registration.
type RegisterUserCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewRegisterUserCommandHandler creates a handler for user registration.
func NewRegisterUserCommandHandler(uowFactory UserUoWFactory) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration. Username, email and wallet address (when
// given) must each be unique; the pre-checks are advisory and the unique
// indexes have the final word.
func (h *RegisterUserCommandHandler) Handle(
	ctx context.Context,
	cmd RegisterUserCommand,
) (*user.User, error) {
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

	userRepo := uow.UserRepository()

	_, err := userRepo.GetByUsername(ctx, cmd.Username())
	if err == nil {
		return nil, errs.NewObjectAlreadyExistsError("username", cmd.Username())
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	_, err = userRepo.GetByEmail(ctx, cmd.Email())
	if err == nil {
		return nil, errs.NewObjectAlreadyExistsError("email", cmd.Email())
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	if cmd.WalletAddress() != "" {
		_, err = userRepo.GetByWalletAddress(ctx, cmd.WalletAddress())
		if err == nil {
			return nil, errs.NewObjectAlreadyExistsError("walletAddress", cmd.WalletAddress())
		}
		if !errors.Is(err, errs.ErrObjectNotFound) {
			return nil, err
		}
	}

	newUser, err := user.NewUser(
		cmd.UserID(),
		cmd.Username(),
		cmd.Email(),
		cmd.FirstName(),
		cmd.LastName(),
		cmd.Role(),
		cmd.WalletAddress(),
	)
	if err != nil {
		return nil, err
	}

	if err = userRepo.Add(ctx, newUser); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newUser, nil
}
