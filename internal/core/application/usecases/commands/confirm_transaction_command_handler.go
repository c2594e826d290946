package commands

import (
	"context"

	"cargospace/internal/core/domain/model/transaction"
)

// ConfirmTransactionCommandHandler handles settlement completion. It only
// touches the transaction; the shipment was already confirmed when the
// transaction was opened.
type ConfirmTransactionCommandHandler struct {
	uowFactory TransactionUoWFactory
}

// NewConfirmTransactionCommandHandler creates a handler for transaction
// completion.
func NewConfirmTransactionCommandHandler(
	uowFactory TransactionUoWFactory,
) ConfirmTransactionCommandHandler {
	return ConfirmTransactionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the completion. Fails with ObjectNotFound when the
// transaction does not exist and Conflict when it was already completed.
func (h *ConfirmTransactionCommandHandler) Handle(
	ctx context.Context,
	cmd ConfirmTransactionCommand,
) (*transaction.Transaction, error) {
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

	transactionRepo := uow.TransactionRepository()

	tr, err := transactionRepo.Get(ctx, cmd.TransactionID())
	if err != nil {
		return nil, err
	}

	if err = tr.Complete(cmd.BlockchainTxHash()); err != nil {
		return nil, err
	}

	if err = transactionRepo.Update(ctx, tr); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return tr, nil
}
