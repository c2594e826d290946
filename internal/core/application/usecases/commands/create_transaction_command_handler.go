package commands

import (
	"context"
	"errors"

	"cargospace/internal/core/domain/model/shipment"
	"cargospace/internal/core/domain/model/transaction"
	"cargospace/internal/core/ports"
	"cargospace/internal/pkg/errs"
)

// CreateTransactionCommandHandler handles opening a settlement transaction
// for a shipment. Creating one confirms the shipment: the booking is funded
// even if the money has not moved on chain yet.
type CreateTransactionCommandHandler struct {
	uowFactory SettlementUoWFactory
	publisher  ports.ShipmentEventPublisher
}

// NewCreateTransactionCommandHandler creates a handler for settlement
// transactions.
func NewCreateTransactionCommandHandler(
	uowFactory SettlementUoWFactory,
	publisher ports.ShipmentEventPublisher,
) CreateTransactionCommandHandler {
	return CreateTransactionCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes transaction creation. At most one transaction may exist
// per shipment, so a second create fails with Conflict. The pre-check is
// advisory; the unique index on shipment_id closes the race between two
// concurrent creates. Fails with ObjectNotFound when the shipment does not
// exist.
func (h *CreateTransactionCommandHandler) Handle(
	ctx context.Context,
	cmd CreateTransactionCommand,
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

	shipmentRepo := uow.ShipmentRepository()

	sh, err := shipmentRepo.Get(ctx, cmd.ShipmentID())
	if err != nil {
		return nil, err
	}

	transactionRepo := uow.TransactionRepository()

	_, err = transactionRepo.GetByShipmentID(ctx, cmd.ShipmentID())
	if err == nil {
		return nil, errs.NewConflictError("transaction already exists for this shipment")
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	newTransaction, err := transaction.NewTransaction(
		cmd.TransactionID(),
		cmd.ShipmentID(),
		cmd.Amount(),
	)
	if err != nil {
		return nil, err
	}

	if err = transactionRepo.Add(ctx, newTransaction); err != nil {
		return nil, err
	}

	// Confirm only from pending: tracking ingest may already have moved the
	// shipment further along, and settlement must not pull it back.
	confirmed := false
	if sh.Status() == shipment.Pending {
		if err = sh.AdvanceTo(shipment.Confirmed); err != nil {
			return nil, err
		}
		if err = shipmentRepo.Update(ctx, sh); err != nil {
			return nil, err
		}
		confirmed = true
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if confirmed {
		_ = h.publisher.PublishStatusChanged(ctx, sh.ID(), sh.Status())
	}

	return newTransaction, nil
}
