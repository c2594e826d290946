package queries

import (
	"context"

	"cargospace/internal/core/domain/model/kernel"
	"cargospace/internal/core/domain/model/shipment"
	"cargospace/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetShipmentByIDQueryHandler retrieves a single shipment from the database.
type GetShipmentByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentByIDQueryHandler creates a handler for single-shipment
// lookups.
func NewGetShipmentByIDQueryHandler(db *gorm.DB) GetShipmentByIDQueryHandler {
	return GetShipmentByIDQueryHandler{db: db}
}

// Handle executes the lookup. Fails with ObjectNotFound when no shipment has
// the requested ID.
func (h GetShipmentByIDQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentByIDQuery,
) (*GetShipmentByIDQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			space_id,
			owner_id,
			goods_type,
			weight,
			status,
			created_at
		FROM shipments
		WHERE id = ?
	`, query.ShipmentID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return nil, err
		}
		return nil, errs.NewObjectNotFoundError("shipmentID", query.ShipmentID())
	}

	var resp GetShipmentByIDQueryResponse
	var id, spaceID, ownerID uuid.UUID
	var status string

	err = rows.Scan(
		&id,
		&spaceID,
		&ownerID,
		&resp.GoodsType,
		&resp.Weight,
		&status,
		&resp.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	shipmentID, idErr := kernel.UUIDFromBytes(id[:])
	if idErr != nil {
		return nil, idErr
	}
	resp.ID = shipmentID

	bookedSpaceID, idErr := kernel.UUIDFromBytes(spaceID[:])
	if idErr != nil {
		return nil, idErr
	}
	resp.SpaceID = bookedSpaceID

	shipmentOwnerID, idErr := kernel.UUIDFromBytes(ownerID[:])
	if idErr != nil {
		return nil, idErr
	}
	resp.OwnerID = shipmentOwnerID

	shipmentStatus, statusErr := shipment.StatusFromString(status)
	if statusErr != nil {
		return nil, statusErr
	}
	resp.Status = shipmentStatus

	return &resp, nil
}
