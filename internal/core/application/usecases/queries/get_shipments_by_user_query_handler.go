package queries

import (
	"context"

	"cargospace/internal/core/domain/model/kernel"
	"cargospace/internal/core/domain/model/shipment"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetShipmentsByUserQueryHandler retrieves a user's shipments from the
// database.
type GetShipmentsByUserQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentsByUserQueryHandler creates a handler for user shipment
// queries.
func NewGetShipmentsByUserQueryHandler(db *gorm.DB) GetShipmentsByUserQueryHandler {
	return GetShipmentsByUserQueryHandler{db: db}
}

// Handle executes the query. Returns the user's shipments newest first; a
// user with no shipments gets an empty slice, not an error.
func (h GetShipmentsByUserQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentsByUserQuery,
) ([]GetShipmentsByUserQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	shipments := make([]GetShipmentsByUserQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			space_id,
			goods_type,
			weight,
			status,
			created_at
		FROM shipments
		WHERE owner_id = ?
		ORDER BY created_at DESC
	`, query.OwnerID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetShipmentsByUserQueryResponse
		var id, spaceID uuid.UUID
		var status string

		err = rows.Scan(
			&id,
			&spaceID,
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

		shipmentSpaceID, idErr := kernel.UUIDFromBytes(spaceID[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.SpaceID = shipmentSpaceID

		shipmentStatus, statusErr := shipment.StatusFromString(status)
		if statusErr != nil {
			return nil, statusErr
		}
		resp.Status = shipmentStatus

		shipments = append(shipments, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return shipments, nil
}
