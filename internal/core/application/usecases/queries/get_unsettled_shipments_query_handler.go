package queries

import (
	"context"

	"cargospace/internal/core/domain/model/kernel"
	"cargospace/internal/core/domain/model/shipment"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetUnsettledShipmentsQueryHandler retrieves pending shipments without a
// settlement transaction from the database.
type GetUnsettledShipmentsQueryHandler struct {
	db *gorm.DB
}

// NewGetUnsettledShipmentsQueryHandler creates a handler for unsettled
// shipment queries.
func NewGetUnsettledShipmentsQueryHandler(db *gorm.DB) GetUnsettledShipmentsQueryHandler {
	return GetUnsettledShipmentsQueryHandler{db: db}
}

// Handle executes the query. Returns pending shipments booked before the
// cutoff that no transaction references, oldest first.
func (h GetUnsettledShipmentsQueryHandler) Handle(
	ctx context.Context,
	query GetUnsettledShipmentsQuery,
) ([]GetUnsettledShipmentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	shipments := make([]GetUnsettledShipmentsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			s.id,
			s.owner_id,
			s.goods_type,
			s.created_at
		FROM shipments s
		LEFT JOIN transactions t ON t.shipment_id = s.id
		WHERE s.status = ?
		  AND t.id IS NULL
		  AND s.created_at < ?
		ORDER BY s.created_at
	`, shipment.Pending.String(), query.Cutoff()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetUnsettledShipmentsQueryResponse
		var id, ownerID uuid.UUID

		err = rows.Scan(
			&id,
			&ownerID,
			&resp.GoodsType,
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

		shipmentOwnerID, idErr := kernel.UUIDFromBytes(ownerID[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.OwnerID = shipmentOwnerID

		shipments = append(shipments, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return shipments, nil
}
