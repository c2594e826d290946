package queries

import (
	"context"

	"cargospace/internal/core/domain/model/kernel"
	"cargospace/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListTrackingEventsQueryHandler retrieves a shipment's tracking history
// from the database.
type ListTrackingEventsQueryHandler struct {
	db *gorm.DB
}

// NewListTrackingEventsQueryHandler creates a handler for tracking history
// queries.
func NewListTrackingEventsQueryHandler(db *gorm.DB) ListTrackingEventsQueryHandler {
	return ListTrackingEventsQueryHandler{db: db}
}

// Handle executes the query. A shipment with no events yet gets an empty
// slice; an unknown shipment fails with ObjectNotFound so callers can tell
// "no events" from "no such shipment". Events come back in append order via
// the insertion sequence, not by the caller-supplied timestamp.
func (h ListTrackingEventsQueryHandler) Handle(
	ctx context.Context,
	query ListTrackingEventsQuery,
) ([]ListTrackingEventsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var count int64
	err := h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*) FROM shipments WHERE id = ?
	`, query.ShipmentID().Bytes()).Row().Scan(&count)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, errs.NewObjectNotFoundError("shipmentID", query.ShipmentID())
	}

	events := make([]ListTrackingEventsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			event_type,
			location,
			details,
			timestamp
		FROM tracking_events
		WHERE shipment_id = ?
		ORDER BY seq
	`, query.ShipmentID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp ListTrackingEventsQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&resp.EventType,
			&resp.Location,
			&resp.Details,
			&resp.Timestamp,
		)
		if err != nil {
			return nil, err
		}

		eventID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = eventID

		events = append(events, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}
