package queries

import (
	"errors"
	"time"

	"cargospace/internal/core/domain/model/kernel"
	"cargospace/internal/pkg/errs"
	"cargospace/internal/pkg/guard"
)

var ErrGetUnsettledShipmentsQueryIsNotConstructed = errors.New(
	"GetUnsettledShipmentsQuery must be created via NewGetUnsettledShipmentsQuery constructor",
)

// GetUnsettledShipmentsQuery retrieves shipments that are still pending and
// have no settlement transaction after a cutoff. The settlement reminder job
// uses it to surface bookings nobody has paid for.
type GetUnsettledShipmentsQuery struct {
	cutoff time.Time

	guard guard.ConstructorGuard
}

// NewGetUnsettledShipmentsQuery creates a query for unsettled shipments
// booked before the cutoff.
func NewGetUnsettledShipmentsQuery(cutoff time.Time) (GetUnsettledShipmentsQuery, error) {
	if cutoff.IsZero() {
		return GetUnsettledShipmentsQuery{}, errs.NewValueIsRequiredError("cutoff")
	}
	return GetUnsettledShipmentsQuery{
		cutoff: cutoff,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUnsettledShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetUnsettledShipmentsQueryIsNotConstructed)
}

// Cutoff returns the booking-time cutoff.
func (q GetUnsettledShipmentsQuery) Cutoff() time.Time {
	return q.cutoff
}

// GetUnsettledShipmentsQueryResponse represents an unsettled shipment read
// model.
type GetUnsettledShipmentsQueryResponse struct {
	ID        kernel.UUID
	OwnerID   kernel.UUID
	GoodsType string
	CreatedAt time.Time
}
