package queries

import (
	"context"

	"cargospace/internal/core/domain/model/kernel"
	"cargospace/internal/core/domain/model/space"
	"cargospace/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetSpaceByIDQueryHandler retrieves a single space from the database.
type GetSpaceByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetSpaceByIDQueryHandler creates a handler for single-space lookups.
func NewGetSpaceByIDQueryHandler(db *gorm.DB) GetSpaceByIDQueryHandler {
	return GetSpaceByIDQueryHandler{db: db}
}

// Handle executes the lookup. Fails with ObjectNotFound when no space has
// the requested ID.
func (h GetSpaceByIDQueryHandler) Handle(
	ctx context.Context,
	query GetSpaceByIDQuery,
) (*SearchSpacesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			token_id,
			source,
			destination,
			dimensions,
			max_weight,
			owner_id,
			status
		FROM spaces
		WHERE id = ?
	`, query.SpaceID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return nil, err
		}
		return nil, errs.NewObjectNotFoundError("spaceID", query.SpaceID())
	}

	var resp SearchSpacesQueryResponse
	var id, ownerID uuid.UUID
	var status string

	err = rows.Scan(
		&id,
		&resp.TokenID,
		&resp.Source,
		&resp.Destination,
		&resp.Dimensions,
		&resp.MaxWeight,
		&ownerID,
		&status,
	)
	if err != nil {
		return nil, err
	}

	spaceID, idErr := kernel.UUIDFromBytes(id[:])
	if idErr != nil {
		return nil, idErr
	}
	resp.ID = spaceID

	spaceOwnerID, idErr := kernel.UUIDFromBytes(ownerID[:])
	if idErr != nil {
		return nil, idErr
	}
	resp.OwnerID = spaceOwnerID

	spaceStatus, statusErr := space.StatusFromString(status)
	if statusErr != nil {
		return nil, statusErr
	}
	resp.Status = spaceStatus

	return &resp, nil
}
