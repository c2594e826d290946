package queries

import (
	"context"

	"cargospace/internal/core/domain/model/kernel"
	"cargospace/internal/core/domain/model/space"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetSpacesByOwnerQueryHandler retrieves an owner's spaces from the
// database.
type GetSpacesByOwnerQueryHandler struct {
	db *gorm.DB
}

// NewGetSpacesByOwnerQueryHandler creates a handler for owner space
// listings.
func NewGetSpacesByOwnerQueryHandler(db *gorm.DB) GetSpacesByOwnerQueryHandler {
	return GetSpacesByOwnerQueryHandler{db: db}
}

// Handle executes the listing. An owner with no spaces gets an empty slice.
func (h GetSpacesByOwnerQueryHandler) Handle(
	ctx context.Context,
	query GetSpacesByOwnerQuery,
) ([]SearchSpacesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	spaces := make([]SearchSpacesQueryResponse, 0)

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
		WHERE owner_id = ?
		ORDER BY token_id
	`, query.OwnerID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
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

		spaces = append(spaces, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return spaces, nil
}
