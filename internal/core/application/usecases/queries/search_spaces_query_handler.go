package queries

import (
	"context"

	"cargospace/internal/core/domain/model/kernel"
	"cargospace/internal/core/domain/model/space"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SearchSpacesQueryHandler retrieves spaces matching a route search from the
// database. Uses direct SQL for optimal read performance in the CQRS
// pattern.
type SearchSpacesQueryHandler struct {
	db *gorm.DB
}

// NewSearchSpacesQueryHandler creates a handler for space search queries.
// Requires a GORM database connection for query execution.
func NewSearchSpacesQueryHandler(db *gorm.DB) SearchSpacesQueryHandler {
	return SearchSpacesQueryHandler{db: db}
}

// Handle executes the search. Source and destination are exact matches
// ANDed together; an empty filter matches all values on that side. Results
// are sorted by token ID for consistent output.
func (h SearchSpacesQueryHandler) Handle(
	ctx context.Context,
	query SearchSpacesQuery,
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
		WHERE (source = ? OR ? = '') AND (destination = ? OR ? = '')
		ORDER BY token_id
	`, query.Source(), query.Source(), query.Destination(), query.Destination()).Rows()
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
