package request

import (
	"time"

	"shareit-backend/internal/domain"
)

// ItemRequest is a user's statement of need for an item that is not yet
// listed. Items created in response to it carry a back-reference.
type ItemRequest struct {
	id          int64
	description string
	requestorID int64
	created     time.Time
}

// New creates a new request with the given creation instant.
func New(requestorID int64, description string, created time.Time) (*ItemRequest, error) {
	if description == "" {
		return nil, domain.NewBadRequestError("Request description can't be empty")
	}
	return &ItemRequest{
		description: description,
		requestorID: requestorID,
		created:     created,
	}, nil
}

// Reconstruct rebuilds an ItemRequest from persistence data.
func Reconstruct(id, requestorID int64, description string, created time.Time) *ItemRequest {
	return &ItemRequest{
		id:          id,
		description: description,
		requestorID: requestorID,
		created:     created,
	}
}

func (r *ItemRequest) ID() int64          { return r.id }
func (r *ItemRequest) Description() string { return r.description }
func (r *ItemRequest) RequestorID() int64 { return r.requestorID }
func (r *ItemRequest) Created() time.Time { return r.created }
