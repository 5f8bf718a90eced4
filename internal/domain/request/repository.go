package request

import "context"

// Repository defines the persistence contract for item requests.
type Repository interface {
	// FindByID retrieves a request by id, or a domain not-found error.
	FindByID(ctx context.Context, id int64) (*ItemRequest, error)

	// FindAllByRequestorID retrieves the requests created by a user,
	// newest first.
	FindAllByRequestorID(ctx context.Context, requestorID int64) ([]*ItemRequest, error)

	// FindAllByOtherUsers retrieves requests created by everyone except the
	// given user, newest first, with offset pagination.
	FindAllByOtherUsers(ctx context.Context, userID int64, from, size int) ([]*ItemRequest, error)

	// Save persists a new request and returns it with the assigned id.
	Save(ctx context.Context, r *ItemRequest) (*ItemRequest, error)
}
