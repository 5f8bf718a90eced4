package booking

import "context"

// Repository defines the persistence contract for bookings.
type Repository interface {
	// FindByID retrieves a booking by id, or a domain not-found error.
	FindByID(ctx context.Context, id int64) (*Booking, error)

	// FindAllByBookerID retrieves every booking made by the given user.
	FindAllByBookerID(ctx context.Context, bookerID int64) ([]*Booking, error)

	// FindAllByItemOwnerID retrieves every booking of items owned by the
	// given user.
	FindAllByItemOwnerID(ctx context.Context, ownerID int64) ([]*Booking, error)

	// FindAllByItemID retrieves every booking of an item.
	FindAllByItemID(ctx context.Context, itemID int64) ([]*Booking, error)

	// FindAllByItemIDAndBookerID retrieves the bookings of an item made by
	// a specific user.
	FindAllByItemIDAndBookerID(ctx context.Context, itemID, bookerID int64) ([]*Booking, error)

	// Save persists a new booking and returns it with the assigned id.
	Save(ctx context.Context, b *Booking) (*Booking, error)

	// Update persists changes to an existing booking.
	Update(ctx context.Context, b *Booking) (*Booking, error)
}
