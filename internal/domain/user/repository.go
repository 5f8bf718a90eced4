package user

import "context"

// Repository defines the persistence contract for users.
type Repository interface {
	// FindByID retrieves a user by id, or a domain not-found error.
	FindByID(ctx context.Context, id int64) (*User, error)

	// FindByEmail retrieves a user by email. Returns (nil, nil) when no
	// user has that email.
	FindByEmail(ctx context.Context, email string) (*User, error)

	// FindAll retrieves every user ordered by id.
	FindAll(ctx context.Context) ([]*User, error)

	// Save persists a new user and returns it with the assigned id.
	Save(ctx context.Context, u *User) (*User, error)

	// Update persists changes to an existing user.
	Update(ctx context.Context, u *User) (*User, error)

	// DeleteByID removes a user by id.
	DeleteByID(ctx context.Context, id int64) error
}
