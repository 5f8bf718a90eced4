package user

import (
	"shareit-backend/internal/domain"
)

// User is the aggregate root for a registered user. The id is assigned by
// the store on first save and never changes afterwards.
type User struct {
	id    int64
	name  string
	email string
}

// New creates a new user pending its first save (id is zero until then).
func New(name, email string) (*User, error) {
	if name == "" {
		return nil, domain.NewBadRequestError("User name can't be empty")
	}
	if email == "" {
		return nil, domain.NewBadRequestError("User email can't be empty")
	}
	return &User{name: name, email: email}, nil
}

// Reconstruct rebuilds a User from persistence data (no validation).
func Reconstruct(id int64, name, email string) *User {
	return &User{id: id, name: name, email: email}
}

func (u *User) ID() int64     { return u.id }
func (u *User) Name() string  { return u.name }
func (u *User) Email() string { return u.email }

// ApplyUpdate applies a partial update. Nil fields leave the stored value
// unchanged.
func (u *User) ApplyUpdate(name, email *string) {
	if name != nil {
		u.name = *name
	}
	if email != nil {
		u.email = *email
	}
}
