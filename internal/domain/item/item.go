package item

import (
	"shareit-backend/internal/domain"
)

// Item is the aggregate root for a listed item. The availability flag
// gates booking creation; requestID links the item to the request that
// prompted its listing, when there is one.
type Item struct {
	id          int64
	name        string
	description string
	available   bool
	ownerID     int64
	requestID   *int64
}

// New creates a new item owned by ownerID. A nil available flag defaults
// to true.
func New(ownerID int64, name, description string, available *bool, requestID *int64) (*Item, error) {
	if name == "" {
		return nil, domain.NewBadRequestError("Item name can't be empty")
	}
	if description == "" {
		return nil, domain.NewBadRequestError("Item description can't be empty")
	}
	av := true
	if available != nil {
		av = *available
	}
	return &Item{
		name:        name,
		description: description,
		available:   av,
		ownerID:     ownerID,
		requestID:   requestID,
	}, nil
}

// Reconstruct rebuilds an Item from persistence data (no validation).
func Reconstruct(id int64, name, description string, available bool, ownerID int64, requestID *int64) *Item {
	return &Item{
		id:          id,
		name:        name,
		description: description,
		available:   available,
		ownerID:     ownerID,
		requestID:   requestID,
	}
}

func (i *Item) ID() int64           { return i.id }
func (i *Item) Name() string        { return i.name }
func (i *Item) Description() string { return i.description }
func (i *Item) Available() bool     { return i.available }
func (i *Item) OwnerID() int64      { return i.ownerID }
func (i *Item) RequestID() *int64   { return i.requestID }

// ApplyUpdate applies a partial update. Nil fields leave the stored value
// unchanged.
func (i *Item) ApplyUpdate(name, description *string, available *bool) {
	if name != nil {
		i.name = *name
	}
	if description != nil {
		i.description = *description
	}
	if available != nil {
		i.available = *available
	}
}
