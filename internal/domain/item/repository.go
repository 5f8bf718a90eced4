package item

import "context"

// Repository defines the persistence contract for items.
type Repository interface {
	// FindByID retrieves an item by id, or a domain not-found error.
	FindByID(ctx context.Context, id int64) (*Item, error)

	// FindAllByOwnerID retrieves every item owned by the given user,
	// ordered by id.
	FindAllByOwnerID(ctx context.Context, ownerID int64) ([]*Item, error)

	// FindAllByRequestID retrieves the items listed in response to a
	// request.
	FindAllByRequestID(ctx context.Context, requestID int64) ([]*Item, error)

	// Search retrieves available items whose name or description contains
	// the given text, case-insensitively.
	Search(ctx context.Context, text string) ([]*Item, error)

	// Save persists a new item and returns it with the assigned id.
	Save(ctx context.Context, i *Item) (*Item, error)

	// Update persists changes to an existing item.
	Update(ctx context.Context, i *Item) (*Item, error)
}

// CommentRepository defines the persistence contract for item comments.
type CommentRepository interface {
	// FindAllByItemID retrieves the comments on an item, oldest first.
	FindAllByItemID(ctx context.Context, itemID int64) ([]*Comment, error)

	// Save persists a new comment and returns it with the assigned id.
	Save(ctx context.Context, c *Comment) (*Comment, error)
}
