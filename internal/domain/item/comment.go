package item

import (
	"time"

	"shareit-backend/internal/domain"
)

// Comment is feedback left on an item by a user whose booking of it has
// completed.
type Comment struct {
	id       int64
	text     string
	itemID   int64
	authorID int64
	created  time.Time
}

// NewComment creates a new comment with the given creation instant.
func NewComment(itemID, authorID int64, text string, created time.Time) (*Comment, error) {
	if text == "" {
		return nil, domain.NewBadRequestError("Comment text can't be empty")
	}
	return &Comment{
		text:     text,
		itemID:   itemID,
		authorID: authorID,
		created:  created,
	}, nil
}

// ReconstructComment rebuilds a Comment from persistence data.
func ReconstructComment(id int64, itemID, authorID int64, text string, created time.Time) *Comment {
	return &Comment{
		id:       id,
		text:     text,
		itemID:   itemID,
		authorID: authorID,
		created:  created,
	}
}

func (c *Comment) ID() int64          { return c.id }
func (c *Comment) Text() string       { return c.text }
func (c *Comment) ItemID() int64      { return c.itemID }
func (c *Comment) AuthorID() int64    { return c.authorID }
func (c *Comment) Created() time.Time { return c.created }
