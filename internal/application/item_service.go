package application

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"shareit-backend/internal/domain"
	bookingDomain "shareit-backend/internal/domain/booking"
	itemDomain "shareit-backend/internal/domain/item"
	userDomain "shareit-backend/internal/domain/user"
)

// CreateItemRequest is the request DTO for listing an item.
type CreateItemRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
	Available   *bool  `json:"available"`
	RequestID   *int64 `json:"requestId"`
}

// UpdateItemRequest is the request DTO for a partial item update. Nil
// fields leave the stored value unchanged.
type UpdateItemRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Available   *bool   `json:"available"`
}

// NearbyBookingDTO is the short booking projection shown to an item's
// owner.
type NearbyBookingDTO struct {
	ID       int64 `json:"id"`
	BookerID int64 `json:"bookerId"`
}

// CommentDTO is the API representation of an item comment.
type CommentDTO struct {
	ID         int64     `json:"id"`
	Text       string    `json:"text"`
	AuthorName string    `json:"authorName"`
	Created    time.Time `json:"created"`
}

// ItemDTO is the API representation of an item. LastBooking and
// NextBooking are populated only for the item's owner.
type ItemDTO struct {
	ID          int64             `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Available   bool              `json:"available"`
	OwnerID     int64             `json:"ownerId"`
	RequestID   *int64            `json:"requestId,omitempty"`
	LastBooking *NearbyBookingDTO `json:"lastBooking,omitempty"`
	NextBooking *NearbyBookingDTO `json:"nextBooking,omitempty"`
	Comments    []CommentDTO      `json:"comments"`
}

// ItemService implements use cases for item listing, search and comments.
type ItemService struct {
	items    itemDomain.Repository
	comments itemDomain.CommentRepository
	bookings bookingDomain.Repository
	users    userDomain.Repository
	logger   *zap.Logger
	now      func() time.Time
}

// NewItemService creates a new ItemService.
func NewItemService(
	items itemDomain.Repository,
	comments itemDomain.CommentRepository,
	bookings bookingDomain.Repository,
	users userDomain.Repository,
	logger *zap.Logger,
	now func() time.Time,
) *ItemService {
	return &ItemService{
		items:    items,
		comments: comments,
		bookings: bookings,
		users:    users,
		logger:   logger,
		now:      now,
	}
}

// Create lists a new item owned by the given user.
func (s *ItemService) Create(ctx context.Context, userID int64, req CreateItemRequest) (*ItemDTO, error) {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return nil, err
	}

	it, err := itemDomain.New(userID, req.Name, req.Description, req.Available, req.RequestID)
	if err != nil {
		return nil, err
	}

	saved, err := s.items.Save(ctx, it)
	if err != nil {
		return nil, err
	}

	s.logger.Info("item created",
		zap.Int64("item_id", saved.ID()),
		zap.Int64("owner_id", userID),
	)
	result := toItemDTO(saved)
	return &result, nil
}

// Update applies a partial update to an item. Only the current owner may
// update it.
func (s *ItemService) Update(ctx context.Context, userID, itemID int64, req UpdateItemRequest) (*ItemDTO, error) {
	it, err := s.items.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	if it.OwnerID() != userID {
		return nil, domain.NewForbiddenError(fmt.Sprintf(
			"User with id=%d is not the owner of the item with id=%d", userID, itemID))
	}

	it.ApplyUpdate(req.Name, req.Description, req.Available)

	updated, err := s.items.Update(ctx, it)
	if err != nil {
		return nil, err
	}

	s.logger.Info("item updated",
		zap.Int64("item_id", itemID),
		zap.Int64("owner_id", userID),
	)
	result := toItemDTO(updated)
	return &result, nil
}

// FindByID retrieves an item. The owner additionally sees the last and
// next booking projections; everyone sees the comments.
func (s *ItemService) FindByID(ctx context.Context, itemID, userID int64) (*ItemDTO, error) {
	it, err := s.items.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	dto := toItemDTO(it)
	if it.OwnerID() == userID {
		if err := s.attachBookings(ctx, &dto); err != nil {
			return nil, err
		}
	}
	if err := s.attachComments(ctx, &dto); err != nil {
		return nil, err
	}
	return &dto, nil
}

// FindAllByOwner retrieves the user's items, ordered by id, with booking
// projections and comments.
func (s *ItemService) FindAllByOwner(ctx context.Context, userID int64) ([]ItemDTO, error) {
	list, err := s.items.FindAllByOwnerID(ctx, userID)
	if err != nil {
		return nil, err
	}

	dtos := make([]ItemDTO, len(list))
	for i, it := range list {
		dto := toItemDTO(it)
		if err := s.attachBookings(ctx, &dto); err != nil {
			return nil, err
		}
		if err := s.attachComments(ctx, &dto); err != nil {
			return nil, err
		}
		dtos[i] = dto
	}
	return dtos, nil
}

// Search finds available items whose name or description contains the
// text. Empty text yields an empty list.
func (s *ItemService) Search(ctx context.Context, text string) ([]ItemDTO, error) {
	if text == "" {
		return []ItemDTO{}, nil
	}

	list, err := s.items.Search(ctx, text)
	if err != nil {
		return nil, err
	}

	dtos := make([]ItemDTO, len(list))
	for i, it := range list {
		dtos[i] = toItemDTO(it)
	}
	return dtos, nil
}

// AddComment creates a comment on an item. The author must have an
// approved booking of the item that has already started.
func (s *ItemService) AddComment(ctx context.Context, itemID, userID int64, text string) (*CommentDTO, error) {
	ok, err := s.hasCompletedBooking(ctx, itemID, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.NewBadRequestError(fmt.Sprintf(
			"User with id=%d never booked item with id=%d", userID, itemID))
	}

	author, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if _, err := s.items.FindByID(ctx, itemID); err != nil {
		return nil, err
	}

	c, err := itemDomain.NewComment(itemID, userID, text, s.now())
	if err != nil {
		return nil, err
	}

	saved, err := s.comments.Save(ctx, c)
	if err != nil {
		return nil, err
	}

	s.logger.Info("comment added",
		zap.Int64("item_id", itemID),
		zap.Int64("author_id", userID),
	)
	return &CommentDTO{
		ID:         saved.ID(),
		Text:       saved.Text(),
		AuthorName: author.Name(),
		Created:    saved.Created(),
	}, nil
}

func (s *ItemService) hasCompletedBooking(ctx context.Context, itemID, userID int64) (bool, error) {
	list, err := s.bookings.FindAllByItemIDAndBookerID(ctx, itemID, userID)
	if err != nil {
		return false, err
	}

	now := s.now()
	for _, b := range list {
		if b.Status() == bookingDomain.StatusApproved && b.Start().Before(now) {
			return true, nil
		}
	}
	return false, nil
}

// attachBookings fills the last/next booking projections: the last booking
// is the latest-ending one that started before now (any status), the next
// is the earliest-starting approved one after now.
func (s *ItemService) attachBookings(ctx context.Context, dto *ItemDTO) error {
	list, err := s.bookings.FindAllByItemID(ctx, dto.ID)
	if err != nil {
		return err
	}

	now := s.now()
	var last, next *bookingDomain.Booking
	for _, b := range list {
		if b.Start().Before(now) {
			if last == nil || b.End().After(last.End()) {
				last = b
			}
		}
		if b.Status() == bookingDomain.StatusApproved && b.Start().After(now) {
			if next == nil || b.Start().Before(next.Start()) {
				next = b
			}
		}
	}

	if last != nil {
		dto.LastBooking = &NearbyBookingDTO{ID: last.ID(), BookerID: last.BookerID()}
	}
	if next != nil {
		dto.NextBooking = &NearbyBookingDTO{ID: next.ID(), BookerID: next.BookerID()}
	}
	return nil
}

func (s *ItemService) attachComments(ctx context.Context, dto *ItemDTO) error {
	comments, err := s.comments.FindAllByItemID(ctx, dto.ID)
	if err != nil {
		return err
	}

	dtos := make([]CommentDTO, len(comments))
	for i, c := range comments {
		author, err := s.users.FindByID(ctx, c.AuthorID())
		if err != nil {
			return err
		}
		dtos[i] = CommentDTO{
			ID:         c.ID(),
			Text:       c.Text(),
			AuthorName: author.Name(),
			Created:    c.Created(),
		}
	}
	dto.Comments = dtos
	return nil
}

func toItemDTO(it *itemDomain.Item) ItemDTO {
	return ItemDTO{
		ID:          it.ID(),
		Name:        it.Name(),
		Description: it.Description(),
		Available:   it.Available(),
		OwnerID:     it.OwnerID(),
		RequestID:   it.RequestID(),
		Comments:    []CommentDTO{},
	}
}
