package application

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"shareit-backend/internal/domain"
	bookingDomain "shareit-backend/internal/domain/booking"
	itemDomain "shareit-backend/internal/domain/item"
	userDomain "shareit-backend/internal/domain/user"
	"shareit-backend/internal/events"
)

// CreateBookingRequest holds the candidate data for a new booking. Start
// and End are pointers so that absent dates are distinguishable from zero
// values.
type CreateBookingRequest struct {
	ItemID int64      `json:"itemId" binding:"required"`
	Start  *time.Time `json:"start"`
	End    *time.Time `json:"end"`
}

// BookingDTO is the response projection of a booking.
type BookingDTO struct {
	ID       int64     `json:"id"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	ItemID   int64     `json:"itemId"`
	BookerID int64     `json:"bookerId"`
	Status   string    `json:"status"`
}

// BookingService is the application service for the booking lifecycle:
// creation validation, approval decisions, visibility and state-filtered
// queries.
type BookingService struct {
	bookings bookingDomain.Repository
	items    itemDomain.Repository
	users    userDomain.Repository
	producer *events.Producer
	logger   *zap.Logger
	now      func() time.Time
}

// NewBookingService creates a new BookingService. The clock is injected so
// state classification can be tested against fixed instants.
func NewBookingService(
	bookings bookingDomain.Repository,
	items itemDomain.Repository,
	users userDomain.Repository,
	producer *events.Producer,
	logger *zap.Logger,
	now func() time.Time,
) *BookingService {
	return &BookingService{
		bookings: bookings,
		items:    items,
		users:    users,
		producer: producer,
		logger:   logger,
		now:      now,
	}
}

// Create validates and persists a new booking for the given requester.
// The check order is part of the contract: requester, item, availability,
// dates present, interval order, self-booking.
func (s *BookingService) Create(ctx context.Context, userID int64, req CreateBookingRequest) (*BookingDTO, error) {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return nil, err
	}

	item, err := s.items.FindByID(ctx, req.ItemID)
	if err != nil {
		return nil, err
	}

	if !item.Available() {
		return nil, domain.NewNotAvailableError("Item is not available")
	}

	if req.Start == nil || req.End == nil {
		return nil, domain.NewBadRequestError("Date can't be a null")
	}
	if req.Start.After(*req.End) || req.Start.Equal(*req.End) {
		return nil, domain.NewBadRequestError("Start date is after or equals to end date")
	}

	if userID == item.OwnerID() {
		return nil, domain.NewForbiddenError("Owner can't booked his own item")
	}

	saved, err := s.bookings.Save(ctx, bookingDomain.New(req.ItemID, userID, *req.Start, *req.End))
	if err != nil {
		return nil, err
	}

	s.publishEvent(ctx, events.BookingCreated, events.BookingCreatedEvent{
		BookingID:  saved.ID(),
		ItemID:     saved.ItemID(),
		BookerID:   saved.BookerID(),
		Start:      saved.Start(),
		End:        saved.End(),
		OccurredAt: s.now().UTC(),
	})

	s.logger.Info("booking created",
		zap.Int64("booking_id", saved.ID()),
		zap.Int64("booker_id", userID),
	)
	result := toBookingDTO(saved)
	return &result, nil
}

// UpdateStatus applies the owner's approval decision. Re-approving an
// already approved booking fails; a repeat reject is accepted since the
// guard only fires on approve.
func (s *BookingService) UpdateStatus(ctx context.Context, userID, bookingID int64, approved bool) (*BookingDTO, error) {
	b, err := s.bookings.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if approved && b.Status() == bookingDomain.StatusApproved {
		return nil, domain.NewBadRequestError("Booking is already approved")
	}

	item, err := s.items.FindByID(ctx, b.ItemID())
	if err != nil {
		return nil, err
	}

	if item.OwnerID() != userID {
		return nil, domain.NewForbiddenError(fmt.Sprintf("User with id=%d is not the owner", userID))
	}

	if approved {
		b.Approve()
	} else {
		b.Reject()
	}

	updated, err := s.bookings.Update(ctx, b)
	if err != nil {
		return nil, err
	}

	s.publishEvent(ctx, events.BookingStatusChanged, events.BookingStatusChangedEvent{
		BookingID:  updated.ID(),
		ItemID:     updated.ItemID(),
		BookerID:   updated.BookerID(),
		Status:     updated.Status().String(),
		OccurredAt: s.now().UTC(),
	})

	s.logger.Info("booking status updated",
		zap.Int64("booking_id", bookingID),
		zap.String("status", updated.Status().String()),
	)
	result := toBookingDTO(updated)
	return &result, nil
}

// FindByID retrieves a booking for the booker or the item owner. Any other
// requester gets a not-found answer so booking existence is not revealed.
func (s *BookingService) FindByID(ctx context.Context, bookingID, userID int64) (*BookingDTO, error) {
	b, err := s.bookings.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	item, err := s.items.FindByID(ctx, b.ItemID())
	if err != nil {
		return nil, err
	}

	if b.BookerID() != userID && item.OwnerID() != userID {
		return nil, domain.NewNotFoundError(fmt.Sprintf("Booking with id=%d not available for view", bookingID))
	}

	result := toBookingDTO(b)
	return &result, nil
}

// FindByBookerAndState lists the requester's own bookings filtered by
// state, newest start first, with offset pagination.
func (s *BookingService) FindByBookerAndState(ctx context.Context, userID int64, stateToken string, from, size int) ([]BookingDTO, error) {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return nil, err
	}

	list, err := s.bookings.FindAllByBookerID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return s.filterAndPage(list, stateToken, from, size)
}

// FindByOwnerAndState lists bookings of the requester's items filtered by
// state, newest start first, with offset pagination.
func (s *BookingService) FindByOwnerAndState(ctx context.Context, userID int64, stateToken string, from, size int) ([]BookingDTO, error) {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return nil, err
	}

	list, err := s.bookings.FindAllByItemOwnerID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return s.filterAndPage(list, stateToken, from, size)
}

func (s *BookingService) filterAndPage(list []*bookingDomain.Booking, stateToken string, from, size int) ([]BookingDTO, error) {
	state, err := bookingDomain.ParseState(stateToken)
	if err != nil {
		return nil, err
	}

	// A single classification instant for the whole result set.
	now := s.now()

	filtered := make([]*bookingDomain.Booking, 0, len(list))
	for _, b := range list {
		if state.Matches(b, now) {
			filtered = append(filtered, b)
		}
	}

	sort.Slice(filtered, func(i, j int) bool {
		return filtered[i].Start().After(filtered[j].Start())
	})

	dtos := make([]BookingDTO, len(filtered))
	for i, b := range filtered {
		dtos[i] = toBookingDTO(b)
	}

	return domain.Paginate(dtos, from, size)
}

func (s *BookingService) publishEvent(ctx context.Context, eventType string, data interface{}) {
	if s.producer == nil {
		return
	}

	ce, err := events.NewCloudEvent("shareit-backend", eventType, data)
	if err != nil {
		s.logger.Error("failed to create cloud event",
			zap.String("event_type", eventType),
			zap.Error(err),
		)
		return
	}

	if err := s.producer.PublishEvent(ctx, events.TopicBookingEvents, ce); err != nil {
		s.logger.Error("failed to publish event",
			zap.String("topic", events.TopicBookingEvents),
			zap.String("event_type", eventType),
			zap.Error(err),
		)
	}
}

func toBookingDTO(b *bookingDomain.Booking) BookingDTO {
	return BookingDTO{
		ID:       b.ID(),
		Start:    b.Start(),
		End:      b.End(),
		ItemID:   b.ItemID(),
		BookerID: b.BookerID(),
		Status:   b.Status().String(),
	}
}
