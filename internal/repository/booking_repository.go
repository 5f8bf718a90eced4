package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"shareit-backend/internal/domain"
	bookingDomain "shareit-backend/internal/domain/booking"
)

// BookingModel is the GORM model for the bookings table.
type BookingModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	StartDate time.Time `gorm:"column:start_date;not null;index"`
	EndDate   time.Time `gorm:"column:end_date;not null"`
	ItemID    int64     `gorm:"index;not null"`
	BookerID  int64     `gorm:"index;not null"`
	Status    string    `gorm:"not null;size:20"`
}

// TableName returns the table name for the GORM model.
func (BookingModel) TableName() string {
	return "bookings"
}

// GormBookingRepository is the GORM-based implementation of
// booking.Repository.
type GormBookingRepository struct {
	db *gorm.DB
}

// NewGormBookingRepository creates a new GormBookingRepository.
func NewGormBookingRepository(db *gorm.DB) *GormBookingRepository {
	return &GormBookingRepository{db: db}
}

// FindByID retrieves a booking by its unique identifier.
func (r *GormBookingRepository) FindByID(ctx context.Context, id int64) (*bookingDomain.Booking, error) {
	var model BookingModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError(fmt.Sprintf("Booking with id=%d not exists", id))
		}
		return nil, fmt.Errorf("failed to find booking by ID: %w", err)
	}
	return toDomainBooking(&model)
}

// FindAllByBookerID retrieves every booking made by the given user.
func (r *GormBookingRepository) FindAllByBookerID(ctx context.Context, bookerID int64) ([]*bookingDomain.Booking, error) {
	var models []BookingModel
	if err := r.db.WithContext(ctx).
		Where("booker_id = ?", bookerID).
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to find bookings by booker: %w", err)
	}
	return toDomainBookings(models)
}

// FindAllByItemOwnerID retrieves every booking of items owned by the given
// user.
func (r *GormBookingRepository) FindAllByItemOwnerID(ctx context.Context, ownerID int64) ([]*bookingDomain.Booking, error) {
	var models []BookingModel
	if err := r.db.WithContext(ctx).
		Joins("JOIN items ON items.id = bookings.item_id").
		Where("items.owner_id = ?", ownerID).
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to find bookings by item owner: %w", err)
	}
	return toDomainBookings(models)
}

// FindAllByItemID retrieves every booking of an item.
func (r *GormBookingRepository) FindAllByItemID(ctx context.Context, itemID int64) ([]*bookingDomain.Booking, error) {
	var models []BookingModel
	if err := r.db.WithContext(ctx).
		Where("item_id = ?", itemID).
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to find bookings by item: %w", err)
	}
	return toDomainBookings(models)
}

// FindAllByItemIDAndBookerID retrieves the bookings of an item made by a
// specific user.
func (r *GormBookingRepository) FindAllByItemIDAndBookerID(ctx context.Context, itemID, bookerID int64) ([]*bookingDomain.Booking, error) {
	var models []BookingModel
	if err := r.db.WithContext(ctx).
		Where("item_id = ? AND booker_id = ?", itemID, bookerID).
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to find bookings by item and booker: %w", err)
	}
	return toDomainBookings(models)
}

// Save persists a new booking and returns it with the assigned id.
func (r *GormBookingRepository) Save(ctx context.Context, b *bookingDomain.Booking) (*bookingDomain.Booking, error) {
	model := toBookingModel(b)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return nil, fmt.Errorf("failed to save booking: %w", err)
	}
	return toDomainBooking(model)
}

// Update persists changes to an existing booking. Concurrent updates race
// at the store's isolation level; the last write wins.
func (r *GormBookingRepository) Update(ctx context.Context, b *bookingDomain.Booking) (*bookingDomain.Booking, error) {
	model := toBookingModel(b)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return nil, fmt.Errorf("failed to update booking: %w", err)
	}
	return toDomainBooking(model)
}

// --- Conversion Helpers ---

func toBookingModel(b *bookingDomain.Booking) *BookingModel {
	return &BookingModel{
		ID:        b.ID(),
		StartDate: b.Start(),
		EndDate:   b.End(),
		ItemID:    b.ItemID(),
		BookerID:  b.BookerID(),
		Status:    b.Status().String(),
	}
}

func toDomainBooking(m *BookingModel) (*bookingDomain.Booking, error) {
	status, err := bookingDomain.ParseStatus(m.Status)
	if err != nil {
		return nil, err
	}
	return bookingDomain.Reconstruct(m.ID, m.ItemID, m.BookerID, m.StartDate, m.EndDate, status), nil
}

func toDomainBookings(models []BookingModel) ([]*bookingDomain.Booking, error) {
	bookings := make([]*bookingDomain.Booking, len(models))
	for i, m := range models {
		b, err := toDomainBooking(&m)
		if err != nil {
			return nil, err
		}
		bookings[i] = b
	}
	return bookings, nil
}
