package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"shareit-backend/internal/domain"
	requestDomain "shareit-backend/internal/domain/request"
)

// RequestModel is the GORM model for the requests table.
type RequestModel struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	Description string    `gorm:"not null;size:1000"`
	RequestorID int64     `gorm:"index;not null"`
	Created     time.Time `gorm:"not null;index"`
}

// TableName returns the table name for the GORM model.
func (RequestModel) TableName() string {
	return "requests"
}

// GormRequestRepository is the GORM-based implementation of
// request.Repository.
type GormRequestRepository struct {
	db *gorm.DB
}

// NewGormRequestRepository creates a new GormRequestRepository.
func NewGormRequestRepository(db *gorm.DB) *GormRequestRepository {
	return &GormRequestRepository{db: db}
}

// FindByID retrieves a request by id.
func (r *GormRequestRepository) FindByID(ctx context.Context, id int64) (*requestDomain.ItemRequest, error) {
	var model RequestModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError(fmt.Sprintf("Request with id=%d not exists", id))
		}
		return nil, fmt.Errorf("failed to find request by ID: %w", err)
	}
	return toDomainRequest(&model), nil
}

// FindAllByRequestorID retrieves a user's requests, newest first.
func (r *GormRequestRepository) FindAllByRequestorID(ctx context.Context, requestorID int64) ([]*requestDomain.ItemRequest, error) {
	var models []RequestModel
	if err := r.db.WithContext(ctx).
		Where("requestor_id = ?", requestorID).
		Order("created DESC").
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to find requests by requestor: %w", err)
	}
	return toDomainRequests(models), nil
}

// FindAllByOtherUsers retrieves requests of everyone except the given
// user, newest first, with offset pagination.
func (r *GormRequestRepository) FindAllByOtherUsers(ctx context.Context, userID int64, from, size int) ([]*requestDomain.ItemRequest, error) {
	var models []RequestModel
	if err := r.db.WithContext(ctx).
		Where("requestor_id <> ?", userID).
		Order("created DESC").
		Offset(from).
		Limit(size).
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to find requests from other users: %w", err)
	}
	return toDomainRequests(models), nil
}

// Save persists a new request and returns it with the assigned id.
func (r *GormRequestRepository) Save(ctx context.Context, req *requestDomain.ItemRequest) (*requestDomain.ItemRequest, error) {
	model := &RequestModel{
		ID:          req.ID(),
		Description: req.Description(),
		RequestorID: req.RequestorID(),
		Created:     req.Created(),
	}
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return nil, fmt.Errorf("failed to save request: %w", err)
	}
	return toDomainRequest(model), nil
}

// --- Conversion Helpers ---

func toDomainRequest(m *RequestModel) *requestDomain.ItemRequest {
	return requestDomain.Reconstruct(m.ID, m.RequestorID, m.Description, m.Created)
}

func toDomainRequests(models []RequestModel) []*requestDomain.ItemRequest {
	requests := make([]*requestDomain.ItemRequest, len(models))
	for i, m := range models {
		requests[i] = toDomainRequest(&m)
	}
	return requests
}
