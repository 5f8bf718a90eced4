package application

import (
	"context"
	"time"

	"go.uber.org/zap"

	"shareit-backend/internal/domain"
	itemDomain "shareit-backend/internal/domain/item"
	requestDomain "shareit-backend/internal/domain/request"
	userDomain "shareit-backend/internal/domain/user"
)

// CreateRequestRequest is the request DTO for posting an item request.
type CreateRequestRequest struct {
	Description string `json:"description" binding:"required"`
}

// RequestDTO is the API representation of an item request, including the
// items listed in response to it.
type RequestDTO struct {
	ID          int64     `json:"id"`
	Description string    `json:"description"`
	RequestorID int64     `json:"requestorId"`
	Created     time.Time `json:"created"`
	Items       []ItemDTO `json:"items"`
}

// RequestService implements item-request use cases.
type RequestService struct {
	requests requestDomain.Repository
	items    itemDomain.Repository
	users    userDomain.Repository
	logger   *zap.Logger
	now      func() time.Time
}

// NewRequestService creates a new RequestService.
func NewRequestService(
	requests requestDomain.Repository,
	items itemDomain.Repository,
	users userDomain.Repository,
	logger *zap.Logger,
	now func() time.Time,
) *RequestService {
	return &RequestService{
		requests: requests,
		items:    items,
		users:    users,
		logger:   logger,
		now:      now,
	}
}

// Create posts a new item request for the given user.
func (s *RequestService) Create(ctx context.Context, userID int64, req CreateRequestRequest) (*RequestDTO, error) {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return nil, err
	}

	r, err := requestDomain.New(userID, req.Description, s.now())
	if err != nil {
		return nil, err
	}

	saved, err := s.requests.Save(ctx, r)
	if err != nil {
		return nil, err
	}

	s.logger.Info("request created",
		zap.Int64("request_id", saved.ID()),
		zap.Int64("requestor_id", userID),
	)
	return s.toRequestDTO(ctx, saved, false)
}

// FindAllByUser retrieves the user's own requests with their answering
// items, newest first.
func (s *RequestService) FindAllByUser(ctx context.Context, userID int64) ([]RequestDTO, error) {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return nil, err
	}

	list, err := s.requests.FindAllByRequestorID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.toRequestDTOs(ctx, list)
}

// FindByID retrieves a single request with its answering items. Any
// existing user may view it.
func (s *RequestService) FindByID(ctx context.Context, id, userID int64) (*RequestDTO, error) {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return nil, err
	}

	r, err := s.requests.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.toRequestDTO(ctx, r, true)
}

// FindAllFromOthers retrieves requests posted by other users, newest
// first, with offset pagination.
func (s *RequestService) FindAllFromOthers(ctx context.Context, userID int64, from, size int) ([]RequestDTO, error) {
	if from < 0 || size <= 0 {
		return nil, domain.NewBadRequestError("Bad params from or size for request")
	}

	list, err := s.requests.FindAllByOtherUsers(ctx, userID, from, size)
	if err != nil {
		return nil, err
	}
	return s.toRequestDTOs(ctx, list)
}

func (s *RequestService) toRequestDTOs(ctx context.Context, list []*requestDomain.ItemRequest) ([]RequestDTO, error) {
	dtos := make([]RequestDTO, len(list))
	for i, r := range list {
		dto, err := s.toRequestDTO(ctx, r, true)
		if err != nil {
			return nil, err
		}
		dtos[i] = *dto
	}
	return dtos, nil
}

func (s *RequestService) toRequestDTO(ctx context.Context, r *requestDomain.ItemRequest, withItems bool) (*RequestDTO, error) {
	dto := &RequestDTO{
		ID:          r.ID(),
		Description: r.Description(),
		RequestorID: r.RequestorID(),
		Created:     r.Created(),
		Items:       []ItemDTO{},
	}

	if withItems {
		items, err := s.items.FindAllByRequestID(ctx, r.ID())
		if err != nil {
			return nil, err
		}
		for _, it := range items {
			dto.Items = append(dto.Items, toItemDTO(it))
		}
	}
	return dto, nil
}
