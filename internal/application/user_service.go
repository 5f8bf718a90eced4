package application

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"shareit-backend/internal/domain"
	userDomain "shareit-backend/internal/domain/user"
)

// CreateUserRequest is the request DTO for signup.
type CreateUserRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

// UpdateUserRequest is the request DTO for a partial user update. Nil
// fields leave the stored value unchanged.
type UpdateUserRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

// UserDTO is the API representation of a user.
type UserDTO struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UserService implements user CRUD use cases.
type UserService struct {
	users  userDomain.Repository
	logger *zap.Logger
}

// NewUserService creates a new UserService.
func NewUserService(users userDomain.Repository, logger *zap.Logger) *UserService {
	return &UserService{users: users, logger: logger}
}

// Create registers a new user.
func (s *UserService) Create(ctx context.Context, req CreateUserRequest) (*UserDTO, error) {
	u, err := userDomain.New(req.Name, req.Email)
	if err != nil {
		return nil, err
	}

	saved, err := s.users.Save(ctx, u)
	if err != nil {
		return nil, err
	}

	s.logger.Info("user created", zap.Int64("user_id", saved.ID()))
	result := toUserDTO(saved)
	return &result, nil
}

// FindByID retrieves a user by id.
func (s *UserService) FindByID(ctx context.Context, id int64) (*UserDTO, error) {
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	result := toUserDTO(u)
	return &result, nil
}

// Update applies a partial update. Changing the email fails when another
// user already has it.
func (s *UserService) Update(ctx context.Context, userID int64, req UpdateUserRequest) (*UserDTO, error) {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Email != nil {
		if err := s.checkForDuplicateEmail(ctx, *req.Email, userID); err != nil {
			return nil, err
		}
	}
	u.ApplyUpdate(req.Name, req.Email)

	updated, err := s.users.Update(ctx, u)
	if err != nil {
		return nil, err
	}

	s.logger.Info("user updated", zap.Int64("user_id", userID))
	result := toUserDTO(updated)
	return &result, nil
}

// DeleteByID removes a user by id.
func (s *UserService) DeleteByID(ctx context.Context, id int64) error {
	if err := s.users.DeleteByID(ctx, id); err != nil {
		return err
	}
	s.logger.Info("user deleted", zap.Int64("user_id", id))
	return nil
}

// FindAll retrieves every user.
func (s *UserService) FindAll(ctx context.Context) ([]UserDTO, error) {
	list, err := s.users.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	dtos := make([]UserDTO, len(list))
	for i, u := range list {
		dtos[i] = toUserDTO(u)
	}
	return dtos, nil
}

func (s *UserService) checkForDuplicateEmail(ctx context.Context, email string, userID int64) error {
	other, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if other != nil && other.ID() != userID {
		return domain.NewConflictError(fmt.Sprintf("User with email=%s already exists", email))
	}
	return nil
}

func toUserDTO(u *userDomain.User) UserDTO {
	return UserDTO{
		ID:    u.ID(),
		Name:  u.Name(),
		Email: u.Email(),
	}
}
