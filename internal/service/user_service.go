package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"wayfinder/internal/auth"
	"wayfinder/internal/domain"
	"wayfinder/internal/repository"
)

// UserUpdate carries optional profile fields. A non-nil Password rehashes the
// credential as part of the update.
type UserUpdate struct {
	Email    *string
	Password *string
	Color1   *string
	Color2   *string
	Color3   *string
}

// UserService exposes profile access. Users can only ever see or touch their
// own row; requesting another id is forbidden regardless of whether it exists.
type UserService interface {
	Get(ctx context.Context, callerID, id int64) (*domain.User, error)
	Me(ctx context.Context, callerID int64) (*domain.User, error)
	Update(ctx context.Context, callerID, id int64, params UserUpdate) (*domain.User, error)
}

type userService struct {
	users  repository.UserRepository
	hasher *auth.PasswordHasher
}

func NewUserService(users repository.UserRepository, hasher *auth.PasswordHasher) UserService {
	return &userService{users: users, hasher: hasher}
}

func (s *userService) Get(ctx context.Context, callerID, id int64) (*domain.User, error) {
	if id != callerID {
		return nil, domain.ErrForbidden
	}
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return sanitizeUser(user), nil
}

func (s *userService) Me(ctx context.Context, callerID int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, callerID)
	if err != nil {
		return nil, err
	}
	return sanitizeUser(user), nil
}

func (s *userService) Update(ctx context.Context, callerID, id int64, params UserUpdate) (*domain.User, error) {
	if id != callerID {
		return nil, domain.ErrForbidden
	}

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if params.Email != nil {
		email := strings.TrimSpace(*params.Email)
		if email == "" {
			return nil, errors.New("email must not be blank")
		}
		exists, err := s.users.EmailExists(ctx, email, id)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, fmt.Errorf("%w: email already registered", domain.ErrConflict)
		}
		user.Email = email
	}
	if params.Color1 != nil {
		user.Color1 = *params.Color1
	}
	if params.Color2 != nil {
		user.Color2 = *params.Color2
	}
	if params.Color3 != nil {
		user.Color3 = *params.Color3
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	if params.Password != nil && *params.Password != "" {
		hash, err := s.hasher.Hash(*params.Password)
		if err != nil {
			return nil, err
		}
		if err := s.users.UpdatePasswordHash(ctx, id, hash); err != nil {
			return nil, err
		}
	}

	return sanitizeUser(user), nil
}
