package repository

import (
	"context"

	"wayfinder/internal/domain"
)

// UserRepository defines persistence operations for User entities.
type UserRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, user *domain.User) (int64, error)
	Update(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	// GetByEmail matches case-insensitively.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	EmailExists(ctx context.Context, email string, excludeID int64) (bool, error)
	UpdatePasswordHash(ctx context.Context, id int64, hash string) error
}
