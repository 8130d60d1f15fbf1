package repository

import (
	"context"

	"wayfinder/internal/domain"
)

// TaskRepository exposes persistence operations for Task entities.
type TaskRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, task *domain.Task) (int64, error)
	Update(ctx context.Context, task *domain.Task) error
	Delete(ctx context.Context, id int64) error
	Get(ctx context.Context, id int64) (*domain.Task, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Task, error)
}
