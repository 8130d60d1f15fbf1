package repository

import (
	"context"

	"wayfinder/internal/domain"
)

// TagRepository exposes persistence operations for tags.
type TagRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, tag *domain.Tag) (int64, error)
	Update(ctx context.Context, tag *domain.Tag) error
	Delete(ctx context.Context, id int64) error
	Get(ctx context.Context, id int64) (*domain.Tag, error)
	ListByTask(ctx context.Context, taskID int64) ([]domain.Tag, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Tag, error)
}

// TaskTagRepository manages the task/tag many-to-many join.
type TaskTagRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, taskTag *domain.TaskTag) (int64, error)
	Delete(ctx context.Context, id int64) error
	Get(ctx context.Context, id int64) (*domain.TaskTag, error)
	Exists(ctx context.Context, taskID, tagID int64) (bool, error)
	ListByTask(ctx context.Context, taskID int64) ([]domain.TaskTag, error)
	ListByTag(ctx context.Context, tagID int64) ([]domain.TaskTag, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.TaskTag, error)
}
