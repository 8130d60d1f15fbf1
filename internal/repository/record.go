package repository

import (
	"context"

	"wayfinder/internal/domain"
)

// RecordRepository exposes persistence operations for completion records.
type RecordRepository interface {
	Init(ctx context.Context) error
	// Create inserts the record and, in the same transaction, advances the
	// owning task's last finished date when the new record is newer.
	Create(ctx context.Context, record *domain.Record) (int64, error)
	Update(ctx context.Context, record *domain.Record) error
	Delete(ctx context.Context, id int64) error
	Get(ctx context.Context, id int64) (*domain.Record, error)
	ListByTask(ctx context.Context, taskID int64) ([]domain.Record, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Record, error)
}
