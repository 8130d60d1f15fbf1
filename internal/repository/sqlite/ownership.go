package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"wayfinder/internal/domain"
	"wayfinder/internal/repository"
)

// Ownership resolves the owning user for any entity id by walking the
// foreign-key chain down to tasks.user_id. Each method is a single query
// against live rows; a missing entity yields domain.ErrNotFound.
type Ownership struct {
	db *sql.DB
}

func NewOwnership(db *sql.DB) repository.Ownership {
	return &Ownership{db: db}
}

func (o *Ownership) OwnerOfTask(ctx context.Context, id int64) (int64, error) {
	return o.owner(ctx, `SELECT user_id FROM tasks WHERE id = ?`, id)
}

func (o *Ownership) OwnerOfRecord(ctx context.Context, id int64) (int64, error) {
	return o.owner(ctx, `
SELECT t.user_id
FROM records r
INNER JOIN tasks t ON r.task_id = t.id
WHERE r.id = ?`, id)
}

func (o *Ownership) OwnerOfTag(ctx context.Context, id int64) (int64, error) {
	return o.owner(ctx, `
SELECT t.user_id
FROM tags g
INNER JOIN tasks t ON g.task_id = t.id
WHERE g.id = ?`, id)
}

func (o *Ownership) OwnerOfTaskTag(ctx context.Context, id int64) (int64, error) {
	return o.owner(ctx, `
SELECT t.user_id
FROM task_tags tt
INNER JOIN tasks t ON tt.task_id = t.id
WHERE tt.id = ?`, id)
}

func (o *Ownership) owner(ctx context.Context, query string, id int64) (int64, error) {
	var userID int64
	if err := o.db.QueryRowContext(ctx, query, id).Scan(&userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, domain.ErrNotFound
		}
		return 0, fmt.Errorf("resolve owner: %w", err)
	}
	return userID, nil
}
