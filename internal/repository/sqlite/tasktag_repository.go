package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"wayfinder/internal/domain"
	"wayfinder/internal/repository"
)

const createTaskTagsTable = `
CREATE TABLE IF NOT EXISTS task_tags (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	task_id INTEGER NOT NULL REFERENCES tasks(id) ON DELETE CASCADE,
	tag_id INTEGER NOT NULL REFERENCES tags(id) ON DELETE CASCADE,
	UNIQUE (task_id, tag_id)
);
`

type TaskTagRepository struct {
	db *sql.DB
}

func NewTaskTagRepository(db *sql.DB) repository.TaskTagRepository {
	return &TaskTagRepository{db: db}
}

func (r *TaskTagRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createTaskTagsTable); err != nil {
		return fmt.Errorf("create task_tags table: %w", err)
	}
	return nil
}

func (r *TaskTagRepository) Create(ctx context.Context, taskTag *domain.TaskTag) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
INSERT INTO task_tags (task_id, tag_id) VALUES (?, ?)`,
		taskTag.TaskID,
		taskTag.TagID,
	)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "unique") {
			return 0, fmt.Errorf("%w: task-tag association already exists", domain.ErrConflict)
		}
		return 0, fmt.Errorf("insert task tag: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("task tag last insert id: %w", err)
	}
	taskTag.ID = id
	return id, nil
}

func (r *TaskTagRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM task_tags WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete task tag: %w", err)
	}
	return requireRowAffected(res, "task tag")
}

func (r *TaskTagRepository) Get(ctx context.Context, id int64) (*domain.TaskTag, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, task_id, tag_id FROM task_tags WHERE id = ?`, id)
	return scanTaskTag(row)
}

func (r *TaskTagRepository) Exists(ctx context.Context, taskID, tagID int64) (bool, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `
SELECT COUNT(*) FROM task_tags WHERE task_id = ? AND tag_id = ?`,
		taskID, tagID,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("count task tags: %w", err)
	}
	return count > 0, nil
}

func (r *TaskTagRepository) ListByTask(ctx context.Context, taskID int64) ([]domain.TaskTag, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, task_id, tag_id FROM task_tags WHERE task_id = ? ORDER BY id`, taskID)
	if err != nil {
		return nil, fmt.Errorf("list task tags by task: %w", err)
	}
	return collectTaskTags(rows)
}

func (r *TaskTagRepository) ListByTag(ctx context.Context, tagID int64) ([]domain.TaskTag, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, task_id, tag_id FROM task_tags WHERE tag_id = ? ORDER BY id`, tagID)
	if err != nil {
		return nil, fmt.Errorf("list task tags by tag: %w", err)
	}
	return collectTaskTags(rows)
}

func (r *TaskTagRepository) ListByUser(ctx context.Context, userID int64) ([]domain.TaskTag, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT tt.id, tt.task_id, tt.tag_id
FROM task_tags tt
INNER JOIN tasks t ON tt.task_id = t.id
WHERE t.user_id = ?
ORDER BY tt.id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list task tags by user: %w", err)
	}
	return collectTaskTags(rows)
}

func collectTaskTags(rows *sql.Rows) ([]domain.TaskTag, error) {
	defer rows.Close()

	var taskTags []domain.TaskTag
	for rows.Next() {
		taskTag, err := scanTaskTag(rows)
		if err != nil {
			return nil, err
		}
		taskTags = append(taskTags, *taskTag)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate task tags: %w", err)
	}
	return taskTags, nil
}

func scanTaskTag(row interface {
	Scan(dest ...any) error
}) (*domain.TaskTag, error) {
	var taskTag domain.TaskTag
	if err := row.Scan(&taskTag.ID, &taskTag.TaskID, &taskTag.TagID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scan task tag: %w", err)
	}
	return &taskTag, nil
}
