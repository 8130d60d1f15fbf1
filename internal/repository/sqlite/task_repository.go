package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"wayfinder/internal/domain"
	"wayfinder/internal/repository"
)

const createTasksTable = `
CREATE TABLE IF NOT EXISTS tasks (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title TEXT NOT NULL,
	user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	last_finished_date DATETIME NULL,
	refresh_interval INTEGER NOT NULL DEFAULT 0,
	alert_threshold_percentage INTEGER NOT NULL DEFAULT 0,
	is_active INTEGER NOT NULL DEFAULT 1,
	initial_refresh_interval INTEGER NOT NULL DEFAULT 0,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);
`

type TaskRepository struct {
	db *sql.DB
}

func NewTaskRepository(db *sql.DB) repository.TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createTasksTable); err != nil {
		return fmt.Errorf("create tasks table: %w", err)
	}
	return nil
}

func (r *TaskRepository) Create(ctx context.Context, task *domain.Task) (int64, error) {
	now := time.Now().UTC()
	task.CreatedAt = now
	task.UpdatedAt = now

	res, err := r.db.ExecContext(ctx, `
INSERT INTO tasks (title, user_id, last_finished_date, refresh_interval, alert_threshold_percentage, is_active, initial_refresh_interval, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		task.Title,
		task.UserID,
		nullableTime(task.LastFinishedDate),
		task.RefreshInterval,
		task.AlertThresholdPercentage,
		boolToInt(task.IsActive),
		task.InitialRefreshInterval,
		task.CreatedAt,
		task.UpdatedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("insert task: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("task last insert id: %w", err)
	}
	task.ID = id
	return id, nil
}

func (r *TaskRepository) Update(ctx context.Context, task *domain.Task) error {
	task.UpdatedAt = time.Now().UTC()

	res, err := r.db.ExecContext(ctx, `
UPDATE tasks SET
	title = ?,
	last_finished_date = ?,
	refresh_interval = ?,
	alert_threshold_percentage = ?,
	is_active = ?,
	initial_refresh_interval = ?,
	updated_at = ?
WHERE id = ?`,
		task.Title,
		nullableTime(task.LastFinishedDate),
		task.RefreshInterval,
		task.AlertThresholdPercentage,
		boolToInt(task.IsActive),
		task.InitialRefreshInterval,
		task.UpdatedAt,
		task.ID,
	)
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	return requireRowAffected(res, "task")
}

func (r *TaskRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return requireRowAffected(res, "task")
}

func (r *TaskRepository) Get(ctx context.Context, id int64) (*domain.Task, error) {
	row := r.db.QueryRowContext(ctx, selectTask+` WHERE id = ?`, id)
	return scanTask(row)
}

func (r *TaskRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Task, error) {
	rows, err := r.db.QueryContext(ctx, selectTask+` WHERE user_id = ? ORDER BY id`, userID)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []domain.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tasks: %w", err)
	}
	return tasks, nil
}

const selectTask = `
SELECT id, title, user_id, last_finished_date, refresh_interval, alert_threshold_percentage, is_active, initial_refresh_interval, created_at, updated_at
FROM tasks`

func scanTask(row interface {
	Scan(dest ...any) error
}) (*domain.Task, error) {
	var (
		task         domain.Task
		lastFinished sql.NullTime
		isActive     int
	)
	if err := row.Scan(
		&task.ID,
		&task.Title,
		&task.UserID,
		&lastFinished,
		&task.RefreshInterval,
		&task.AlertThresholdPercentage,
		&isActive,
		&task.InitialRefreshInterval,
		&task.CreatedAt,
		&task.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scan task: %w", err)
	}
	if lastFinished.Valid {
		t := lastFinished.Time
		task.LastFinishedDate = &t
	}
	task.IsActive = isActive == 1
	return &task, nil
}

func nullableTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return *t
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
