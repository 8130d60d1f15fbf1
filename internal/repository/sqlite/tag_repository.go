package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"wayfinder/internal/domain"
	"wayfinder/internal/repository"
)

const createTagsTable = `
CREATE TABLE IF NOT EXISTS tags (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	task_id INTEGER NOT NULL REFERENCES tasks(id) ON DELETE CASCADE
);
`

type TagRepository struct {
	db *sql.DB
}

func NewTagRepository(db *sql.DB) repository.TagRepository {
	return &TagRepository{db: db}
}

func (r *TagRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createTagsTable); err != nil {
		return fmt.Errorf("create tags table: %w", err)
	}
	return nil
}

func (r *TagRepository) Create(ctx context.Context, tag *domain.Tag) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
INSERT INTO tags (name, task_id) VALUES (?, ?)`,
		tag.Name,
		tag.TaskID,
	)
	if err != nil {
		return 0, fmt.Errorf("insert tag: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("tag last insert id: %w", err)
	}
	tag.ID = id
	return id, nil
}

func (r *TagRepository) Update(ctx context.Context, tag *domain.Tag) error {
	res, err := r.db.ExecContext(ctx, `
UPDATE tags SET name = ?, task_id = ? WHERE id = ?`,
		tag.Name,
		tag.TaskID,
		tag.ID,
	)
	if err != nil {
		return fmt.Errorf("update tag: %w", err)
	}
	return requireRowAffected(res, "tag")
}

func (r *TagRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tags WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete tag: %w", err)
	}
	return requireRowAffected(res, "tag")
}

func (r *TagRepository) Get(ctx context.Context, id int64) (*domain.Tag, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, name, task_id FROM tags WHERE id = ?`, id)
	return scanTag(row)
}

func (r *TagRepository) ListByTask(ctx context.Context, taskID int64) ([]domain.Tag, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, name, task_id FROM tags WHERE task_id = ? ORDER BY id`, taskID)
	if err != nil {
		return nil, fmt.Errorf("list tags by task: %w", err)
	}
	return collectTags(rows)
}

func (r *TagRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Tag, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT g.id, g.name, g.task_id
FROM tags g
INNER JOIN tasks t ON g.task_id = t.id
WHERE t.user_id = ?
ORDER BY g.id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list tags by user: %w", err)
	}
	return collectTags(rows)
}

func collectTags(rows *sql.Rows) ([]domain.Tag, error) {
	defer rows.Close()

	var tags []domain.Tag
	for rows.Next() {
		tag, err := scanTag(rows)
		if err != nil {
			return nil, err
		}
		tags = append(tags, *tag)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tags: %w", err)
	}
	return tags, nil
}

func scanTag(row interface {
	Scan(dest ...any) error
}) (*domain.Tag, error) {
	var tag domain.Tag
	if err := row.Scan(&tag.ID, &tag.Name, &tag.TaskID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scan tag: %w", err)
	}
	return &tag, nil
}
