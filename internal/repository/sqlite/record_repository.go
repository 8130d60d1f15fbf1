package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"wayfinder/internal/domain"
	"wayfinder/internal/repository"
)

const createRecordsTable = `
CREATE TABLE IF NOT EXISTS records (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	task_id INTEGER NOT NULL REFERENCES tasks(id) ON DELETE CASCADE,
	finished_date DATETIME NOT NULL,
	status TEXT NOT NULL DEFAULT ''
);
`

type RecordRepository struct {
	db *sql.DB
}

func NewRecordRepository(db *sql.DB) repository.RecordRepository {
	return &RecordRepository{db: db}
}

func (r *RecordRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createRecordsTable); err != nil {
		return fmt.Errorf("create records table: %w", err)
	}
	return nil
}

// Create inserts the record and advances the task's last_finished_date when
// the new date is newer, both inside one transaction so concurrent inserts
// cannot leave the task behind its true latest completion.
func (r *RecordRepository) Create(ctx context.Context, record *domain.Record) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin record tx: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
INSERT INTO records (task_id, finished_date, status)
VALUES (?, ?, ?)`,
		record.TaskID,
		record.FinishedDate,
		record.Status,
	)
	if err != nil {
		return 0, fmt.Errorf("insert record: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("record last insert id: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `
UPDATE tasks SET last_finished_date = ?, updated_at = CURRENT_TIMESTAMP
WHERE id = ? AND (last_finished_date IS NULL OR last_finished_date < ?)`,
		record.FinishedDate,
		record.TaskID,
		record.FinishedDate,
	); err != nil {
		return 0, fmt.Errorf("advance task last finished date: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit record tx: %w", err)
	}
	record.ID = id
	return id, nil
}

func (r *RecordRepository) Update(ctx context.Context, record *domain.Record) error {
	res, err := r.db.ExecContext(ctx, `
UPDATE records SET finished_date = ?, status = ? WHERE id = ?`,
		record.FinishedDate,
		record.Status,
		record.ID,
	)
	if err != nil {
		return fmt.Errorf("update record: %w", err)
	}
	return requireRowAffected(res, "record")
}

func (r *RecordRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM records WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete record: %w", err)
	}
	return requireRowAffected(res, "record")
}

func (r *RecordRepository) Get(ctx context.Context, id int64) (*domain.Record, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, task_id, finished_date, status FROM records WHERE id = ?`, id)
	return scanRecord(row)
}

func (r *RecordRepository) ListByTask(ctx context.Context, taskID int64) ([]domain.Record, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, task_id, finished_date, status
FROM records
WHERE task_id = ?
ORDER BY finished_date DESC`,
		taskID,
	)
	if err != nil {
		return nil, fmt.Errorf("list records by task: %w", err)
	}
	return collectRecords(rows)
}

func (r *RecordRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Record, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT r.id, r.task_id, r.finished_date, r.status
FROM records r
INNER JOIN tasks t ON r.task_id = t.id
WHERE t.user_id = ?
ORDER BY r.finished_date DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list records by user: %w", err)
	}
	return collectRecords(rows)
}

func collectRecords(rows *sql.Rows) ([]domain.Record, error) {
	defer rows.Close()

	var records []domain.Record
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate records: %w", err)
	}
	return records, nil
}

func scanRecord(row interface {
	Scan(dest ...any) error
}) (*domain.Record, error) {
	var record domain.Record
	if err := row.Scan(
		&record.ID,
		&record.TaskID,
		&record.FinishedDate,
		&record.Status,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scan record: %w", err)
	}
	return &record, nil
}
