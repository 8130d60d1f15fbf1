package sqlite

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"wayfinder/internal/domain"
)

// openTestDB opens a fresh in-memory database with the full schema applied.
func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := Open(":memory:")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	ctx := context.Background()
	for _, init := range []func(context.Context) error{
		NewUserRepository(db).Init,
		NewTaskRepository(db).Init,
		NewRecordRepository(db).Init,
		NewTagRepository(db).Init,
		NewTaskTagRepository(db).Init,
	} {
		if err := init(ctx); err != nil {
			t.Fatalf("init schema: %v", err)
		}
	}
	return db
}

func seedUser(t *testing.T, db *sql.DB, email string) int64 {
	t.Helper()

	id, err := NewUserRepository(db).Create(context.Background(), &domain.User{
		Email:        email,
		PasswordHash: "x",
	})
	if err != nil {
		t.Fatalf("seed user %s: %v", email, err)
	}
	return id
}

func seedTask(t *testing.T, db *sql.DB, userID int64, title string) int64 {
	t.Helper()

	id, err := NewTaskRepository(db).Create(context.Background(), &domain.Task{
		Title:           title,
		UserID:          userID,
		RefreshInterval: 7,
		IsActive:        true,
	})
	if err != nil {
		t.Fatalf("seed task %s: %v", title, err)
	}
	return id
}

func seedRecord(t *testing.T, db *sql.DB, taskID int64, finished time.Time) int64 {
	t.Helper()

	id, err := NewRecordRepository(db).Create(context.Background(), &domain.Record{
		TaskID:       taskID,
		FinishedDate: finished,
		Status:       "done",
	})
	if err != nil {
		t.Fatalf("seed record: %v", err)
	}
	return id
}

func seedTag(t *testing.T, db *sql.DB, taskID int64, name string) int64 {
	t.Helper()

	id, err := NewTagRepository(db).Create(context.Background(), &domain.Tag{
		Name:   name,
		TaskID: taskID,
	})
	if err != nil {
		t.Fatalf("seed tag %s: %v", name, err)
	}
	return id
}
