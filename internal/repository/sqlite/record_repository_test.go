package sqlite

import (
	"context"
	"errors"
	"testing"
	"time"

	"wayfinder/internal/domain"
)

func TestRecordCreate_AdvancesTaskLastFinished(t *testing.T) {
	t.Parallel()

	earlier := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	later := time.Date(2026, 3, 8, 10, 0, 0, 0, time.UTC)

	orders := map[string][]time.Time{
		"ascending":  {earlier, later},
		"descending": {later, earlier},
	}

	for name, dates := range orders {
		dates := dates
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			db := openTestDB(t)
			ctx := context.Background()

			userID := seedUser(t, db, "a@x.com")
			taskID := seedTask(t, db, userID, "mow lawn")

			for _, d := range dates {
				seedRecord(t, db, taskID, d)
			}

			task, err := NewTaskRepository(db).Get(ctx, taskID)
			if err != nil {
				t.Fatalf("get task: %v", err)
			}
			if task.LastFinishedDate == nil {
				t.Fatal("expected last finished date to be set")
			}
			if !task.LastFinishedDate.Equal(later) {
				t.Fatalf("last finished date: got %v want %v", task.LastFinishedDate, later)
			}
		})
	}
}

func TestRecordGet_MissingIsNotFound(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)

	if _, err := NewRecordRepository(db).Get(context.Background(), 123); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRecordListByUser_JoinsThroughTasks(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	ctx := context.Background()

	aliceID := seedUser(t, db, "alice@x.com")
	bobID := seedUser(t, db, "bob@x.com")
	aliceTask := seedTask(t, db, aliceID, "alice task")
	bobTask := seedTask(t, db, bobID, "bob task")

	seedRecord(t, db, aliceTask, time.Now().UTC())
	seedRecord(t, db, aliceTask, time.Now().UTC().Add(-time.Hour))
	seedRecord(t, db, bobTask, time.Now().UTC())

	records, err := NewRecordRepository(db).ListByUser(ctx, aliceID)
	if err != nil {
		t.Fatalf("list by user: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records for alice, got %d", len(records))
	}
	for _, r := range records {
		if r.TaskID != aliceTask {
			t.Fatalf("record %d leaked from another user's task", r.ID)
		}
	}
}
