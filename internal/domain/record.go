package domain

import "time"

// Record is one completion of a task.
type Record struct {
	ID           int64
	TaskID       int64
	FinishedDate time.Time
	Status       string
}
