package domain

import "time"

// Task represents a recurring chore owned by a single user. RefreshInterval
// and InitialRefreshInterval are measured in days; AlertThresholdPercentage
// is 0-100.
type Task struct {
	ID                       int64
	Title                    string
	UserID                   int64
	LastFinishedDate         *time.Time
	RefreshInterval          int
	AlertThresholdPercentage int
	IsActive                 bool
	InitialRefreshInterval   int
	CreatedAt                time.Time
	UpdatedAt                time.Time
}
