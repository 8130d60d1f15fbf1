package service

import (
	"context"
	"errors"
	"strings"

	"wayfinder/internal/domain"
	"wayfinder/internal/repository"
)

// NewTask carries the caller-supplied fields for task creation.
type NewTask struct {
	Title                    string
	RefreshInterval          int
	AlertThresholdPercentage int
	IsActive                 bool
	InitialRefreshInterval   *int
}

// TaskUpdate carries optional fields for a partial task update.
type TaskUpdate struct {
	Title                    *string
	RefreshInterval          *int
	AlertThresholdPercentage *int
	IsActive                 *bool
	InitialRefreshInterval   *int
}

// TaskService owns task CRUD gated on the caller's identity.
type TaskService interface {
	Create(ctx context.Context, callerID int64, params NewTask) (*domain.Task, error)
	List(ctx context.Context, callerID int64) ([]domain.Task, error)
	Get(ctx context.Context, callerID, id int64) (*domain.Task, error)
	Update(ctx context.Context, callerID, id int64, params TaskUpdate) (*domain.Task, error)
	Delete(ctx context.Context, callerID, id int64) error
}

type taskService struct {
	tasks     repository.TaskRepository
	ownership repository.Ownership
}

func NewTaskService(tasks repository.TaskRepository, ownership repository.Ownership) TaskService {
	return &taskService{tasks: tasks, ownership: ownership}
}

func (s *taskService) Create(ctx context.Context, callerID int64, params NewTask) (*domain.Task, error) {
	title := strings.TrimSpace(params.Title)
	if title == "" {
		return nil, errors.New("title is required")
	}

	initial := params.RefreshInterval
	if params.InitialRefreshInterval != nil {
		initial = *params.InitialRefreshInterval
	}

	task := &domain.Task{
		Title:                    title,
		UserID:                   callerID,
		RefreshInterval:          params.RefreshInterval,
		AlertThresholdPercentage: params.AlertThresholdPercentage,
		IsActive:                 params.IsActive,
		InitialRefreshInterval:   initial,
	}
	if _, err := s.tasks.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *taskService) List(ctx context.Context, callerID int64) ([]domain.Task, error) {
	return s.tasks.ListByUser(ctx, callerID)
}

func (s *taskService) Get(ctx context.Context, callerID, id int64) (*domain.Task, error) {
	if err := authorize(ctx, s.ownership.OwnerOfTask, id, callerID); err != nil {
		return nil, err
	}
	return s.tasks.Get(ctx, id)
}

func (s *taskService) Update(ctx context.Context, callerID, id int64, params TaskUpdate) (*domain.Task, error) {
	if err := authorize(ctx, s.ownership.OwnerOfTask, id, callerID); err != nil {
		return nil, err
	}

	task, err := s.tasks.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if params.Title != nil {
		title := strings.TrimSpace(*params.Title)
		if title == "" {
			return nil, errors.New("title must not be blank")
		}
		task.Title = title
	}
	if params.RefreshInterval != nil {
		task.RefreshInterval = *params.RefreshInterval
	}
	if params.AlertThresholdPercentage != nil {
		task.AlertThresholdPercentage = *params.AlertThresholdPercentage
	}
	if params.IsActive != nil {
		task.IsActive = *params.IsActive
	}
	if params.InitialRefreshInterval != nil {
		task.InitialRefreshInterval = *params.InitialRefreshInterval
	}

	if err := s.tasks.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *taskService) Delete(ctx context.Context, callerID, id int64) error {
	if err := authorize(ctx, s.ownership.OwnerOfTask, id, callerID); err != nil {
		return err
	}
	return s.tasks.Delete(ctx, id)
}
