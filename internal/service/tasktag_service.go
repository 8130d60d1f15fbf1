package service

import (
	"context"
	"errors"
	"fmt"

	"wayfinder/internal/domain"
	"wayfinder/internal/repository"
)

// TaskTagService owns the task/tag join. Creation is the one composite
// check in the system: both referenced entities must exist and belong to the
// caller before any row is written, so an association can never span two
// users.
type TaskTagService interface {
	Create(ctx context.Context, callerID, taskID, tagID int64) (*domain.TaskTag, error)
	List(ctx context.Context, callerID int64) ([]domain.TaskTag, error)
	ListByTask(ctx context.Context, callerID, taskID int64) ([]domain.TaskTag, error)
	ListByTag(ctx context.Context, callerID, tagID int64) ([]domain.TaskTag, error)
	Get(ctx context.Context, callerID, id int64) (*domain.TaskTag, error)
	Delete(ctx context.Context, callerID, id int64) error
}

type taskTagService struct {
	taskTags  repository.TaskTagRepository
	ownership repository.Ownership
}

func NewTaskTagService(taskTags repository.TaskTagRepository, ownership repository.Ownership) TaskTagService {
	return &taskTagService{taskTags: taskTags, ownership: ownership}
}

func (s *taskTagService) Create(ctx context.Context, callerID, taskID, tagID int64) (*domain.TaskTag, error) {
	// Each side reports its own not-found/forbidden outcome so the caller
	// knows which reference is bad.
	taskOwner, err := s.ownership.OwnerOfTask(ctx, taskID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, notFound("task")
		}
		return nil, err
	}
	if taskOwner != callerID {
		return nil, forbidden("task")
	}

	tagOwner, err := s.ownership.OwnerOfTag(ctx, tagID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, notFound("tag")
		}
		return nil, err
	}
	if tagOwner != callerID {
		return nil, forbidden("tag")
	}

	exists, err := s.taskTags.Exists(ctx, taskID, tagID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: task-tag association already exists", domain.ErrConflict)
	}

	taskTag := &domain.TaskTag{TaskID: taskID, TagID: tagID}
	if _, err := s.taskTags.Create(ctx, taskTag); err != nil {
		return nil, err
	}
	return taskTag, nil
}

func (s *taskTagService) List(ctx context.Context, callerID int64) ([]domain.TaskTag, error) {
	return s.taskTags.ListByUser(ctx, callerID)
}

func (s *taskTagService) ListByTask(ctx context.Context, callerID, taskID int64) ([]domain.TaskTag, error) {
	if err := authorize(ctx, s.ownership.OwnerOfTask, taskID, callerID); err != nil {
		return nil, err
	}
	return s.taskTags.ListByTask(ctx, taskID)
}

func (s *taskTagService) ListByTag(ctx context.Context, callerID, tagID int64) ([]domain.TaskTag, error) {
	if err := authorize(ctx, s.ownership.OwnerOfTag, tagID, callerID); err != nil {
		return nil, err
	}
	return s.taskTags.ListByTag(ctx, tagID)
}

func (s *taskTagService) Get(ctx context.Context, callerID, id int64) (*domain.TaskTag, error) {
	if err := authorize(ctx, s.ownership.OwnerOfTaskTag, id, callerID); err != nil {
		return nil, err
	}
	return s.taskTags.Get(ctx, id)
}

func (s *taskTagService) Delete(ctx context.Context, callerID, id int64) error {
	if err := authorize(ctx, s.ownership.OwnerOfTaskTag, id, callerID); err != nil {
		return err
	}
	return s.taskTags.Delete(ctx, id)
}
