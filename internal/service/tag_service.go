package service

import (
	"context"
	"errors"
	"strings"

	"wayfinder/internal/domain"
	"wayfinder/internal/repository"
)

// NewTag carries the caller-supplied fields for tag creation.
type NewTag struct {
	Name   string
	TaskID int64
}

// TagUpdate carries optional fields for a partial tag update. A non-nil
// TaskID moves the tag to another task, which must also belong to the caller.
type TagUpdate struct {
	Name   *string
	TaskID *int64
}

// TagService owns tag CRUD gated on the caller's identity.
type TagService interface {
	Create(ctx context.Context, callerID int64, params NewTag) (*domain.Tag, error)
	List(ctx context.Context, callerID int64) ([]domain.Tag, error)
	ListByTask(ctx context.Context, callerID, taskID int64) ([]domain.Tag, error)
	Get(ctx context.Context, callerID, id int64) (*domain.Tag, error)
	Update(ctx context.Context, callerID, id int64, params TagUpdate) (*domain.Tag, error)
	Delete(ctx context.Context, callerID, id int64) error
}

type tagService struct {
	tags      repository.TagRepository
	ownership repository.Ownership
}

func NewTagService(tags repository.TagRepository, ownership repository.Ownership) TagService {
	return &tagService{tags: tags, ownership: ownership}
}

func (s *tagService) Create(ctx context.Context, callerID int64, params NewTag) (*domain.Tag, error) {
	name := strings.TrimSpace(params.Name)
	if name == "" {
		return nil, errors.New("name is required")
	}

	if err := authorize(ctx, s.ownership.OwnerOfTask, params.TaskID, callerID); err != nil {
		return nil, err
	}

	tag := &domain.Tag{Name: name, TaskID: params.TaskID}
	if _, err := s.tags.Create(ctx, tag); err != nil {
		return nil, err
	}
	return tag, nil
}

func (s *tagService) List(ctx context.Context, callerID int64) ([]domain.Tag, error) {
	return s.tags.ListByUser(ctx, callerID)
}

func (s *tagService) ListByTask(ctx context.Context, callerID, taskID int64) ([]domain.Tag, error) {
	if err := authorize(ctx, s.ownership.OwnerOfTask, taskID, callerID); err != nil {
		return nil, err
	}
	return s.tags.ListByTask(ctx, taskID)
}

func (s *tagService) Get(ctx context.Context, callerID, id int64) (*domain.Tag, error) {
	if err := authorize(ctx, s.ownership.OwnerOfTag, id, callerID); err != nil {
		return nil, err
	}
	return s.tags.Get(ctx, id)
}

func (s *tagService) Update(ctx context.Context, callerID, id int64, params TagUpdate) (*domain.Tag, error) {
	if err := authorize(ctx, s.ownership.OwnerOfTag, id, callerID); err != nil {
		return nil, err
	}

	tag, err := s.tags.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if params.Name != nil {
		name := strings.TrimSpace(*params.Name)
		if name == "" {
			return nil, errors.New("name must not be blank")
		}
		tag.Name = name
	}
	if params.TaskID != nil && *params.TaskID != tag.TaskID {
		// Moving the tag must not change its owner.
		if err := authorize(ctx, s.ownership.OwnerOfTask, *params.TaskID, callerID); err != nil {
			return nil, err
		}
		tag.TaskID = *params.TaskID
	}

	if err := s.tags.Update(ctx, tag); err != nil {
		return nil, err
	}
	return tag, nil
}

func (s *tagService) Delete(ctx context.Context, callerID, id int64) error {
	if err := authorize(ctx, s.ownership.OwnerOfTag, id, callerID); err != nil {
		return err
	}
	return s.tags.Delete(ctx, id)
}
