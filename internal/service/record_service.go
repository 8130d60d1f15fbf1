package service

import (
	"context"
	"time"

	"wayfinder/internal/domain"
	"wayfinder/internal/repository"
)

// NewRecord carries the caller-supplied fields for record creation. A nil
// FinishedDate defaults to the current time.
type NewRecord struct {
	TaskID       int64
	FinishedDate *time.Time
	Status       string
}

// RecordUpdate carries optional fields for a partial record update.
type RecordUpdate struct {
	FinishedDate *time.Time
	Status       *string
}

// RecordService owns completion-record CRUD gated on the caller's identity.
type RecordService interface {
	Create(ctx context.Context, callerID int64, params NewRecord) (*domain.Record, error)
	List(ctx context.Context, callerID int64) ([]domain.Record, error)
	ListByTask(ctx context.Context, callerID, taskID int64) ([]domain.Record, error)
	Get(ctx context.Context, callerID, id int64) (*domain.Record, error)
	Update(ctx context.Context, callerID, id int64, params RecordUpdate) (*domain.Record, error)
	Delete(ctx context.Context, callerID, id int64) error
}

type recordService struct {
	records   repository.RecordRepository
	ownership repository.Ownership
}

func NewRecordService(records repository.RecordRepository, ownership repository.Ownership) RecordService {
	return &recordService{records: records, ownership: ownership}
}

func (s *recordService) Create(ctx context.Context, callerID int64, params NewRecord) (*domain.Record, error) {
	if err := authorize(ctx, s.ownership.OwnerOfTask, params.TaskID, callerID); err != nil {
		return nil, err
	}

	finished := time.Now().UTC()
	if params.FinishedDate != nil {
		finished = params.FinishedDate.UTC()
	}

	record := &domain.Record{
		TaskID:       params.TaskID,
		FinishedDate: finished,
		Status:       params.Status,
	}
	if _, err := s.records.Create(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *recordService) List(ctx context.Context, callerID int64) ([]domain.Record, error) {
	return s.records.ListByUser(ctx, callerID)
}

func (s *recordService) ListByTask(ctx context.Context, callerID, taskID int64) ([]domain.Record, error) {
	if err := authorize(ctx, s.ownership.OwnerOfTask, taskID, callerID); err != nil {
		return nil, err
	}
	return s.records.ListByTask(ctx, taskID)
}

func (s *recordService) Get(ctx context.Context, callerID, id int64) (*domain.Record, error) {
	if err := authorize(ctx, s.ownership.OwnerOfRecord, id, callerID); err != nil {
		return nil, err
	}
	return s.records.Get(ctx, id)
}

func (s *recordService) Update(ctx context.Context, callerID, id int64, params RecordUpdate) (*domain.Record, error) {
	if err := authorize(ctx, s.ownership.OwnerOfRecord, id, callerID); err != nil {
		return nil, err
	}

	record, err := s.records.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if params.FinishedDate != nil {
		record.FinishedDate = params.FinishedDate.UTC()
	}
	if params.Status != nil {
		record.Status = *params.Status
	}

	if err := s.records.Update(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *recordService) Delete(ctx context.Context, callerID, id int64) error {
	if err := authorize(ctx, s.ownership.OwnerOfRecord, id, callerID); err != nil {
		return err
	}
	return s.records.Delete(ctx, id)
}
