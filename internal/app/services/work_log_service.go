package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/minjaecho/teacherdesk/internal/app/models"
	"github.com/minjaecho/teacherdesk/internal/app/models/dto"
	"github.com/minjaecho/teacherdesk/internal/app/repositories"
	"github.com/minjaecho/teacherdesk/internal/pkg/apperrors"
)

// WorkLogService defines the interface for work log operations
type WorkLogService interface {
	ListWorkLogs(ctx context.Context, skip, limit int) ([]*models.WorkLog, error)
	GetWorkLogByDate(ctx context.Context, date string) (*models.WorkLog, error)
	UpsertWorkLog(ctx context.Context, req *dto.WorkLogRequest) (*models.WorkLog, error)
	DeleteWorkLog(ctx context.Context, date string) error
}

// workLogServiceImpl implements the WorkLogService interface
type workLogServiceImpl struct {
	workLogRepo *repositories.WorkLogRepository
}

// NewWorkLogService creates a new work log service instance
func NewWorkLogService(workLogRepo *repositories.WorkLogRepository) WorkLogService {
	return &workLogServiceImpl{
		workLogRepo: workLogRepo,
	}
}

// validateDate ensures a date is ISO formatted (YYYY-MM-DD)
func validateDate(date string) error {
	if _, err := time.Parse(time.DateOnly, date); err != nil {
		return fmt.Errorf("%w: date must be YYYY-MM-DD", apperrors.ErrValidationFailed)
	}
	return nil
}

// ListWorkLogs retrieves a window of work logs in insertion order
func (s *workLogServiceImpl) ListWorkLogs(ctx context.Context, skip, limit int) ([]*models.WorkLog, error) {
	logs, err := s.workLogRepo.List(ctx, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("error retrieving work logs: %w", err)
	}
	return logs, nil
}

// GetWorkLogByDate retrieves the log for a calendar date
func (s *workLogServiceImpl) GetWorkLogByDate(ctx context.Context, date string) (*models.WorkLog, error) {
	if err := validateDate(date); err != nil {
		return nil, err
	}

	return s.workLogRepo.GetByDate(ctx, date)
}

// UpsertWorkLog creates the log for a date, or updates its content when one
// already exists. At most one row per date ever results.
func (s *workLogServiceImpl) UpsertWorkLog(ctx context.Context, req *dto.WorkLogRequest) (*models.WorkLog, error) {
	if err := validateDate(req.Date); err != nil {
		return nil, err
	}

	existing, err := s.workLogRepo.GetByDate(ctx, req.Date)
	if err != nil && !errors.Is(err, apperrors.ErrWorkLogNotFound) {
		return nil, fmt.Errorf("error checking existing work log: %w", err)
	}

	if existing != nil {
		if err := s.workLogRepo.UpdateContent(ctx, req.Date, req.Content); err != nil {
			return nil, err
		}
		existing.Content = req.Content
		return existing, nil
	}

	log := &models.WorkLog{Date: req.Date, Content: req.Content}
	id, err := s.workLogRepo.Create(ctx, log)
	if err != nil {
		return nil, err
	}
	log.ID = id
	return log, nil
}

// DeleteWorkLog removes the log for a date
func (s *workLogServiceImpl) DeleteWorkLog(ctx context.Context, date string) error {
	if err := validateDate(date); err != nil {
		return err
	}

	return s.workLogRepo.DeleteByDate(ctx, date)
}
