package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/minjaecho/teacherdesk/internal/app/models"
	"github.com/minjaecho/teacherdesk/internal/pkg/apperrors"
	"github.com/minjaecho/teacherdesk/internal/pkg/logger"
)

// WorkLogRepository handles work log database operations
type WorkLogRepository struct {
	db *sqlx.DB
	sb squirrel.StatementBuilderType
}

// NewWorkLogRepository creates a new WorkLogRepository
func NewWorkLogRepository(db *sqlx.DB) *WorkLogRepository {
	return &WorkLogRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
	}
}

// List retrieves a window of work logs in insertion order
func (r *WorkLogRepository) List(ctx context.Context, skip, limit int) ([]*models.WorkLog, error) {
	sqlStr, args, err := r.sb.Select("id", "date", "content").
		From("work_logs").
		OrderBy("id ASC").
		Offset(uint64(skip)).
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list work logs query: %w", err)
	}

	logs := []*models.WorkLog{}
	if err := r.db.SelectContext(ctx, &logs, sqlStr, args...); err != nil {
		logger.Error().Err(err).Msg("Error querying work logs")
		return nil, fmt.Errorf("error querying work logs: %w", err)
	}

	return logs, nil
}

// GetByDate retrieves the work log for a calendar date
func (r *WorkLogRepository) GetByDate(ctx context.Context, date string) (*models.WorkLog, error) {
	sqlStr, args, err := r.sb.Select("id", "date", "content").
		From("work_logs").
		Where(squirrel.Eq{"date": date}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get work log query: %w", err)
	}

	log := &models.WorkLog{}
	if err := r.db.GetContext(ctx, log, sqlStr, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrWorkLogNotFound
		}
		logger.Error().Err(err).Str("date", date).Msg("Error scanning work log row")
		return nil, fmt.Errorf("error getting work log by date: %w", err)
	}

	return log, nil
}

// Create inserts a new work log row
func (r *WorkLogRepository) Create(ctx context.Context, log *models.WorkLog) (int64, error) {
	sqlStr, args, err := r.sb.Insert("work_logs").
		Columns("date", "content").
		Values(log.Date, log.Content).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create work log query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Str("date", log.Date).Msg("Error executing create work log query")
		return 0, fmt.Errorf("error creating work log: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("error reading new work log id: %w", err)
	}

	return id, nil
}

// UpdateContent replaces the content of the log for a date
func (r *WorkLogRepository) UpdateContent(ctx context.Context, date, content string) error {
	sqlStr, args, err := r.sb.Update("work_logs").
		Set("content", content).
		Where(squirrel.Eq{"date": date}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update work log query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Str("date", date).Msg("Error executing update work log query")
		return fmt.Errorf("error updating work log: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error reading update result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrWorkLogNotFound
	}

	return nil
}

// DeleteByDate removes the log for a date
func (r *WorkLogRepository) DeleteByDate(ctx context.Context, date string) error {
	sqlStr, args, err := r.sb.Delete("work_logs").
		Where(squirrel.Eq{"date": date}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete work log query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Str("date", date).Msg("Error executing delete work log query")
		return fmt.Errorf("error deleting work log: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error reading delete result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrWorkLogNotFound
	}

	return nil
}
