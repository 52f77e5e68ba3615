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

// TodoRepository handles todo item database operations
type TodoRepository struct {
	db *sqlx.DB
	sb squirrel.StatementBuilderType
}

// NewTodoRepository creates a new TodoRepository
func NewTodoRepository(db *sqlx.DB) *TodoRepository {
	return &TodoRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
	}
}

// List retrieves a window of todo items in insertion order
func (r *TodoRepository) List(ctx context.Context, skip, limit int) ([]*models.ToDoItem, error) {
	sqlStr, args, err := r.sb.Select("id", "content", "is_completed").
		From("todos").
		OrderBy("id ASC").
		Offset(uint64(skip)).
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list todos query: %w", err)
	}

	items := []*models.ToDoItem{}
	if err := r.db.SelectContext(ctx, &items, sqlStr, args...); err != nil {
		logger.Error().Err(err).Msg("Error querying todos")
		return nil, fmt.Errorf("error querying todos: %w", err)
	}

	return items, nil
}

// GetByID retrieves a todo item by ID
func (r *TodoRepository) GetByID(ctx context.Context, id int64) (*models.ToDoItem, error) {
	sqlStr, args, err := r.sb.Select("id", "content", "is_completed").
		From("todos").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get todo query: %w", err)
	}

	item := &models.ToDoItem{}
	if err := r.db.GetContext(ctx, item, sqlStr, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrTodoNotFound
		}
		logger.Error().Err(err).Int64("todoID", id).Msg("Error scanning todo row")
		return nil, fmt.Errorf("error getting todo by ID: %w", err)
	}

	return item, nil
}

// Create inserts a new todo item
func (r *TodoRepository) Create(ctx context.Context, item *models.ToDoItem) (int64, error) {
	sqlStr, args, err := r.sb.Insert("todos").
		Columns("content", "is_completed").
		Values(item.Content, item.IsCompleted).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create todo query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing create todo query")
		return 0, fmt.Errorf("error creating todo: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("error reading new todo id: %w", err)
	}

	return id, nil
}

// Update overwrites content and completion flag of an existing todo
func (r *TodoRepository) Update(ctx context.Context, item *models.ToDoItem) error {
	sqlStr, args, err := r.sb.Update("todos").
		SetMap(map[string]interface{}{
			"content":      item.Content,
			"is_completed": item.IsCompleted,
		}).
		Where(squirrel.Eq{"id": item.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update todo query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Int64("todoID", item.ID).Msg("Error executing update todo query")
		return fmt.Errorf("error updating todo: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error reading update result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrTodoNotFound
	}

	return nil
}

// Delete removes a todo item by ID
func (r *TodoRepository) Delete(ctx context.Context, id int64) error {
	sqlStr, args, err := r.sb.Delete("todos").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete todo query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Int64("todoID", id).Msg("Error executing delete todo query")
		return fmt.Errorf("error deleting todo: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error reading delete result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrTodoNotFound
	}

	return nil
}
