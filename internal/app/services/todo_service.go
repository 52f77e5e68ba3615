package services

import (
	"context"
	"fmt"

	"github.com/minjaecho/teacherdesk/internal/app/models"
	"github.com/minjaecho/teacherdesk/internal/app/models/dto"
	"github.com/minjaecho/teacherdesk/internal/app/repositories"
	"github.com/minjaecho/teacherdesk/internal/pkg/apperrors"
)

// TodoService defines the interface for todo item operations
type TodoService interface {
	ListTodos(ctx context.Context, skip, limit int) ([]*models.ToDoItem, error)
	CreateTodo(ctx context.Context, req *dto.CreateToDoItemRequest) (*models.ToDoItem, error)
	UpdateTodo(ctx context.Context, id int64, req *dto.UpdateToDoItemRequest) (*models.ToDoItem, error)
	DeleteTodo(ctx context.Context, id int64) error
}

// todoServiceImpl implements the TodoService interface
type todoServiceImpl struct {
	todoRepo *repositories.TodoRepository
}

// NewTodoService creates a new todo service instance
func NewTodoService(todoRepo *repositories.TodoRepository) TodoService {
	return &todoServiceImpl{
		todoRepo: todoRepo,
	}
}

// ListTodos retrieves a window of todo items in insertion order
func (s *todoServiceImpl) ListTodos(ctx context.Context, skip, limit int) ([]*models.ToDoItem, error) {
	items, err := s.todoRepo.List(ctx, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("error retrieving todos: %w", err)
	}
	return items, nil
}

// CreateTodo creates a new todo item; completion defaults to false
func (s *todoServiceImpl) CreateTodo(ctx context.Context, req *dto.CreateToDoItemRequest) (*models.ToDoItem, error) {
	item := &models.ToDoItem{
		Content:     req.Content,
		IsCompleted: req.IsCompleted,
	}

	id, err := s.todoRepo.Create(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("error creating todo: %w", err)
	}

	item.ID = id
	return item, nil
}

// UpdateTodo applies a partial update: only fields present in the request
// overwrite stored values. A request with no fields leaves the row unchanged.
func (s *todoServiceImpl) UpdateTodo(ctx context.Context, id int64, req *dto.UpdateToDoItemRequest) (*models.ToDoItem, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid todo ID", apperrors.ErrValidationFailed)
	}

	item, err := s.todoRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Content == nil && req.IsCompleted == nil {
		return item, nil
	}

	if req.Content != nil {
		item.Content = *req.Content
	}
	if req.IsCompleted != nil {
		item.IsCompleted = *req.IsCompleted
	}

	if err := s.todoRepo.Update(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

// DeleteTodo removes a todo item by ID
func (s *todoServiceImpl) DeleteTodo(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid todo ID", apperrors.ErrValidationFailed)
	}

	return s.todoRepo.Delete(ctx, id)
}
