package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/minjaecho/teacherdesk/internal/app/models/dto"
	"github.com/minjaecho/teacherdesk/internal/app/services"
	"github.com/minjaecho/teacherdesk/internal/middleware"
	"github.com/minjaecho/teacherdesk/internal/pkg/helpers"
)

// TodoController handles todo item endpoints
type TodoController struct {
	todoService      services.TodoService
	assistantService services.AssistantService
}

// NewTodoController creates a new TodoController
func NewTodoController(todoService services.TodoService, assistantService services.AssistantService) *TodoController {
	return &TodoController{
		todoService:      todoService,
		assistantService: assistantService,
	}
}

// ListTodos lists todo items within a skip/limit window
func (c *TodoController) ListTodos(ctx *gin.Context) {
	skip, limit := helpers.ParseListWindow(ctx)

	items, err := c.todoService.ListTodos(ctx, skip, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, items)
}

// CreateTodo creates a todo item
func (c *TodoController) CreateTodo(ctx *gin.Context) {
	var req dto.CreateToDoItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid todo data").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	item, err := c.todoService.CreateTodo(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, item)
}

// UpdateTodo partially updates a todo item; absent fields stay unchanged
func (c *TodoController) UpdateTodo(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateToDoItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid todo data").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	item, err := c.todoService.UpdateTodo(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, item)
}

// DeleteTodo removes a todo item
func (c *TodoController) DeleteTodo(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	if err := c.todoService.DeleteTodo(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// ExtractTodosFromLog asks the assistant for action items in the supplied
// work log text, persists them, and returns the created rows.
func (c *TodoController) ExtractTodosFromLog(ctx *gin.Context) {
	var req dto.WorkLogRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid work log data").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	created, err := c.assistantService.ExtractTodos(ctx, req.Content)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, created)
}
