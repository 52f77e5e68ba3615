package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/minjaecho/teacherdesk/internal/app/models/dto"
	"github.com/minjaecho/teacherdesk/internal/app/services"
	"github.com/minjaecho/teacherdesk/internal/middleware"
	"github.com/minjaecho/teacherdesk/internal/pkg/helpers"
)

// WorkLogController handles work log endpoints
type WorkLogController struct {
	workLogService services.WorkLogService
}

// NewWorkLogController creates a new WorkLogController
func NewWorkLogController(workLogService services.WorkLogService) *WorkLogController {
	return &WorkLogController{
		workLogService: workLogService,
	}
}

// ListWorkLogs lists work logs within a skip/limit window
func (c *WorkLogController) ListWorkLogs(ctx *gin.Context) {
	skip, limit := helpers.ParseListWindow(ctx)

	logs, err := c.workLogService.ListWorkLogs(ctx, skip, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, logs)
}

// GetWorkLogByDate retrieves the log for one calendar date
func (c *WorkLogController) GetWorkLogByDate(ctx *gin.Context) {
	log, err := c.workLogService.GetWorkLogByDate(ctx, ctx.Param("date"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, log)
}

// UpsertWorkLog creates or updates the log for the supplied date
func (c *WorkLogController) UpsertWorkLog(ctx *gin.Context) {
	var req dto.WorkLogRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid work log data").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	log, err := c.workLogService.UpsertWorkLog(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, log)
}

// DeleteWorkLog removes the log for one calendar date
func (c *WorkLogController) DeleteWorkLog(ctx *gin.Context) {
	if err := c.workLogService.DeleteWorkLog(ctx, ctx.Param("date")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
