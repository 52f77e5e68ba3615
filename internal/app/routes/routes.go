package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/minjaecho/teacherdesk/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	studentController *controllers.StudentController,
	workLogController *controllers.WorkLogController,
	todoController *controllers.TodoController,
) {
	students := router.Group("/students")
	{
		students.GET("/", studentController.GetAllStudents)
		students.POST("/", studentController.CreateStudent)
		students.DELETE("/", studentController.DeleteAllStudents)
		students.GET("/:id", studentController.GetStudentByID)
		students.PUT("/:id", studentController.UpdateStudent)
		students.DELETE("/:id", studentController.DeleteStudent)
		students.POST("/:id/consultations", studentController.AddConsultation)
		students.POST("/:id/summarize-consultations", studentController.SummarizeConsultations)
	}

	workLogs := router.Group("/work-logs")
	{
		workLogs.GET("/", workLogController.ListWorkLogs)
		workLogs.POST("/", workLogController.UpsertWorkLog)
		workLogs.GET("/:date", workLogController.GetWorkLogByDate)
		workLogs.DELETE("/:date", workLogController.DeleteWorkLog)
	}

	todos := router.Group("/todos")
	{
		todos.GET("/", todoController.ListTodos)
		todos.POST("/", todoController.CreateTodo)
		todos.POST("/from-log/", todoController.ExtractTodosFromLog)
		todos.PUT("/:id", todoController.UpdateTodo)
		todos.DELETE("/:id", todoController.DeleteTodo)
	}

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
