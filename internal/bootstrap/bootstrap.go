package bootstrap

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/minjaecho/teacherdesk/internal/app/controllers"
	appRepos "github.com/minjaecho/teacherdesk/internal/app/repositories"
	appRoutes "github.com/minjaecho/teacherdesk/internal/app/routes"
	appServices "github.com/minjaecho/teacherdesk/internal/app/services"
	"github.com/minjaecho/teacherdesk/internal/config"
	"github.com/minjaecho/teacherdesk/internal/db"
	appMiddleware "github.com/minjaecho/teacherdesk/internal/middleware"
	"github.com/minjaecho/teacherdesk/internal/pkg/gemini"
	"github.com/minjaecho/teacherdesk/internal/pkg/logger"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	StudentService    appServices.StudentService
	WorkLogService    appServices.WorkLogService
	TodoService       appServices.TodoService
	AssistantService  appServices.AssistantService
	StudentController *appControllers.StudentController
	WorkLogController *appControllers.WorkLogController
	TodoController    *appControllers.TodoController
	Repos             *appRepos.Repositories
	Logger            zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	// .env is optional; real environments set variables directly
	_ = godotenv.Load()

	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase opens the file-backed store and creates the schema if absent.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.SQLiteDB, error) {
	lgr.Info().Str("path", cfg.Database.Path).Msg("Opening database...")

	store, err := db.NewSQLiteDB(cfg.Database.Path)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to open database")
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := store.DB.PingContext(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		store.Close()
		return nil, err
	}

	lgr.Info().Msg("Database ready.")
	return store, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, store *db.SQLiteDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(store.DB)

	// The Gemini client is optional. A missing key or failed init disables
	// the assistant endpoints; everything else keeps working.
	var generator gemini.TextGenerator
	client, err := gemini.NewClient(context.Background(), gemini.Config{
		APIKey: cfg.Gemini.APIKey,
		Model:  cfg.Gemini.Model,
	})
	if err != nil {
		lgr.Warn().Err(err).Msg("Gemini client not initialized; assistant endpoints disabled")
	} else {
		generator = client
		lgr.Info().Str("model", cfg.Gemini.Model).Msg("Gemini client initialized")
	}

	deps.StudentService = appServices.NewStudentService(deps.Repos.StudentRepository)
	deps.WorkLogService = appServices.NewWorkLogService(deps.Repos.WorkLogRepository)
	deps.TodoService = appServices.NewTodoService(deps.Repos.TodoRepository)
	deps.AssistantService = appServices.NewAssistantService(generator, deps.Repos.TodoRepository, lgr)

	deps.StudentController = appControllers.NewStudentController(deps.StudentService, deps.AssistantService)
	deps.WorkLogController = appControllers.NewWorkLogController(deps.WorkLogService)
	deps.TodoController = appControllers.NewTodoController(deps.TodoService, deps.AssistantService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.Default()
	router.Use(appMiddleware.RequestID())
	router.Use(appMiddleware.CORS())

	appRoutes.SetupRouter(router,
		deps.StudentController,
		deps.WorkLogController,
		deps.TodoController,
	)

	return router
}
