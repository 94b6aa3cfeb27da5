package app

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/planloop/planloop/internal/config"
	"github.com/planloop/planloop/internal/db"
	"github.com/planloop/planloop/internal/extract"
	"github.com/planloop/planloop/internal/repository"
	"github.com/planloop/planloop/internal/service"
	"github.com/planloop/planloop/internal/storage"
	"github.com/tmc/langchaingo/llms/googleai"
)

type App struct {
	Cfg                *config.Config
	DB                 *sqlx.DB
	AuthService        *service.AuthService
	UserService        *service.UserService
	ProfileService     *service.ProfileService
	TodoService        *service.TodoService
	ContextFileService *service.ContextFileService
	AIService          *service.AIService
}

func New(cfg *config.Config) (*App, error) {
	// Initialize database
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %v", err)
	}

	// Run database migrations
	err = db.RunMigrations(database.DB, cfg.DBDriver)
	if err != nil {
		return nil, fmt.Errorf("failed to run migrations: %v", err)
	}

	// Repositories
	userRepository := repository.NewUserRepository(database)
	profileRepository := repository.NewProfileRepository(database)
	todoRepository := repository.NewTodoRepository(database)
	contextFileRepository := repository.NewContextFileRepository(database)

	// Storage
	fileStorage, err := storage.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %v", err)
	}

	// LLM client, injected into the AI service rather than held globally
	llm, err := googleai.New(context.Background(),
		googleai.WithAPIKey(cfg.GoogleAIAPIKey),
		googleai.WithDefaultModel(cfg.AIGenerateModel),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize LLM client: %v", err)
	}

	// Services
	authService := service.NewAuthService(userRepository, cfg.JWTSecret, cfg.JWTExpiry, cfg.IsProduction())
	userService := service.NewUserService(userRepository)
	profileService := service.NewProfileService(profileRepository)
	todoService := service.NewTodoService(todoRepository)
	contextFileService := service.NewContextFileService(
		contextFileRepository,
		fileStorage,
		extract.NewExtractor(cfg.OCRLanguage),
	)
	aiService := service.NewAIService(
		profileRepository,
		contextFileRepository,
		llm,
		cfg.AIGenerateModel,
		cfg.AIAnalyzeModel,
	)

	return &App{
		Cfg:                cfg,
		DB:                 database,
		AuthService:        authService,
		UserService:        userService,
		ProfileService:     profileService,
		TodoService:        todoService,
		ContextFileService: contextFileService,
		AIService:          aiService,
	}, nil
}

func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}
