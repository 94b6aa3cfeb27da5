package routes

import (
	"net/http"

	"github.com/planloop/planloop/internal/app"
	"github.com/planloop/planloop/internal/handler"
	"github.com/planloop/planloop/internal/middleware"
)

func SetupRoutes(a *app.App) http.Handler {
	// Handlers
	auth := handler.NewAuthHandler(a.AuthService)
	todo := handler.NewTodoHandler(a.TodoService)
	profile := handler.NewProfileHandler(a.ProfileService)
	contextFile := handler.NewContextFileHandler(a.ContextFileService, a.Cfg.MaxUploadSize)
	ai := handler.NewAIHandler(a.AIService)

	mux := http.NewServeMux()

	// Auth (rate limited)
	rateLimiter := middleware.RateLimitAuth()
	mux.HandleFunc("POST /auth/register", rateLimiter(auth.Register))
	mux.HandleFunc("POST /auth/login", rateLimiter(auth.Login))
	mux.HandleFunc("POST /auth/logout", auth.Logout)

	// Todos
	mux.HandleFunc("GET /todo", middleware.RequireAuth(todo.List))
	mux.HandleFunc("POST /todo", middleware.RequireAuth(todo.Create))
	mux.HandleFunc("PATCH /todo/{id}", middleware.RequireAuth(todo.Update))
	mux.HandleFunc("DELETE /todo/{id}", middleware.RequireAuth(todo.Delete))
	mux.HandleFunc("POST /todo/ai", middleware.RequireAuth(todo.CreateBulk))

	// AI
	mux.HandleFunc("GET /ai/generate-todo", middleware.RequireAuth(ai.GenerateTodos))
	mux.HandleFunc("POST /ai/analyze-todo", middleware.RequireAuth(ai.AnalyzeTodo))

	// Profile
	mux.HandleFunc("GET /profile", middleware.RequireAuth(profile.Show))
	mux.HandleFunc("POST /profile", middleware.RequireAuth(profile.Save))

	// Context files
	mux.HandleFunc("POST /context-files", middleware.RequireAuth(contextFile.Upload))
	mux.HandleFunc("GET /context-files", middleware.RequireAuth(contextFile.List))

	// Global middleware - executed in order (top to bottom)
	return middleware.Chain(
		mux,
		middleware.RequestLogging,
		middleware.AuthMiddleware(a.AuthService, a.UserService),
	)
}
