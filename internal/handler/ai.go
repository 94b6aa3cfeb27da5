package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/planloop/planloop/internal/ctxkeys"
	"github.com/planloop/planloop/internal/service"
)

type AIHandler struct {
	aiService *service.AIService
}

func NewAIHandler(aiService *service.AIService) *AIHandler {
	return &AIHandler{
		aiService: aiService,
	}
}

// GenerateTodos asks the model for a todo list from the user's context.
// Generation failures surface as server errors.
func (h *AIHandler) GenerateTodos(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	todos, err := h.aiService.GenerateTodos(r.Context(), user.ID, r.URL.Query().Get("prompt"))
	if err != nil {
		slog.Error("failed to generate todos", "error", err, "user_id", user.ID)
		respondError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"todos": todos})
}

// AnalyzeTodo scores a candidate todo. The analysis is always present:
// call failures are downgraded to a fallback judgment in the service.
func (h *AIHandler) AnalyzeTodo(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req struct {
		TodoText string `json:"todoText"`
	}
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	analysis := h.aiService.AnalyzeTodo(r.Context(), user.ID, req.TodoText)
	respondJSON(w, http.StatusOK, map[string]any{"todos": analysis})
}
