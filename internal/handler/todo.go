package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/planloop/planloop/internal/ctxkeys"
	"github.com/planloop/planloop/internal/repository"
	"github.com/planloop/planloop/internal/service"
)

type TodoHandler struct {
	todoService *service.TodoService
}

func NewTodoHandler(todoService *service.TodoService) *TodoHandler {
	return &TodoHandler{
		todoService: todoService,
	}
}

func (h *TodoHandler) List(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	todos, err := h.todoService.Todos(user.ID)
	if err != nil {
		slog.Error("failed to list todos", "error", err, "user_id", user.ID)
		respondError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	respondJSON(w, http.StatusOK, todos)
}

func (h *TodoHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req struct {
		Text string `json:"text"`
	}
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	todo, err := h.todoService.Create(user.ID, req.Text)
	if err != nil {
		slog.Error("failed to create todo", "error", err, "user_id", user.ID)
		respondError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	respondJSON(w, http.StatusOK, todo)
}

func (h *TodoHandler) Update(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	todoID := r.PathValue("id")

	var req struct {
		Completed bool `json:"completed"`
	}
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	todo, err := h.todoService.SetCompleted(user.ID, todoID, req.Completed)
	if err != nil {
		// Not-owned and nonexistent look the same to the caller
		if errors.Is(err, repository.ErrTodoNotFound) {
			respondError(w, http.StatusNotFound, "Todo not found")
			return
		}
		slog.Error("failed to update todo", "error", err, "user_id", user.ID, "todo_id", todoID)
		respondError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	respondJSON(w, http.StatusOK, todo)
}

func (h *TodoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	todoID := r.PathValue("id")

	err := h.todoService.Delete(user.ID, todoID)
	if err != nil {
		if errors.Is(err, repository.ErrTodoNotFound) {
			respondError(w, http.StatusNotFound, "Todo not found")
			return
		}
		slog.Error("failed to delete todo", "error", err, "user_id", user.ID, "todo_id", todoID)
		respondError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// CreateBulk inserts AI-generated todos in one request.
func (h *TodoHandler) CreateBulk(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req struct {
		Todos []string `json:"todos"`
	}
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	count, err := h.todoService.CreateMany(user.ID, req.Todos)
	if err != nil {
		slog.Error("failed to bulk-create todos", "error", err, "user_id", user.ID)
		respondError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	respondJSON(w, http.StatusOK, map[string]int{"count": count})
}
