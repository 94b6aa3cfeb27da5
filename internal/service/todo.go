package service

import (
	"github.com/planloop/planloop/internal/model"
	"github.com/planloop/planloop/internal/repository"
)

type TodoService struct {
	todoRepo repository.TodoRepository
}

func NewTodoService(todoRepo repository.TodoRepository) *TodoService {
	return &TodoService{
		todoRepo: todoRepo,
	}
}

func (s *TodoService) Create(userID, text string) (*model.Todo, error) {
	todo := &model.Todo{
		UserID: userID,
		Text:   text,
	}

	err := s.todoRepo.Create(todo)
	if err != nil {
		return nil, err
	}

	return todo, nil
}

func (s *TodoService) Todos(userID string) ([]*model.Todo, error) {
	return s.todoRepo.Todos(userID)
}

// CreateMany bulk-inserts AI-generated todos and returns the count.
func (s *TodoService) CreateMany(userID string, texts []string) (int, error) {
	return s.todoRepo.CreateMany(userID, texts)
}

// SetCompleted toggles the completion flag and returns the updated todo
// with attachments. Returns repository.ErrTodoNotFound for todos the
// caller does not own.
func (s *TodoService) SetCompleted(userID, todoID string, completed bool) (*model.Todo, error) {
	err := s.todoRepo.SetCompleted(userID, todoID, completed)
	if err != nil {
		return nil, err
	}

	return s.todoRepo.ByID(userID, todoID)
}

func (s *TodoService) Delete(userID, todoID string) error {
	return s.todoRepo.Delete(userID, todoID)
}
