package repository

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/planloop/planloop/internal/model"
)

var (
	ErrTodoNotFound = errors.New("todo not found")
)

type TodoRepository interface {
	Create(todo *model.Todo) error
	ByID(userID, todoID string) (*model.Todo, error)
	Todos(userID string) ([]*model.Todo, error)
	CreateMany(userID string, texts []string) (int, error)
	SetCompleted(userID, todoID string, completed bool) error
	Delete(userID, todoID string) error
}

type todoRepository struct {
	db *sqlx.DB
}

func NewTodoRepository(db *sqlx.DB) TodoRepository {
	return &todoRepository{db: db}
}

func (r *todoRepository) Create(todo *model.Todo) error {
	if todo.ID == "" {
		todo.ID = uuid.New().String()
	}
	if todo.CreatedAt.IsZero() {
		todo.CreatedAt = time.Now()
	}
	if todo.Files == nil {
		todo.Files = []*model.TodoFile{}
	}

	query := `INSERT INTO todos (id, user_id, text, completed, created_at)
	          VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.Exec(query,
		todo.ID,
		todo.UserID,
		todo.Text,
		todo.Completed,
		todo.CreatedAt,
	)

	return err
}

func (r *todoRepository) ByID(userID, todoID string) (*model.Todo, error) {
	todo := &model.Todo{}
	query := `SELECT * FROM todos WHERE id = $1 AND user_id = $2`

	err := r.db.Get(todo, query, todoID, userID)
	if err == sql.ErrNoRows {
		return nil, ErrTodoNotFound
	}
	if err != nil {
		return nil, err
	}

	err = r.attachFiles([]*model.Todo{todo})
	if err != nil {
		return nil, err
	}

	return todo, nil
}

// Todos returns the user's todos newest first, with attachments loaded.
func (r *todoRepository) Todos(userID string) ([]*model.Todo, error) {
	var todos []*model.Todo
	query := `SELECT * FROM todos WHERE user_id = $1 ORDER BY created_at DESC`

	err := r.db.Select(&todos, query, userID)
	if err != nil {
		return nil, err
	}

	err = r.attachFiles(todos)
	if err != nil {
		return nil, err
	}

	return todos, nil
}

// CreateMany bulk-inserts todos from plain text lines and returns the
// number of rows created.
func (r *todoRepository) CreateMany(userID string, texts []string) (int, error) {
	if len(texts) == 0 {
		return 0, nil
	}

	tx, err := r.db.Beginx()
	if err != nil {
		return 0, err
	}

	query := `INSERT INTO todos (id, user_id, text, completed, created_at)
	          VALUES ($1, $2, $3, $4, $5)`

	now := time.Now()
	for _, text := range texts {
		_, err = tx.Exec(query, uuid.New().String(), userID, text, false, now)
		if err != nil {
			_ = tx.Rollback()
			return 0, err
		}
	}

	err = tx.Commit()
	if err != nil {
		return 0, err
	}

	return len(texts), nil
}

// SetCompleted updates the completion flag on an owned todo. The user_id
// predicate makes the ownership check atomic with the write.
func (r *todoRepository) SetCompleted(userID, todoID string, completed bool) error {
	query := `UPDATE todos SET completed = $1 WHERE id = $2 AND user_id = $3`

	result, err := r.db.Exec(query, completed, todoID, userID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrTodoNotFound
	}

	return nil
}

func (r *todoRepository) Delete(userID, todoID string) error {
	query := `DELETE FROM todos WHERE id = $1 AND user_id = $2`

	result, err := r.db.Exec(query, todoID, userID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrTodoNotFound
	}

	return nil
}

// attachFiles loads todo_files for the given todos in one query and
// assigns them in creation order. Todos without attachments get an empty
// slice so the JSON encoding is always an array.
func (r *todoRepository) attachFiles(todos []*model.Todo) error {
	for _, todo := range todos {
		todo.Files = []*model.TodoFile{}
	}

	if len(todos) == 0 {
		return nil
	}

	ids := make([]string, 0, len(todos))
	byID := make(map[string]*model.Todo, len(todos))
	for _, todo := range todos {
		ids = append(ids, todo.ID)
		byID[todo.ID] = todo
	}

	query, args, err := sqlx.In(`SELECT * FROM todo_files WHERE todo_id IN (?) ORDER BY created_at ASC`, ids)
	if err != nil {
		return err
	}

	var files []*model.TodoFile
	err = r.db.Select(&files, r.db.Rebind(query), args...)
	if err != nil {
		return err
	}

	for _, file := range files {
		todo := byID[file.TodoID]
		if todo != nil {
			todo.Files = append(todo.Files, file)
		}
	}

	return nil
}
