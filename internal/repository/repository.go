package repository

import (
	"context"
	"errors"
	"todoTracker/internal/models/todo"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("задача не найдена")

type TodoRepository interface {
	Create(context.Context, string, string) (*todo.Todo, error)
	Update(context.Context, uuid.UUID, ...todo.Option) (*todo.Todo, error)
	Delete(context.Context, uuid.UUID) error
	ToggleComplete(context.Context, uuid.UUID) (*todo.Todo, error)
	GetByID(context.Context, uuid.UUID) (*todo.Todo, error)
	GetAll(context.Context) ([]*todo.Todo, error)
	GetByStatus(context.Context, todo.Status) ([]*todo.Todo, error)
}
