package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"todoTracker/internal/logger"
	"todoTracker/internal/models/todo"
	rep "todoTracker/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Единственный интерфейс, через который презентационный слой работает с коллекцией.
// Свою копию коллекции потребители не держат - после мутации перечитывают снимок.

type TodoService struct {
	repo rep.TodoRepository

	mtx     sync.Mutex
	lastErr error
}

func NewTodoService(repo rep.TodoRepository) *TodoService {
	return &TodoService{
		repo: repo,
	}
}

// Loading всегда false: сетевой задержки в этом ядре нет
func (s *TodoService) Loading() bool {
	return false
}

// LastErr возвращает ошибку последней неудачной операции, nil после успешной
func (s *TodoService) LastErr() error {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.lastErr
}

func (s *TodoService) setLastErr(err error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	s.lastErr = err
}

func (s *TodoService) CreateTodo(ctx context.Context, title, description string) (*todo.Todo, error) {
	created, err := s.repo.Create(ctx, title, description)
	if err != nil {
		err = fmt.Errorf("создание задачи: %w", err)
		s.setLastErr(err)
		return nil, err
	}

	s.setLastErr(nil)
	return created, nil
}

func (s *TodoService) UpdateTodo(ctx context.Context, id, title, description string) (*todo.Todo, error) {
	todoID, err := s.parseID(id)
	if err != nil {
		s.setLastErr(err)
		return nil, err
	}

	updated, err := s.repo.Update(ctx, todoID,
		todo.WithTitle(title),
		todo.WithDescription(description),
	)
	if err != nil {
		err = s.mapRepoError(id, err)
		s.setLastErr(err)
		return nil, err
	}

	s.setLastErr(nil)
	return updated, nil
}

func (s *TodoService) DeleteTodo(ctx context.Context, id string) error {
	todoID, err := s.parseID(id)
	if err != nil {
		s.setLastErr(err)
		return err
	}

	if err := s.repo.Delete(ctx, todoID); err != nil {
		err = s.mapRepoError(id, err)
		s.setLastErr(err)
		return err
	}

	s.setLastErr(nil)
	return nil
}

func (s *TodoService) ToggleComplete(ctx context.Context, id string) (*todo.Todo, error) {
	todoID, err := s.parseID(id)
	if err != nil {
		s.setLastErr(err)
		return nil, err
	}

	toggled, err := s.repo.ToggleComplete(ctx, todoID)
	if err != nil {
		err = s.mapRepoError(id, err)
		s.setLastErr(err)
		return nil, err
	}

	s.setLastErr(nil)
	return toggled, nil
}

// Snapshot - полный снимок коллекции в текущем порядке
func (s *TodoService) Snapshot(ctx context.Context) ([]*todo.Todo, error) {
	return s.repo.GetAll(ctx)
}

// Filter - проекция снимка по статусу, считается заново на каждый вызов
func (s *TodoService) Filter(ctx context.Context, view todo.View) ([]*todo.Todo, error) {
	switch view {
	case todo.ViewAll:
		return s.repo.GetAll(ctx)
	case todo.ViewActive:
		return s.repo.GetByStatus(ctx, todo.StatusPending)
	case todo.ViewCompleted:
		return s.repo.GetByStatus(ctx, todo.StatusCompleted)
	default:
		return nil, NewValidationError("view", fmt.Sprintf("неизвестный фильтр '%s'", view))
	}
}

// идентификаторы генерирует хранилище, поэтому нераспознанный id
// заведомо не соответствует ни одной задаче
func (s *TodoService) parseID(id string) (uuid.UUID, error) {
	todoID, err := uuid.Parse(id)
	if err != nil {
		logger.Info("Service: Задача не найдена", zap.String("target_id", id))
		return uuid.Nil, NewNotFound(id)
	}
	return todoID, nil
}

func (s *TodoService) mapRepoError(id string, err error) error {
	if errors.Is(err, rep.ErrNotFound) {
		logger.Info("Service: Задача не найдена", zap.String("target_id", id))
		return NewNotFound(id)
	}
	return fmt.Errorf("операция над задачей %s: %w", id, err)
}
