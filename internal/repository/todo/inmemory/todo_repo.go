package inmemory

import (
	"context"
	"sync"
	"time"
	"todoTracker/internal/logger"
	"todoTracker/internal/models/todo"
	repo "todoTracker/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TodoStorage - единственный владелец коллекции задач.
// Порядок в ids: новые задачи в начале, мутации порядок не меняют.
type TodoStorage struct {
	storage map[uuid.UUID]*todo.Todo
	mtx     *sync.RWMutex
	ids     []uuid.UUID
}

func NewTodoStorage() *TodoStorage {
	return &TodoStorage{
		storage: make(map[uuid.UUID]*todo.Todo),
		mtx:     &sync.RWMutex{},
		ids:     []uuid.UUID{},
	}
}

func (s *TodoStorage) HealthCheck(ctx context.Context) error {
	logger.Info("Repository: Хранилище доступно")
	return nil
}

func (s *TodoStorage) Create(ctx context.Context, title, description string) (*todo.Todo, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	todoToCreate := &todo.Todo{
		ID:          uuid.New(),
		Title:       title,
		Description: description,
		Status:      todo.StatusPending,
		CreatedAt:   time.Now(),
	}

	s.storage[todoToCreate.ID] = todoToCreate
	s.ids = append([]uuid.UUID{todoToCreate.ID}, s.ids...)

	logger.Info("Repository: Задача создана", zap.String("todo_id", todoToCreate.ID.String()))
	return todoToCreate.Clone(), nil
}

func (s *TodoStorage) Update(ctx context.Context, id uuid.UUID, options ...todo.Option) (*todo.Todo, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	todoToUpdate, ok := s.storage[id]
	if !ok {
		return nil, repo.ErrNotFound
	}

	for _, opt := range options {
		opt(todoToUpdate)
	}

	now := time.Now()
	todoToUpdate.UpdatedAt = &now

	return todoToUpdate.Clone(), nil
}

func (s *TodoStorage) Delete(ctx context.Context, id uuid.UUID) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if _, ok := s.storage[id]; !ok {
		return repo.ErrNotFound
	}

	delete(s.storage, id)
	for ind, val := range s.ids {
		if val == id {
			s.ids = append(s.ids[:ind], s.ids[ind+1:]...)
			break
		}
	}

	logger.Info("Repository: Задача удалена", zap.String("todo_id", id.String()))
	return nil
}

func (s *TodoStorage) ToggleComplete(ctx context.Context, id uuid.UUID) (*todo.Todo, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	todoToToggle, ok := s.storage[id]
	if !ok {
		return nil, repo.ErrNotFound
	}

	now := time.Now()
	if todoToToggle.Status == todo.StatusPending {
		todoToToggle.Status = todo.StatusCompleted
		todoToToggle.CompletedAt = &now
	} else {
		todoToToggle.Status = todo.StatusPending
		todoToToggle.CompletedAt = nil
	}
	todoToToggle.UpdatedAt = &now

	return todoToToggle.Clone(), nil
}

func (s *TodoStorage) GetByID(ctx context.Context, id uuid.UUID) (*todo.Todo, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	todoToGet, ok := s.storage[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return todoToGet.Clone(), nil
}

// полный снимок коллекции в текущем порядке
func (s *TodoStorage) GetAll(ctx context.Context) ([]*todo.Todo, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	res := make([]*todo.Todo, 0, len(s.ids))
	for _, id := range s.ids {
		res = append(res, s.storage[id].Clone())
	}
	return res, nil
}

// проекция по статусу, коллекцию не изменяет
func (s *TodoStorage) GetByStatus(ctx context.Context, status todo.Status) ([]*todo.Todo, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	res := []*todo.Todo{}
	for _, id := range s.ids {
		todoToGet := s.storage[id]
		if todoToGet.Status != status {
			continue
		}
		res = append(res, todoToGet.Clone())
	}
	return res, nil
}
