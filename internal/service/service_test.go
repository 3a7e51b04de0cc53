package service_test

import (
	"context"
	"errors"
	"testing"
	"todoTracker/internal/models/todo"
	"todoTracker/internal/repository"
	"todoTracker/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockTodoRepository - мок хранилища
type MockTodoRepository struct {
	mock.Mock
}

func (m *MockTodoRepository) Create(ctx context.Context, title, description string) (*todo.Todo, error) {
	args := m.Called(ctx, title, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*todo.Todo), args.Error(1)
}

func (m *MockTodoRepository) Update(ctx context.Context, id uuid.UUID, options ...todo.Option) (*todo.Todo, error) {
	args := m.Called(ctx, id, options)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*todo.Todo), args.Error(1)
}

func (m *MockTodoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTodoRepository) ToggleComplete(ctx context.Context, id uuid.UUID) (*todo.Todo, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*todo.Todo), args.Error(1)
}

func (m *MockTodoRepository) GetByID(ctx context.Context, id uuid.UUID) (*todo.Todo, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*todo.Todo), args.Error(1)
}

func (m *MockTodoRepository) GetAll(ctx context.Context) ([]*todo.Todo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*todo.Todo), args.Error(1)
}

func (m *MockTodoRepository) GetByStatus(ctx context.Context, status todo.Status) ([]*todo.Todo, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*todo.Todo), args.Error(1)
}

var _ repository.TodoRepository = (*MockTodoRepository)(nil)

// TestTodoService_CreateTodo тестирует создание задачи через сервис
func TestTodoService_CreateTodo(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockTodoRepository)
	svc := service.NewTodoService(mockRepo)

	expected := &todo.Todo{ID: uuid.New(), Title: "Buy milk", Description: "2%", Status: todo.StatusPending}
	mockRepo.On("Create", mock.Anything, "Buy milk", "2%").Return(expected, nil)

	created, err := svc.CreateTodo(ctx, "Buy milk", "2%")
	require.NoError(t, err)
	assert.Equal(t, expected, created)
	assert.NoError(t, svc.LastErr())
	mockRepo.AssertExpectations(t)
}

// TestTodoService_UpdateTodo тестирует обновление через сервис
func TestTodoService_UpdateTodo(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	tests := []struct {
		name        string
		id          string
		setupMock   func(*MockTodoRepository)
		expectError string
	}{
		{
			name: "success - todo updated",
			id:   id.String(),
			setupMock: func(m *MockTodoRepository) {
				m.On("Update", mock.Anything, id, mock.Anything).
					Return(&todo.Todo{ID: id, Title: "New"}, nil)
			},
		},
		{
			name: "fail - repo reports not found",
			id:   id.String(),
			setupMock: func(m *MockTodoRepository) {
				m.On("Update", mock.Anything, id, mock.Anything).
					Return(nil, repository.ErrNotFound)
			},
			expectError: "NOT_FOUND",
		},
		{
			name:        "fail - malformed id never reaches repo",
			id:          "nonexistent-id",
			setupMock:   func(m *MockTodoRepository) {},
			expectError: "NOT_FOUND",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockTodoRepository)
			tt.setupMock(mockRepo)
			svc := service.NewTodoService(mockRepo)

			updated, err := svc.UpdateTodo(ctx, tt.id, "New", "")
			if tt.expectError != "" {
				require.Error(t, err)
				var businessErr *service.BusinessError
				require.ErrorAs(t, err, &businessErr)
				assert.Equal(t, tt.expectError, businessErr.Code)
				assert.Nil(t, updated)
				assert.Error(t, svc.LastErr())
			} else {
				require.NoError(t, err)
				require.NotNil(t, updated)
				assert.NoError(t, svc.LastErr())
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

// TestTodoService_DeleteTodo тестирует удаление через сервис
func TestTodoService_DeleteTodo(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	mockRepo := new(MockTodoRepository)
	mockRepo.On("Delete", mock.Anything, id).Return(nil)
	svc := service.NewTodoService(mockRepo)

	err := svc.DeleteTodo(ctx, id.String())
	require.NoError(t, err)
	assert.NoError(t, svc.LastErr())
	mockRepo.AssertExpectations(t)
}

// TestTodoService_DeleteTodo_NotFound: удаление несуществующего id даёт NOT_FOUND
func TestTodoService_DeleteTodo_NotFound(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	mockRepo := new(MockTodoRepository)
	mockRepo.On("Delete", mock.Anything, id).Return(repository.ErrNotFound)
	svc := service.NewTodoService(mockRepo)

	err := svc.DeleteTodo(ctx, id.String())
	require.Error(t, err)

	var businessErr *service.BusinessError
	require.ErrorAs(t, err, &businessErr)
	assert.Equal(t, "NOT_FOUND", businessErr.Code)
	assert.Equal(t, err, svc.LastErr())
	mockRepo.AssertExpectations(t)
}

// TestTodoService_ToggleComplete тестирует переключение статуса через сервис
func TestTodoService_ToggleComplete(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	mockRepo := new(MockTodoRepository)
	mockRepo.On("ToggleComplete", mock.Anything, id).
		Return(&todo.Todo{ID: id, Status: todo.StatusCompleted}, nil)
	svc := service.NewTodoService(mockRepo)

	toggled, err := svc.ToggleComplete(ctx, id.String())
	require.NoError(t, err)
	assert.Equal(t, todo.StatusCompleted, toggled.Status)
	mockRepo.AssertExpectations(t)
}

// TestTodoService_Filter тестирует выбор проекции по фильтру
func TestTodoService_Filter(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		view      todo.View
		setupMock func(*MockTodoRepository)
		wantErr   bool
	}{
		{
			name: "all - полный снимок",
			view: todo.ViewAll,
			setupMock: func(m *MockTodoRepository) {
				m.On("GetAll", mock.Anything).Return([]*todo.Todo{}, nil)
			},
		},
		{
			name: "active - только pending",
			view: todo.ViewActive,
			setupMock: func(m *MockTodoRepository) {
				m.On("GetByStatus", mock.Anything, todo.StatusPending).Return([]*todo.Todo{}, nil)
			},
		},
		{
			name: "completed - только completed",
			view: todo.ViewCompleted,
			setupMock: func(m *MockTodoRepository) {
				m.On("GetByStatus", mock.Anything, todo.StatusCompleted).Return([]*todo.Todo{}, nil)
			},
		},
		{
			name:      "неизвестный фильтр",
			view:      todo.View("archived"),
			setupMock: func(m *MockTodoRepository) {},
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockTodoRepository)
			tt.setupMock(mockRepo)
			svc := service.NewTodoService(mockRepo)

			_, err := svc.Filter(ctx, tt.view)
			if tt.wantErr {
				var businessErr *service.BusinessError
				require.ErrorAs(t, err, &businessErr)
				assert.Equal(t, "VALIDATION_ERROR", businessErr.Code)
			} else {
				require.NoError(t, err)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

// TestTodoService_Loading: в этом ядре нет сетевой задержки
func TestTodoService_Loading(t *testing.T) {
	svc := service.NewTodoService(new(MockTodoRepository))
	assert.False(t, svc.Loading())
}

// TestTodoService_LastErr тестирует сброс последней ошибки после успеха
func TestTodoService_LastErr(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	mockRepo := new(MockTodoRepository)
	mockRepo.On("Delete", mock.Anything, id).Return(repository.ErrNotFound).Once()
	mockRepo.On("Create", mock.Anything, "Next", "").
		Return(&todo.Todo{ID: uuid.New(), Title: "Next"}, nil).Once()
	svc := service.NewTodoService(mockRepo)

	require.Error(t, svc.DeleteTodo(ctx, id.String()))
	require.Error(t, svc.LastErr())

	_, err := svc.CreateTodo(ctx, "Next", "")
	require.NoError(t, err)
	assert.NoError(t, svc.LastErr())
	mockRepo.AssertExpectations(t)
}

// TestTodoService_RepoFailurePropagates: не-NotFound ошибка оборачивается как есть
func TestTodoService_RepoFailurePropagates(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	repoErr := errors.New("хранилище сломалось")

	mockRepo := new(MockTodoRepository)
	mockRepo.On("ToggleComplete", mock.Anything, id).Return(nil, repoErr)
	svc := service.NewTodoService(mockRepo)

	_, err := svc.ToggleComplete(ctx, id.String())
	require.Error(t, err)
	assert.ErrorIs(t, err, repoErr)

	var businessErr *service.BusinessError
	assert.False(t, errors.As(err, &businessErr))
	mockRepo.AssertExpectations(t)
}
