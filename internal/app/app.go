package app

import (
	"context"
	"fmt"
	"os"
	"todoTracker/internal/cli"
	"todoTracker/internal/config"
	"todoTracker/internal/logger"
	"todoTracker/internal/repository/todo/inmemory"
	"todoTracker/internal/service"
)

type App struct {
	config    *config.Config
	cli       *cli.CLI
	service   *service.TodoService
	shutdowns []func() // функции для graceful shutdown
}

func New(cfg *config.Config) *App {
	return &App{
		config:    cfg,
		shutdowns: make([]func(), 0),
	}
}

// Init собирает приложение: логгер, хранилище, сервис, консоль.
// Хранилище создаётся пустым и живёт ровно одну сессию.
func (a *App) Init(ctx context.Context) error {

	if err := logger.Init(a.config.Logging.Development); err != nil {
		return fmt.Errorf("инициализация логгера: %w", err)
	}

	a.shutdowns = append(a.shutdowns, func() {
		logger.Info("Завершение работы логгирования...")
		logger.Sync()
	})

	todoRepo := inmemory.NewTodoStorage()
	a.service = service.NewTodoService(todoRepo)
	a.cli = cli.New(a.service, a.config.CLI, os.Stdin, os.Stdout)

	logger.Info("Приложение собрано")
	return nil
}

func (a *App) Run(ctx context.Context) error {
	return a.cli.Run(ctx)
}

// Shutdown вызывает зарегистрированные функции в обратном порядке
func (a *App) Shutdown() {
	for i := len(a.shutdowns) - 1; i >= 0; i-- {
		a.shutdowns[i]()
	}
}
