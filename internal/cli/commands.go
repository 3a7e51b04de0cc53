package cli

import (
	"context"
	"errors"
	"fmt"
	"time"
	"todoTracker/internal/cli/dto"
	"todoTracker/internal/logger"
	"todoTracker/internal/models/todo"
	"todoTracker/internal/service"

	"go.uber.org/zap"
)

func (c *CLI) AddTodo(ctx context.Context, commandID string, args []string) {
	if len(args) < 1 {
		fmt.Fprintln(c.out, "Использование: add \"название\" [\"описание\"]")
		return
	}

	request := dto.CreateTodoRequest{Title: args[0]}
	if len(args) > 1 {
		request.Description = args[1]
	}

	if err := c.validateRequest(request); err != nil {
		logger.Warn("CLI: Ошибка валидации",
			zap.String("command_id", commandID),
			zap.Error(err))
		c.renderError(err)
		return
	}

	c.mutationDelay()

	created, err := c.service.CreateTodo(ctx, request.Title, request.Description)
	if err != nil {
		logger.Error("CLI: Ошибка Service", err, zap.String("command_id", commandID))
		c.renderError(err)
		return
	}

	logger.CommandInfo(commandID, "add", "CLI: Задача создана",
		zap.String("todo_id", created.ID.String()))
	fmt.Fprintf(c.out, "Создана задача %s\n", created.ID.String())
	c.renderTodos([]*todo.Todo{created})
}

func (c *CLI) ListTodos(ctx context.Context, commandID string, args []string) {
	// без аргумента показываем полный снимок, с аргументом - проекцию
	if len(args) == 0 {
		todos, err := c.service.Snapshot(ctx)
		if err != nil {
			logger.Error("CLI: Ошибка Service", err, zap.String("command_id", commandID))
			c.renderError(err)
			return
		}
		if len(todos) == 0 {
			fmt.Fprintln(c.out, "Задач нет.")
			return
		}
		c.renderTodos(todos)
		return
	}

	view := todo.View(args[0])
	if !view.Valid() {
		logger.Warn("CLI: Неверное значение параметра",
			zap.String("command_id", commandID),
			zap.String("view", string(view)))
		fmt.Fprintf(c.out, "Неизвестный фильтр '%s'. Доступны: all, active, completed.\n", view)
		return
	}

	todos, err := c.service.Filter(ctx, view)
	if err != nil {
		logger.Error("CLI: Ошибка Service", err, zap.String("command_id", commandID))
		c.renderError(err)
		return
	}

	if len(todos) == 0 {
		fmt.Fprintln(c.out, "Задач нет.")
		return
	}
	c.renderTodos(todos)
}

func (c *CLI) EditTodo(ctx context.Context, commandID string, args []string) {
	if len(args) < 2 {
		fmt.Fprintln(c.out, "Использование: edit <id> \"название\" [\"описание\"]")
		return
	}

	request := dto.UpdateTodoRequest{ID: args[0], Title: args[1]}
	if len(args) > 2 {
		request.Description = args[2]
	}

	if err := c.validateRequest(request); err != nil {
		logger.Warn("CLI: Ошибка валидации",
			zap.String("command_id", commandID),
			zap.Error(err))
		c.renderError(err)
		return
	}

	c.mutationDelay()

	updated, err := c.service.UpdateTodo(ctx, request.ID, request.Title, request.Description)
	if err != nil {
		logger.Error("CLI: Ошибка Service", err, zap.String("command_id", commandID))
		c.renderError(err)
		return
	}

	logger.CommandInfo(commandID, "edit", "CLI: Задача обновлена",
		zap.String("todo_id", updated.ID.String()))
	c.renderTodos([]*todo.Todo{updated})
}

func (c *CLI) ToggleTodo(ctx context.Context, commandID string, args []string) {
	if len(args) < 1 {
		fmt.Fprintln(c.out, "Использование: done <id>")
		return
	}

	c.mutationDelay()

	toggled, err := c.service.ToggleComplete(ctx, args[0])
	if err != nil {
		logger.Error("CLI: Ошибка Service", err, zap.String("command_id", commandID))
		c.renderError(err)
		return
	}

	logger.CommandInfo(commandID, "done", "CLI: Статус переключён",
		zap.String("todo_id", toggled.ID.String()),
		zap.String("status", string(toggled.Status)))
	c.renderTodos([]*todo.Todo{toggled})
}

func (c *CLI) DeleteTodo(ctx context.Context, commandID string, args []string) {
	if len(args) < 1 {
		fmt.Fprintln(c.out, "Использование: delete <id>")
		return
	}

	c.mutationDelay()

	if err := c.service.DeleteTodo(ctx, args[0]); err != nil {
		logger.Error("CLI: Ошибка Service", err, zap.String("command_id", commandID))
		c.renderError(err)
		return
	}

	logger.CommandInfo(commandID, "delete", "CLI: Задача удалена",
		zap.String("todo_id", args[0]))
	fmt.Fprintf(c.out, "Задача %s удалена\n", args[0])
}

// renderError печатает бизнес-ошибку без изменения показанного состояния
func (c *CLI) renderError(err error) {
	var businessErr *service.BusinessError
	if errors.As(err, &businessErr) {
		fmt.Fprintf(c.out, "Ошибка [%s]: %s\n", businessErr.Code, businessErr.Message)
		return
	}
	fmt.Fprintf(c.out, "Ошибка: %s\n", err.Error())
}

// задержка перед мутацией из конфига, по умолчанию нулевая
func (c *CLI) mutationDelay() {
	if c.cfg.MutationDelay > 0 {
		time.Sleep(c.cfg.MutationDelay)
	}
}
