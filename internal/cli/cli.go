package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"
	"todoTracker/internal/config"
	"todoTracker/internal/logger"
	"todoTracker/internal/models/todo"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type TodoService interface {
	CreateTodo(context.Context, string, string) (*todo.Todo, error)
	UpdateTodo(context.Context, string, string, string) (*todo.Todo, error)
	DeleteTodo(context.Context, string) error
	ToggleComplete(context.Context, string) (*todo.Todo, error)
	Snapshot(context.Context) ([]*todo.Todo, error)
	Filter(context.Context, todo.View) ([]*todo.Todo, error)
}

type CLI struct {
	service  TodoService
	cfg      config.CLIConfig
	in       io.Reader
	out      io.Writer
	validate *validator.Validate
}

func New(service TodoService, cfg config.CLIConfig, in io.Reader, out io.Writer) *CLI {
	return &CLI{
		service:  service,
		cfg:      cfg,
		in:       in,
		out:      out,
		validate: newValidate(),
	}
}

// Run крутит консольный цикл до quit/exit, конца ввода или отмены контекста.
// Команды выполняются строго по одной, мутации не перемежаются.
func (c *CLI) Run(ctx context.Context) error {
	fmt.Fprintln(c.out, "Todo-трекер. Введите 'help' для списка команд.")

	scanner := bufio.NewScanner(c.in)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		fmt.Fprint(c.out, c.cfg.Prompt)
		if !scanner.Scan() {
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		args, err := splitArgs(line)
		if err != nil {
			fmt.Fprintf(c.out, "Ошибка: %s\n", err.Error())
			continue
		}

		if args[0] == "quit" || args[0] == "exit" {
			fmt.Fprintln(c.out, "До встречи!")
			return nil
		}

		c.Dispatch(ctx, args)
	}
}

// Dispatch выполняет одну команду. Каждой команде присваивается свой
// идентификатор, который попадает во все её логи.
func (c *CLI) Dispatch(ctx context.Context, args []string) {
	start := time.Now()
	commandID := uuid.New().String()
	command := args[0]

	logger.CommandInfo(commandID, command, "CLI_IN: Начало команды",
		zap.Int("args", len(args)-1))

	switch command {
	case "add":
		c.AddTodo(ctx, commandID, args[1:])
	case "list":
		c.ListTodos(ctx, commandID, args[1:])
	case "edit":
		c.EditTodo(ctx, commandID, args[1:])
	case "done":
		c.ToggleTodo(ctx, commandID, args[1:])
	case "delete":
		c.DeleteTodo(ctx, commandID, args[1:])
	case "help":
		c.Help()
	default:
		logger.Warn("CLI: Неизвестная команда",
			zap.String("command_id", commandID),
			zap.String("command", command))
		fmt.Fprintf(c.out, "Неизвестная команда '%s'. Введите 'help'.\n", command)
	}

	logger.CommandInfo(commandID, command, "CLI_OUT: Завершение команды",
		zap.Duration("ms", time.Since(start)))
}

func (c *CLI) Help() {
	fmt.Fprint(c.out, `Команды:
  add "название" ["описание"]        - создать задачу
  list [all|active|completed]        - показать задачи (по умолчанию all)
  edit <id> "название" ["описание"]  - изменить название и описание
  done <id>                          - переключить статус выполнения
  delete <id>                        - удалить задачу
  help                               - эта справка
  quit                               - выход
`)
}

// splitArgs разбирает строку на аргументы, учитывая двойные кавычки
func splitArgs(line string) ([]string, error) {
	args := []string{}
	var current strings.Builder
	inQuotes := false
	hasToken := false

	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
			hasToken = true
		case r == ' ' && !inQuotes:
			if hasToken {
				args = append(args, current.String())
				current.Reset()
				hasToken = false
			}
		default:
			current.WriteRune(r)
			hasToken = true
		}
	}

	if inQuotes {
		return nil, fmt.Errorf("незакрытая кавычка")
	}
	if hasToken {
		args = append(args, current.String())
	}
	if len(args) == 0 {
		return nil, fmt.Errorf("пустая команда")
	}
	return args, nil
}
