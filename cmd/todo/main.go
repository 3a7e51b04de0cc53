package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"todoTracker/internal/app"
	"todoTracker/internal/config"
)

func main() {
	cfg, err := config.Load("config.yml")
	if err != nil {
		// без конфига работаем на значениях по умолчанию
		cfg = config.Default()
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	application := app.New(cfg)
	if err := application.Init(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "ошибка запуска: %s\n", err.Error())
		os.Exit(1)
	}
	defer application.Shutdown()

	if err := application.Run(ctx); err != nil && ctx.Err() == nil {
		fmt.Fprintf(os.Stderr, "ошибка выполнения: %s\n", err.Error())
		os.Exit(1)
	}
}
