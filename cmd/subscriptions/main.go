// Package main Subscriptions API
//
// Сервис подписок: одна подписка на развёртывание, расчёты через внешний
// платёжный сервис, состояние в Redis.
//
// @title           Subscriptions API
// @version         1.0
// @description     API для покупки, смены и отмены подписки

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:3001
// @BasePath  /api
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/magabrotheeeer/subscriptions/internal/app/subscriptions"
	"github.com/magabrotheeeer/subscriptions/internal/config"
	applogger "github.com/magabrotheeeer/subscriptions/internal/lib/logger"
	"github.com/magabrotheeeer/subscriptions/internal/lib/sl"
)

func main() {
	cfg := config.MustLoad()

	logger, closeLog, err := applogger.Setup(cfg.Env, cfg.LogFile)
	if err != nil {
		log.Fatalf("cannot open log file: %s", err)
	}
	defer func() { _ = closeLog() }()

	logger.Info("starting subscriptions", slog.String("env", cfg.Env))
	logger.Debug("debug messages are enabled")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := subscriptions.New(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to initialize app", sl.Err(err))
		os.Exit(1)
	}

	if err := app.Run(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("app stopped with error", sl.Err(err))
		os.Exit(1)
	}

	logger.Info("subscriptions stopped gracefully")
}
