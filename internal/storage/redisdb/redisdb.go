// Package redisdb создаёт общее для процесса подключение к redis.
package redisdb

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/magabrotheeeer/subscriptions/internal/config"
)

// New создаёт клиент redis по конфигу и проверяет соединение командой PING.
func New(ctx context.Context, cfg config.RedisConnection) (*redis.Client, error) {
	const op = "redisdb.New"
	db := redis.NewClient(&redis.Options{
		Addr:         cfg.AddressRedis,
		Password:     cfg.Password,
		DB:           cfg.DB,
		Username:     cfg.User,
		MaxRetries:   cfg.MaxRetries,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.TimeoutRedis,
		WriteTimeout: cfg.TimeoutRedis,
	})

	if err := db.Ping(ctx).Err(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return db, nil
}

// Pinger то, что умеет отвечать на PING.
type Pinger interface {
	Ping(ctx context.Context) *redis.StatusCmd
}

// Healthcheck возвращает функцию проверки доступности redis для readiness-пробы.
func Healthcheck(db Pinger) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		const op = "redisdb.Healthcheck"
		if err := db.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		return nil
	}
}
