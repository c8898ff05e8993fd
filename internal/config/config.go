// Package config предоставляет структуры и функции для загрузки конфигурации сервиса подписок.
//
// Конфиг читается из YAML-файла (путь в CONFIG_PATH), после чего значения
// переопределяются переменными окружения. Файл .env в рабочем каталоге, если
// он есть, загружается в окружение до чтения конфига.
package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config общая структура для хранения настроек
type Config struct {
	Env             string `yaml:"env" env:"ENV" env-default:"local"`
	LogFile         string `yaml:"log_file" env:"LOG_FILE"`
	PricePerMonth   int    `yaml:"price_per_month" env:"PRICE_PER_MONTH" env-default:"10"`
	HTTPServer      `yaml:"http_server"`
	RedisConnection `yaml:"redis_connection"`
	PaymentsService `yaml:"payments_service"`
	RabbitMQ        `yaml:"rabbitmq"`
	RateLimit       `yaml:"rate_limit"`
}

// HTTPServer структура для настройки сервера
type HTTPServer struct {
	AddressHTTP string        `yaml:"address" env:"HTTP_ADDRESS" env-default:":3001"`
	TimeoutHTTP time.Duration `yaml:"timeout" env:"HTTP_TIMEOUT" env-default:"10s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
}

// RedisConnection структура для настройки подключения к redis
type RedisConnection struct {
	AddressRedis string        `yaml:"address" env:"REDIS_ADDRESS" env-default:"localhost:6379"`
	Password     string        `yaml:"password" env:"REDIS_PASSWORD"`
	User         string        `yaml:"user" env:"REDIS_USER"`
	DB           int           `yaml:"db" env:"REDIS_DB"`
	MaxRetries   int           `yaml:"max_retries" env:"REDIS_MAX_RETRIES" env-default:"3"`
	DialTimeout  time.Duration `yaml:"dial_timeout" env:"REDIS_DIAL_TIMEOUT" env-default:"5s"`
	TimeoutRedis time.Duration `yaml:"timeout" env:"REDIS_TIMEOUT" env-default:"3s"`
}

// PaymentsService настройки клиента платёжного сервиса
type PaymentsService struct {
	URL     string        `yaml:"url" env:"PAYMENTS_SERVICE_URL" env-default:"http://localhost:3000"`
	Timeout time.Duration `yaml:"timeout" env:"PAYMENTS_SERVICE_TIMEOUT" env-default:"5s"`
}

// RabbitMQ настройки публикации событий. Пустой URL отключает публикацию.
type RabbitMQ struct {
	URL      string `yaml:"url" env:"RABBITMQ_URL"`
	Exchange string `yaml:"exchange" env:"RABBITMQ_EXCHANGE" env-default:"subscriptions"`
}

// RateLimit настройки глобального ограничителя запросов. RPS = 0 отключает ограничение.
type RateLimit struct {
	RPS   float64 `yaml:"rps" env:"RATE_LIMIT_RPS"`
	Burst int     `yaml:"burst" env:"RATE_LIMIT_BURST" env-default:"10"`
}

// ErrInvalidPrice возвращается, если цена за месяц не положительна.
var ErrInvalidPrice = errors.New("price_per_month must be positive")

// Load читает конфиг из файла и переменных окружения.
func Load(configPath string) (*Config, error) {
	const op = "config.Load"

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%s: file %s does not exist", op, configPath)
	}

	var cfg Config
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if cfg.PricePerMonth <= 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidPrice)
	}
	return &cfg, nil
}

// MustLoad загружает конфиг по пути из CONFIG_PATH и завершает процесс при ошибке.
func MustLoad() *Config {
	// .env может отсутствовать
	_ = godotenv.Load()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}

	cfg, err := Load(configPath)
	if err != nil {
		log.Fatalf("cannot read config: %s", err)
	}
	return cfg
}

func (c *Config) String() string {
	return fmt.Sprintf(
		"Env: %s\n"+
			"LogFile: %s\n"+
			"PricePerMonth: %d\n"+
			"HTTPServer:\n"+
			"  Address: %s\n"+
			"  Timeout: %s\n"+
			"  IdleTimeout: %s\n"+
			"RedisConnection:\n"+
			"  Addr: %s\n"+
			"  Password: %s\n"+
			"  User: %s\n"+
			"  DB: %d\n"+
			"  MaxRetries: %d\n"+
			"  DialTimeout: %s\n"+
			"  Timeout: %s\n"+
			"PaymentsService:\n"+
			"  URL: %s\n"+
			"  Timeout: %s\n"+
			"RabbitMQ:\n"+
			"  URL: %s\n"+
			"  Exchange: %s\n"+
			"RateLimit:\n"+
			"  RPS: %g\n"+
			"  Burst: %d\n",
		c.Env,
		c.LogFile,
		c.PricePerMonth,
		c.AddressHTTP,
		c.TimeoutHTTP,
		c.IdleTimeout,
		c.AddressRedis,
		redact(c.Password),
		c.User,
		c.DB,
		c.MaxRetries,
		c.DialTimeout,
		c.TimeoutRedis,
		c.PaymentsService.URL,
		c.PaymentsService.Timeout,
		redact(c.RabbitMQ.URL),
		c.Exchange,
		c.RPS,
		c.Burst,
	)
}

func redact(secret string) string {
	if secret == "" {
		return "[NOT SET]"
	}
	return "[CONFIGURED]"
}
