// Package storage хранит загруженные пользователем таблицы на время сессии.
package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"timetable/internal/config"
	"timetable/internal/table"
)

// ErrNotFound - таблица с таким идентификатором отсутствует или устарела.
var ErrNotFound = errors.New("storage: table not found")

// TableStore - хранилище таблиц сессий. Таблица доступна только по своему id.
type TableStore interface {
	Save(ctx context.Context, t *table.Table) (string, error)
	Load(ctx context.Context, id string) (*table.Table, error)
	Delete(ctx context.Context, id string) error
}

// Sweeper реализуют хранилища, которым нужна периодическая очистка.
type Sweeper interface {
	Sweep() int
}

func newID() string {
	return uuid.NewString()
}

func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// New создаёт хранилище согласно STORE_DRIVER.
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (TableStore, error) {
	switch cfg.StoreDriver {
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("storage: ping redis %s: %w", cfg.RedisAddr, err)
		}
		logger.Info("Подключение к Redis успешно", zap.String("addr", cfg.RedisAddr))
		return NewRedisStore(client, cfg.SessionTTL), nil
	case "memory", "":
		return NewMemoryStore(cfg.SessionTTL), nil
	default:
		return nil, fmt.Errorf("storage: unknown driver %q", cfg.StoreDriver)
	}
}
