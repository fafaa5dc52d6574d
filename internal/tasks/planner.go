// Package tasks - периодические задачи сервиса.
package tasks

import (
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Reloader перечитывает файлы расписаний.
type Reloader interface {
	Reload() int
}

// Sweeper удаляет устаревшие таблицы сессий.
type Sweeper interface {
	Sweep() int
}

// ReloadTimetables перечитывает расписания всех секций.
func ReloadTimetables(book Reloader, logger *zap.Logger) {
	if failed := book.Reload(); failed > 0 {
		logger.Warn("Часть расписаний не загружена", zap.Int("failed", failed))
		return
	}
	logger.Info("Расписания перечитаны")
}

// CleanExpiredTables удаляет устаревшие таблицы из хранилища в памяти.
func CleanExpiredTables(store Sweeper, logger *zap.Logger) {
	if n := store.Sweep(); n > 0 {
		logger.Info("Устаревшие таблицы удалены", zap.Int("count", n))
	}
}

// InitScheduler инициализирует планировщик cron-задач.
// store может быть nil, если хранилище не требует очистки.
func InitScheduler(reloadCron string, book Reloader, store Sweeper, logger *zap.Logger) (*cron.Cron, error) {
	c := cron.New(cron.WithSeconds())

	if _, err := c.AddFunc(reloadCron, func() { ReloadTimetables(book, logger) }); err != nil {
		return nil, err
	}

	// Очистка таблиц сессий каждые 5 минут.
	if store != nil {
		if _, err := c.AddFunc("0 */5 * * * *", func() { CleanExpiredTables(store, logger) }); err != nil {
			return nil, err
		}
	}

	c.Start()
	logger.Info("Cron-планировщик запущен", zap.String("reload", reloadCron))
	return c, nil
}
