package main

import (
	"context"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"timetable/internal/config"
	"timetable/internal/handlers"
	"timetable/internal/logging"
	"timetable/internal/server"
	"timetable/internal/storage"
	"timetable/internal/tasks"
	"timetable/internal/timetable"
)

// @Title			Расписание секции и разбиение таблиц
// @Version		1.0
// @Description	Текущее и следующее занятие, расписание по дням с перерывами, разбиение загруженных таблиц по колонке.
func main() {
	if err := config.LoadEnv(); err != nil {
		fmt.Println("Файл .env не найден, используются переменные окружения")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Ошибка конфигурации: ", err.Error())
	}

	logger, err := logging.New(cfg.LogLevel, cfg.GinMode == gin.DebugMode)
	if err != nil {
		log.Fatal("Ошибка инициализации логгера: ", err.Error())
	}
	defer logger.Sync()

	loc, err := cfg.Location()
	if err != nil {
		logger.Fatal("Неверный UTC_OFFSET", zap.String("offset", cfg.UTCOffset), zap.Error(err))
	}

	book := timetable.NewBook(cfg.Sections, cfg.DefaultSection, logger)
	if failed := book.Load(); failed > 0 {
		logger.Warn("Часть расписаний не загружена", zap.Int("failed", failed))
	}

	store, err := storage.New(context.Background(), cfg, logger)
	if err != nil {
		logger.Fatal("Ошибка подключения хранилища таблиц", zap.Error(err))
	}

	var sweeper tasks.Sweeper
	if s, ok := store.(storage.Sweeper); ok {
		sweeper = s
	}
	scheduler, err := tasks.InitScheduler(cfg.ReloadCron, book, sweeper, logger)
	if err != nil {
		logger.Fatal("Ошибка запуска планировщика", zap.String("cron", cfg.ReloadCron), zap.Error(err))
	}
	defer scheduler.Stop()

	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	h := handlers.New(book, store, loc, cfg.MaxUploadBytes(), logger)
	r := server.NewRouter(h, logger)

	logger.Info("Сервер запущен", zap.String("addr", cfg.Addr))
	if err := r.Run(cfg.Addr); err != nil {
		logger.Fatal("Ошибка запуска сервера", zap.Error(err))
	}
}
