package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"timetable/internal/storage"
	"timetable/internal/timetable"
)

// Handler содержит зависимости HTTP-обработчиков.
type Handler struct {
	Book      *timetable.Book
	Store     storage.TableStore
	Location  *time.Location
	MaxUpload int64
	Logger    *zap.Logger

	// Now возвращает текущее время; подменяется в тестах.
	Now func() time.Time
}

// New создаёт набор обработчиков.
func New(book *timetable.Book, store storage.TableStore, loc *time.Location, maxUpload int64, logger *zap.Logger) *Handler {
	return &Handler{
		Book:      book,
		Store:     store,
		Location:  loc,
		MaxUpload: maxUpload,
		Logger:    logger,
		Now:       time.Now,
	}
}

// HealthHandler сообщает, что сервис запущен
// @Summary		Проверка состояния
// @Tags			service
// @Produce		json
// @Success		200	{object}	map[string]string
// @Router			/health [get]
func (h *Handler) HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
