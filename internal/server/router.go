// Package server собирает gin-маршрутизатор сервиса.
package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "timetable/docs"
	"timetable/internal/handlers"
	"timetable/internal/logging"
)

// NewRouter регистрирует все маршруты API.
func NewRouter(h *handlers.Handler, logger *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), logging.GinLogger(logger))
	if h.MaxUpload > 0 {
		r.MaxMultipartMemory = h.MaxUpload
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/health", h.HealthHandler)

	sections := r.Group("/sections")
	{
		sections.GET("", h.GetSectionsHandler)
		sections.GET("/:section/status", h.GetStatusHandler)
		sections.GET("/:section/days", h.GetDaysHandler)
		sections.GET("/:section/days/:day", h.GetDayHandler)
	}

	tables := r.Group("/tables")
	{
		tables.POST("", h.UploadTableHandler)
		tables.GET("/:id", h.GetTableHandler)
		tables.DELETE("/:id", h.DeleteTableHandler)
		tables.GET("/:id/partitions", h.GetPartitionsHandler)
		tables.GET("/:id/partitions/download", h.DownloadPartitionHandler)
		tables.GET("/:id/archive", h.DownloadArchiveHandler)
	}

	return r
}
