package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"timetable/internal/response"
	"timetable/internal/timetable"
)

// SectionInfo - краткие сведения о секции.
type SectionInfo struct {
	Name     string                  `json:"name"`
	Entries  int                     `json:"entries"`
	LoadedAt time.Time               `json:"loaded_at"`
	Error    *response.ErrorResponse `json:"error,omitempty"`
}

// SectionsResponse - список секций.
type SectionsResponse struct {
	Default  string        `json:"default"`
	Sections []SectionInfo `json:"sections"`
}

// GetSectionsHandler возвращает список секций
// @Summary		Получение списка секций
// @Description	Возвращает секции, их количество занятий и ошибку загрузки файла, если она была
// @Tags			sections
// @Produce		json
// @Success		200	{object}	SectionsResponse	"Список секций"
// @Router			/sections [get]
func (h *Handler) GetSectionsHandler(c *gin.Context) {
	resp := SectionsResponse{Default: h.Book.Default(), Sections: []SectionInfo{}}
	for _, name := range h.Book.Names() {
		s, ok := h.Book.Get(name)
		if !ok {
			continue
		}
		resp.Sections = append(resp.Sections, SectionInfo{
			Name:     s.Name,
			Entries:  len(s.Entries),
			LoadedAt: s.LoadedAt,
			Error:    loadError(s),
		})
	}
	c.JSON(http.StatusOK, resp)
}

// section находит секцию из пути запроса; при отсутствии отвечает 404.
func (h *Handler) section(c *gin.Context) (timetable.Section, bool) {
	name := c.Param("section")
	s, ok := h.Book.Get(name)
	if !ok {
		response.Error(c, http.StatusNotFound, response.CodeSectionNotFound, "Секция не найдена", nil)
		return timetable.Section{}, false
	}
	return s, true
}

// loadError описывает ошибку загрузки файла секции.
// Ответ при этом остаётся успешным, а расписание - пустым.
func loadError(s timetable.Section) *response.ErrorResponse {
	if s.Err == nil {
		return nil
	}
	return &response.ErrorResponse{
		Code:    response.CodeSectionLoadFailed,
		Message: "Не удалось загрузить файл расписания",
		Details: s.Err.Error(),
	}
}
