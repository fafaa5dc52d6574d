package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"timetable/internal/models"
	"timetable/internal/response"
	"timetable/internal/schedule"
	"timetable/internal/timetable"
)

// Состояния дня для StatusResponse.
const (
	StateInProgress = "in_progress"
	StateUpcoming   = "upcoming"
	StateNoClasses  = "no_classes"
	StateOver       = "over"
)

// StatusResponse - текущее и следующее занятие секции.
type StatusResponse struct {
	Section string                  `json:"section"`
	Now     time.Time               `json:"now"`
	Day     string                  `json:"day"`
	State   string                  `json:"state" example:"in_progress"`
	Current *models.ScheduleEntry   `json:"current"`
	Next    *models.ScheduleEntry   `json:"next"`
	Error   *response.ErrorResponse `json:"error,omitempty"`
}

// DaysResponse - дни, в которые у секции есть занятия.
type DaysResponse struct {
	Section string                  `json:"section"`
	Days    []string                `json:"days"`
	Error   *response.ErrorResponse `json:"error,omitempty"`
}

// TimelineItem - занятие или перерыв в ленте дня.
type TimelineItem struct {
	Kind  string                `json:"kind" example:"class"`
	Class *models.ScheduleEntry `json:"class,omitempty"`
	Break *schedule.Break       `json:"break,omitempty"`
}

// DayResponse - занятия дня с перерывами между ними.
type DayResponse struct {
	Section string                  `json:"section"`
	Day     string                  `json:"day"`
	Items   []TimelineItem          `json:"items"`
	Error   *response.ErrorResponse `json:"error,omitempty"`
}

// StateOf переводит результат Resolve в состояние дня.
func StateOf(st schedule.Status) string {
	switch {
	case !st.HasClasses:
		return StateNoClasses
	case st.Current != nil:
		return StateInProgress
	case st.Next != nil:
		return StateUpcoming
	default:
		return StateOver
	}
}

// GetStatusHandler возвращает текущее и следующее занятие
// @Summary		Что идёт сейчас и что дальше
// @Description	Определяет текущее и ближайшее занятие секции на сегодня (фиксированный часовой пояс). Параметр at позволяет задать момент времени явно.
// @Tags			schedule
// @Produce		json
// @Param			section	path		string	true	"Название секции"
// @Param			at		query		string	false	"Момент времени в формате RFC3339"
// @Success		200		{object}	StatusResponse			"Текущее и следующее занятие"
// @Failure		400		{object}	response.ErrorResponse	"Неверный формат времени (INVALID_TIME)"
// @Failure		404		{object}	response.ErrorResponse	"Секция не найдена (SECTION_NOT_FOUND)"
// @Router			/sections/{section}/status [get]
func (h *Handler) GetStatusHandler(c *gin.Context) {
	s, ok := h.section(c)
	if !ok {
		return
	}

	now := h.Now()
	if at := c.Query("at"); at != "" {
		t, err := time.Parse(time.RFC3339, at)
		if err != nil {
			response.Error(c, http.StatusBadRequest, response.CodeInvalidTime, "Неверный формат времени, ожидается RFC3339", err)
			return
		}
		now = t
	}
	now = now.In(h.Location)

	st := schedule.Resolve(now, s.Entries)
	c.JSON(http.StatusOK, StatusResponse{
		Section: s.Name,
		Now:     now,
		Day:     st.Day,
		State:   StateOf(st),
		Current: st.Current,
		Next:    st.Next,
		Error:   loadError(s),
	})
}

// GetDaysHandler возвращает дни недели с занятиями
// @Summary		Дни с занятиями
// @Description	Возвращает дни недели, в которые у секции есть занятия, в порядке понедельник - воскресенье
// @Tags			schedule
// @Produce		json
// @Param			section	path		string	true	"Название секции"
// @Success		200		{object}	DaysResponse			"Список дней"
// @Failure		404		{object}	response.ErrorResponse	"Секция не найдена (SECTION_NOT_FOUND)"
// @Router			/sections/{section}/days [get]
func (h *Handler) GetDaysHandler(c *gin.Context) {
	s, ok := h.section(c)
	if !ok {
		return
	}
	days := schedule.OrderedDays(s.Entries)
	if days == nil {
		days = []string{}
	}
	c.JSON(http.StatusOK, DaysResponse{Section: s.Name, Days: days, Error: loadError(s)})
}

// GetDayHandler возвращает занятия дня с перерывами
// @Summary		Расписание на день
// @Description	Возвращает занятия дня по времени начала; между занятиями вставляются перерывы длиннее 15 минут
// @Tags			schedule
// @Produce		json
// @Param			section	path		string	true	"Название секции"
// @Param			day		path		string	true	"День недели, например Monday"
// @Success		200		{object}	DayResponse				"Занятия и перерывы"
// @Failure		400		{object}	response.ErrorResponse	"Неизвестный день недели (INVALID_DAY)"
// @Failure		404		{object}	response.ErrorResponse	"Секция не найдена (SECTION_NOT_FOUND)"
// @Router			/sections/{section}/days/{day} [get]
func (h *Handler) GetDayHandler(c *gin.Context) {
	s, ok := h.section(c)
	if !ok {
		return
	}
	day := timetable.NormalizeDay(c.Param("day"))
	if models.WeekdayIndex(day) < 0 {
		response.Error(c, http.StatusBadRequest, response.CodeInvalidDay, "Неизвестный день недели", nil)
		return
	}

	items := []TimelineItem{}
	for it := range schedule.Timeline(schedule.DaySchedule(s.Entries, day)) {
		if it.Break != nil {
			items = append(items, TimelineItem{Kind: "break", Break: it.Break})
		} else {
			items = append(items, TimelineItem{Kind: "class", Class: it.Entry})
		}
	}
	c.JSON(http.StatusOK, DayResponse{Section: s.Name, Day: day, Items: items, Error: loadError(s)})
}
