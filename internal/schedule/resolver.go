// Package schedule определяет текущее и следующее занятие и перерывы между занятиями.
// Все функции чистые: на вход список занятий и момент времени, на выход - результат.
package schedule

import (
	"sort"
	"time"

	"timetable/internal/models"
)

// Status - результат разрешения "сейчас идёт / далее" для одного дня.
type Status struct {
	Day        string                `json:"day"`
	Current    *models.ScheduleEntry `json:"current"`
	Next       *models.ScheduleEntry `json:"next"`
	HasClasses bool                  `json:"has_classes"`
}

// Over сообщает, что занятия на сегодня закончились.
func (s Status) Over() bool {
	return s.HasClasses && s.Current == nil && s.Next == nil
}

// DaySchedule возвращает занятия дня day, отсортированные по времени начала.
// Исходный срез не изменяется.
func DaySchedule(entries []models.ScheduleEntry, day string) []models.ScheduleEntry {
	var out []models.ScheduleEntry
	for _, e := range entries {
		if e.Day == day {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Start < out[j].Start })
	return out
}

// Resolve находит текущее и ближайшее следующее занятие на день момента now.
// При пересечении интервалов текущим считается последнее подходящее занятие.
func Resolve(now time.Time, entries []models.ScheduleEntry) Status {
	day := models.WeekdayName(now)
	today := DaySchedule(entries, day)
	st := Status{Day: day, HasClasses: len(today) > 0}
	if !st.HasClasses {
		return st
	}

	at := models.SinceMidnight(now)
	for i := range today {
		e := today[i]
		if e.Start.Duration() <= at && at <= e.End.Duration() {
			st.Current = &e
		} else if e.Start.Duration() > at && st.Next == nil {
			st.Next = &e
		}
	}
	return st
}

// OrderedDays возвращает различные дни расписания в порядке понедельник..воскресенье.
// Нестандартные названия идут первыми в порядке появления.
func OrderedDays(entries []models.ScheduleEntry) []string {
	seen := make(map[string]bool)
	var days []string
	for _, e := range entries {
		if !seen[e.Day] {
			seen[e.Day] = true
			days = append(days, e.Day)
		}
	}
	sort.SliceStable(days, func(i, j int) bool {
		return models.WeekdayIndex(days[i]) < models.WeekdayIndex(days[j])
	})
	return days
}
