package schedule

import (
	"fmt"
	"iter"
	"strings"

	"timetable/internal/models"
)

// BreakThreshold - перерывы не длиннее этого значения (в минутах) не показываются.
const BreakThreshold = 15

// Break - перерыв между двумя соседними занятиями.
type Break struct {
	From    models.Clock `json:"from"`
	To      models.Clock `json:"to"`
	Minutes int          `json:"minutes"`
	Label   string       `json:"label"`
}

// Item - элемент ленты дня: либо занятие, либо перерыв.
type Item struct {
	Entry *models.ScheduleEntry
	Break *Break
}

// FormatGap форматирует длительность: "1 hr 30 min", "2 hr", "16 min".
func FormatGap(minutes int) string {
	var parts []string
	if h := minutes / 60; h > 0 {
		parts = append(parts, fmt.Sprintf("%d hr", h))
	}
	if m := minutes % 60; m > 0 {
		parts = append(parts, fmt.Sprintf("%d min", m))
	}
	return strings.Join(parts, " ")
}

// Timeline выдаёт занятия дня вперемешку с перерывами длиннее BreakThreshold.
// day должен быть отсортирован по времени начала (см. DaySchedule).
func Timeline(day []models.ScheduleEntry) iter.Seq[Item] {
	return func(yield func(Item) bool) {
		for i := range day {
			if i > 0 {
				prev, curr := day[i-1], day[i]
				if gap := curr.Start.Sub(prev.End); gap > BreakThreshold {
					b := &Break{From: prev.End, To: curr.Start, Minutes: gap, Label: FormatGap(gap)}
					if !yield(Item{Break: b}) {
						return
					}
				}
			}
			e := day[i]
			if !yield(Item{Entry: &e}) {
				return
			}
		}
	}
}

// Breaks возвращает только перерывы из Timeline.
func Breaks(day []models.ScheduleEntry) []Break {
	var out []Break
	for it := range Timeline(day) {
		if it.Break != nil {
			out = append(out, *it.Break)
		}
	}
	return out
}
