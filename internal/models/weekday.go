package models

import "time"

// Weekdays - порядок дней недели для вкладок расписания.
var Weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// WeekdayName возвращает название дня недели для момента t.
func WeekdayName(t time.Time) string {
	return t.Weekday().String()
}

// WeekdayIndex возвращает позицию дня в Weekdays или -1.
func WeekdayIndex(day string) int {
	for i, d := range Weekdays {
		if d == day {
			return i
		}
	}
	return -1
}
