package models

import (
	"fmt"
	"time"
)

// ClockLayout - формат времени в таблице расписания (24 часа).
const ClockLayout = "15:04"

// Clock - время суток с точностью до минуты (минуты от полуночи).
type Clock int

// FormatError возвращается, если строка времени не соответствует формату HH:MM.
type FormatError struct {
	Value string
	Err   error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid time %q: expected HH:MM", e.Value)
}

func (e *FormatError) Unwrap() error { return e.Err }

// ParseClock разбирает строку вида "09:30".
func ParseClock(s string) (Clock, error) {
	t, err := time.Parse(ClockLayout, s)
	if err != nil {
		return 0, &FormatError{Value: s, Err: err}
	}
	return Clock(t.Hour()*60 + t.Minute()), nil
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", int(c)/60, int(c)%60)
}

// MarshalText отдаёт время в формате HH:MM (для JSON).
func (c Clock) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// Duration - время от полуночи.
func (c Clock) Duration() time.Duration { return time.Duration(c) * time.Minute }

// SinceMidnight - время суток момента t с точностью до наносекунд.
func SinceMidnight(t time.Time) time.Duration {
	h, m, s := t.Clock()
	return time.Duration(h)*time.Hour + time.Duration(m)*time.Minute +
		time.Duration(s)*time.Second + time.Duration(t.Nanosecond())
}

// Sub возвращает разницу c - other в минутах.
func (c Clock) Sub(other Clock) int { return int(c) - int(other) }

// ScheduleEntry - одно занятие из расписания секции.
type ScheduleEntry struct {
	Day     string `json:"day"`
	Start   Clock  `json:"-"`
	End     Clock  `json:"-"`
	Course  string `json:"course"`
	Teacher string `json:"teacher"`
	Venue   string `json:"venue"`

	StartText string `json:"start_time"` // Исходный текст времени начала
	EndText   string `json:"end_time"`   // Исходный текст времени окончания
}
