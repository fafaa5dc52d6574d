// Package timetable загружает расписание секций из табличных файлов.
package timetable

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"timetable/internal/models"
	"timetable/internal/table"
)

// Колонки файла расписания.
const (
	ColDay     = "Day"
	ColStart   = "Start_Time"
	ColEnd     = "End_Time"
	ColCourse  = "Course"
	ColTeacher = "Teacher"
	ColVenue   = "Venue"
)

// RequiredColumns - обязательные колонки файла расписания.
var RequiredColumns = []string{ColDay, ColStart, ColEnd, ColCourse, ColTeacher, ColVenue}

var (
	// ErrUnknownDay - значение Day не является днём недели.
	ErrUnknownDay = errors.New("unknown weekday")
	// ErrEmptyInterval - время окончания не позже времени начала.
	ErrEmptyInterval = errors.New("end time must be after start time")
)

// MissingColumnsError - в файле нет обязательных колонок.
type MissingColumnsError struct {
	Missing []string
}

func (e *MissingColumnsError) Error() string {
	return "timetable: missing columns: " + strings.Join(e.Missing, ", ")
}

// RowError указывает строку файла (с учётом заголовка) и колонку с ошибкой.
type RowError struct {
	Row    int
	Column string
	Err    error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("timetable: row %d, column %s: %v", e.Row, e.Column, e.Err)
}

func (e *RowError) Unwrap() error { return e.Err }

// NormalizeDay приводит название дня к виду "Monday".
func NormalizeDay(s string) string {
	return cases.Title(language.English).String(strings.ToLower(strings.TrimSpace(s)))
}

// FromTable проверяет таблицу и превращает её строки в занятия.
// Первая же ошибочная строка прерывает загрузку.
func FromTable(t *table.Table) ([]models.ScheduleEntry, error) {
	var missing []string
	for _, c := range RequiredColumns {
		if t.Index(c) < 0 {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingColumnsError{Missing: missing}
	}

	entries := make([]models.ScheduleEntry, 0, t.Len())
	for i, r := range t.Rows {
		if blank(r) {
			continue
		}
		line := i + 2
		get := func(col string) string { return strings.TrimSpace(t.Value(r, col)) }

		e := models.ScheduleEntry{
			Day:       NormalizeDay(get(ColDay)),
			Course:    get(ColCourse),
			Teacher:   get(ColTeacher),
			Venue:     get(ColVenue),
			StartText: get(ColStart),
			EndText:   get(ColEnd),
		}
		if models.WeekdayIndex(e.Day) < 0 {
			return nil, &RowError{Row: line, Column: ColDay, Err: fmt.Errorf("%w: %q", ErrUnknownDay, get(ColDay))}
		}

		var err error
		if e.Start, err = models.ParseClock(e.StartText); err != nil {
			return nil, &RowError{Row: line, Column: ColStart, Err: err}
		}
		if e.End, err = models.ParseClock(e.EndText); err != nil {
			return nil, &RowError{Row: line, Column: ColEnd, Err: err}
		}
		if e.Start >= e.End {
			return nil, &RowError{Row: line, Column: ColEnd, Err: ErrEmptyInterval}
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// LoadFile читает файл расписания (CSV или XLSX).
func LoadFile(path string) ([]models.ScheduleEntry, error) {
	t, err := table.ReadFile(path)
	if err != nil {
		return nil, err
	}
	entries, err := FromTable(t)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return entries, nil
}

func blank(r table.Row) bool {
	for _, v := range r {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
