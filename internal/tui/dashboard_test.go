package tui

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timetable/internal/models"
	"timetable/internal/schedule"
	"timetable/internal/timetable"
)

type fakeSource map[string]timetable.Section

func (f fakeSource) Names() []string {
	return []string{"BSE-1B", "BSE-1A"}
}

func (f fakeSource) Get(name string) (timetable.Section, bool) {
	s, ok := f[name]
	return s, ok
}

func entry(t *testing.T, day, start, end, course string) models.ScheduleEntry {
	t.Helper()
	s, err := models.ParseClock(start)
	require.NoError(t, err)
	e, err := models.ParseClock(end)
	require.NoError(t, err)
	return models.ScheduleEntry{
		Day: day, Start: s, End: e, StartText: start, EndText: end,
		Course: course, Teacher: "Dr. Khan", Venue: "Room 4",
	}
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	loc := time.FixedZone("UTC+5", 5*3600)
	src := fakeSource{
		"BSE-1B": {Name: "BSE-1B", Entries: []models.ScheduleEntry{
			entry(t, "Tuesday", "08:00", "09:00", "Chemistry"),
			entry(t, "Monday", "10:20", "11:00", "Physics"),
			entry(t, "Monday", "09:00", "10:00", "Calculus"),
		}},
		"BSE-1A": {Name: "BSE-1A", File: "timetable1a.csv", Err: errors.New("open timetable1a.csv: no such file")},
	}
	// 2024-01-01 - понедельник.
	monday := time.Date(2024, 1, 1, 9, 30, 0, 0, loc)
	return New(src, "BSE-1B", loc).WithClock(func() time.Time { return monday })
}

func press(t *testing.T, m Model, msg tea.KeyMsg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out
}

func TestDashboardOpensToday(t *testing.T) {
	m := newTestModel(t)
	assert.Equal(t, "BSE-1B", m.Section())
	assert.Equal(t, "Monday", m.Day())

	view := m.View()
	assert.Contains(t, view, "Happening Now")
	assert.Contains(t, view, "Calculus")
	assert.Contains(t, view, "Next Up")
	assert.Contains(t, view, "Physics")
	assert.Contains(t, view, "Break (20 min)")
}

func TestDashboardSwitchesDays(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, "Tuesday", m.Day())
	assert.Contains(t, m.View(), "Chemistry")

	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, "Tuesday", m.Day(), "last tab stays selected")

	m = press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, "Monday", m.Day())
}

func TestDashboardSwitchesSection(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "BSE-1A", m.Section())
	assert.Equal(t, "", m.Day())

	view := m.View()
	assert.Contains(t, view, "could not be loaded")
	assert.Contains(t, view, "empty or invalid")
	assert.Contains(t, view, "No classes scheduled for today (Monday)!")

	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "BSE-1B", m.Section())
}

func TestDashboardQuit(t *testing.T) {
	m := newTestModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestRenderStatusOver(t *testing.T) {
	st := schedule.Status{Day: "Monday", HasClasses: true}
	assert.Contains(t, RenderStatus(st), "All classes for today are over!")
}
