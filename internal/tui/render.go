// Package tui рисует расписание в терминале: блоки "сейчас / далее",
// вкладки дней и ленту занятий с перерывами.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"timetable/internal/models"
	"timetable/internal/schedule"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#5B8DEF"))

	statusBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#5B8DEF")).
			Padding(0, 2).
			Width(36)

	classBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444444")).
			Padding(0, 1)

	breakBox = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#E0A458")).
			Italic(true).
			Padding(0, 2)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8BC34A"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	tabStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("#888888"))

	activeTabStyle = tabStyle.
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#5B8DEF"))
)

func entryLines(e *models.ScheduleEntry) string {
	return strings.Join([]string{
		e.Course,
		fmt.Sprintf("%s - %s", e.Start, e.End),
		e.Teacher,
		e.Venue,
	}, "\n")
}

// RenderStatus рисует блоки Happening Now и Next Up либо сообщение
// об отсутствии занятий.
func RenderStatus(st schedule.Status) string {
	var boxes []string
	if st.Current != nil {
		boxes = append(boxes, statusBox.Render(titleStyle.Render("Happening Now")+"\n"+entryLines(st.Current)))
	}
	if st.Next != nil {
		boxes = append(boxes, statusBox.Render(titleStyle.Render("Next Up")+"\n"+entryLines(st.Next)))
	}

	switch {
	case !st.HasClasses:
		return infoStyle.Render(fmt.Sprintf("No classes scheduled for today (%s)!", st.Day))
	case st.Over():
		return infoStyle.Render("All classes for today are over!")
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, boxes...)
}

// RenderTabs рисует вкладки дней, выделяя активную.
func RenderTabs(days []string, active int) string {
	tabs := make([]string, len(days))
	for i, d := range days {
		if i == active {
			tabs[i] = activeTabStyle.Render(d)
		} else {
			tabs[i] = tabStyle.Render(d)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// RenderDay рисует занятия дня и перерывы между ними.
func RenderDay(day []models.ScheduleEntry) string {
	var blocks []string
	for it := range schedule.Timeline(day) {
		if it.Break != nil {
			blocks = append(blocks, breakBox.Render(fmt.Sprintf("Break (%s)", it.Break.Label)))
			continue
		}
		blocks = append(blocks, classBox.Render(entryLines(it.Entry)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

// RenderLoadError сообщает, что файл секции не прочитан.
func RenderLoadError(section, file string, err error) string {
	return warnStyle.Render(fmt.Sprintf("Error: the file '%s' for %s could not be loaded: %v", file, section, err))
}
