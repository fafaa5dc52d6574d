package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"timetable/internal/schedule"
	"timetable/internal/timetable"
)

// Source отдаёт расписания секций; реализуется timetable.Book.
type Source interface {
	Names() []string
	Get(name string) (timetable.Section, bool)
}

type keyMap struct {
	Prev    key.Binding
	Next    key.Binding
	Section key.Binding
	Refresh key.Binding
	Quit    key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Section, k.Refresh, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var keys = keyMap{
	Prev:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "prev day")),
	Next:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "next day")),
	Section: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "section")),
	Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// Model - bubbletea-модель панели расписания.
// Состояние пересчитывается при каждом нажатии клавиши, таймера нет.
type Model struct {
	src      Source
	loc      *time.Location
	now      func() time.Time
	sections []string
	section  int

	current timetable.Section
	status  schedule.Status
	days    []string
	day     int

	help  help.Model
	width int
}

// New создаёт панель для секции section (пустая строка - первая секция).
func New(src Source, section string, loc *time.Location) Model {
	m := Model{
		src:      src,
		loc:      loc,
		now:      time.Now,
		sections: src.Names(),
		help:     help.New(),
	}
	for i, name := range m.sections {
		if name == section {
			m.section = i
		}
	}
	m.selectSection()
	return m
}

// WithClock подменяет источник текущего времени.
func (m Model) WithClock(now func() time.Time) Model {
	m.now = now
	m.selectSection()
	return m
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Prev):
			if m.day > 0 {
				m.day--
			}
		case key.Matches(msg, keys.Next):
			if m.day < len(m.days)-1 {
				m.day++
			}
		case key.Matches(msg, keys.Section):
			if len(m.sections) > 0 {
				m.section = (m.section + 1) % len(m.sections)
				m.selectSection()
				return m, nil
			}
		}
		m.refresh()
	}
	return m, nil
}

// selectSection загружает секцию и открывает вкладку сегодняшнего дня, если она есть.
func (m *Model) selectSection() {
	m.refresh()
	m.day = 0
	for i, d := range m.days {
		if d == m.status.Day {
			m.day = i
		}
	}
}

func (m *Model) refresh() {
	m.current = timetable.Section{}
	if len(m.sections) > 0 {
		m.current, _ = m.src.Get(m.sections[m.section])
	}
	m.status = schedule.Resolve(m.now().In(m.loc), m.current.Entries)
	m.days = schedule.OrderedDays(m.current.Entries)
	if m.day >= len(m.days) {
		m.day = max(0, len(m.days)-1)
	}
}

// Day возвращает выбранный день ("" если дней нет).
func (m Model) Day() string {
	if len(m.days) == 0 {
		return ""
	}
	return m.days[m.day]
}

// Section возвращает имя выбранной секции.
func (m Model) Section() string {
	return m.current.Name
}

func (m Model) View() string {
	var b strings.Builder
	header := titleStyle.Render("Timetable")
	if m.current.Name != "" {
		header += tabStyle.Render(m.current.Name)
	}
	b.WriteString(header + "\n\n")

	if m.current.Err != nil {
		b.WriteString(RenderLoadError(m.current.Name, m.current.File, m.current.Err) + "\n\n")
	}
	b.WriteString(RenderStatus(m.status) + "\n\n")

	if len(m.days) == 0 {
		b.WriteString(warnStyle.Render("The selected schedule file is empty or invalid.") + "\n")
	} else {
		b.WriteString(RenderTabs(m.days, m.day) + "\n\n")
		b.WriteString(RenderDay(schedule.DaySchedule(m.current.Entries, m.Day())) + "\n")
	}

	b.WriteString("\n" + m.help.View(keys))
	if m.width > 0 {
		return lipgloss.NewStyle().MaxWidth(m.width).Render(b.String())
	}
	return b.String()
}

// Run запускает панель в полноэкранном режиме.
func Run(src Source, section string, loc *time.Location) error {
	_, err := tea.NewProgram(New(src, section, loc), tea.WithAltScreen()).Run()
	return err
}
