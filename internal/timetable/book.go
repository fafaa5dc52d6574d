package timetable

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"timetable/internal/config"
	"timetable/internal/models"
)

// Section - загруженное расписание одной секции.
// Если файл не прочитан, Entries пуст, а Err содержит причину.
type Section struct {
	Name     string
	File     string
	Entries  []models.ScheduleEntry
	Err      error
	LoadedAt time.Time
}

// Book хранит расписания всех секций. Reload вызывается из cron,
// поэтому доступ защищён мьютексом, а наружу отдаются копии.
type Book struct {
	mu       sync.RWMutex
	sources  []config.Section
	def      string
	sections map[string]*Section
	logger   *zap.Logger
	now      func() time.Time
}

// NewBook создаёт книгу расписаний. Файлы читаются в Load.
func NewBook(sources []config.Section, defaultSection string, logger *zap.Logger) *Book {
	if defaultSection == "" && len(sources) > 0 {
		defaultSection = sources[0].Name
	}
	return &Book{
		sources:  append([]config.Section(nil), sources...),
		def:      defaultSection,
		sections: make(map[string]*Section),
		logger:   logger,
		now:      time.Now,
	}
}

// Load читает файлы всех секций. Ошибка одного файла не мешает остальным.
// Возвращает число секций, которые не удалось загрузить.
func (b *Book) Load() int {
	loaded := make(map[string]*Section, len(b.sources))
	failed := 0
	for _, src := range b.sources {
		s := &Section{Name: src.Name, File: src.File, LoadedAt: b.now()}
		entries, err := LoadFile(src.File)
		if err != nil {
			failed++
			s.Err = err
			b.logger.Error("Ошибка загрузки расписания",
				zap.String("section", src.Name), zap.String("file", src.File), zap.Error(err))
		} else {
			s.Entries = entries
			b.logger.Info("Расписание загружено",
				zap.String("section", src.Name), zap.Int("entries", len(entries)))
		}
		loaded[src.Name] = s
	}

	b.mu.Lock()
	b.sections = loaded
	b.mu.Unlock()
	return failed
}

// Reload - то же, что Load; имя для cron-задачи.
func (b *Book) Reload() int { return b.Load() }

// Get возвращает копию секции по имени.
func (b *Book) Get(name string) (Section, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	s, ok := b.sections[name]
	if !ok {
		return Section{}, false
	}
	cp := *s
	cp.Entries = append([]models.ScheduleEntry(nil), s.Entries...)
	return cp, true
}

// Names возвращает имена секций в порядке объявления.
func (b *Book) Names() []string {
	names := make([]string, len(b.sources))
	for i, s := range b.sources {
		names[i] = s.Name
	}
	return names
}

// Default - имя секции по умолчанию.
func (b *Book) Default() string { return b.def }
