package table

import (
	"archive/zip"
	"fmt"
	"io"
	"strings"
	"unicode"
)

// FileName превращает значение группы в имя файла с расширением format.
func FileName(key, format string) string {
	name := strings.Map(func(r rune) rune {
		switch {
		case strings.ContainsRune(`/\:*?"<>|`, r):
			return '_'
		case unicode.IsControl(r):
			return -1
		}
		return r
	}, strings.TrimSpace(key))
	name = strings.Trim(name, ". ")
	if name == "" {
		name = "blank"
	}
	return name + "." + format
}

// FileNames возвращает имена файлов для групп в том же порядке.
// Совпадающие после очистки имена получают суффиксы -2, -3 и т.д.
func FileNames(parts Partitions, format string) []string {
	names := make([]string, len(parts))
	used := make(map[string]bool)
	for i, g := range parts {
		name := FileName(g.Key, format)
		base := strings.TrimSuffix(name, "."+format)
		for n := 2; used[name]; n++ {
			name = fmt.Sprintf("%s-%d.%s", base, n, format)
		}
		used[name] = true
		names[i] = name
	}
	return names
}

// WriteArchive пишет zip-архив: по одному файлу на группу.
func WriteArchive(w io.Writer, parts Partitions, format string) error {
	zw := zip.NewWriter(w)
	for i, name := range FileNames(parts, format) {
		fw, err := zw.Create(name)
		if err != nil {
			return fmt.Errorf("table: archive entry %s: %w", name, err)
		}
		if err := Write(fw, parts[i].Table, format); err != nil {
			return err
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("table: close archive: %w", err)
	}
	return nil
}
