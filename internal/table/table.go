// Package table - табличные данные в памяти: чтение CSV/XLSX, разбиение по колонке и выгрузка.
package table

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyTable - в файле нет даже строки заголовка.
	ErrEmptyTable = errors.New("table: no header row")
	// ErrUnsupportedFormat - расширение файла не поддерживается.
	ErrUnsupportedFormat = errors.New("table: unsupported file format")
)

// Row - значения строки в порядке Table.Columns.
type Row []string

// Table - упорядоченный набор строк с общим заголовком.
type Table struct {
	Columns []string `json:"columns"`
	Rows    []Row    `json:"rows"`
}

// ColumnNotFoundError - запрошенной колонки нет в таблице.
type ColumnNotFoundError struct {
	Column    string
	Available []string
}

func (e *ColumnNotFoundError) Error() string {
	return fmt.Sprintf("column %q not found (available: %s)", e.Column, strings.Join(e.Available, ", "))
}

// New создаёт пустую таблицу с заданным заголовком.
func New(columns ...string) *Table {
	return &Table{Columns: append([]string(nil), columns...)}
}

// Append добавляет строку, выравнивая её по длине заголовка.
func (t *Table) Append(values ...string) {
	t.Rows = append(t.Rows, t.fit(values))
}

func (t *Table) fit(values []string) Row {
	row := make(Row, len(t.Columns))
	copy(row, values)
	return row
}

// Len - количество строк без заголовка.
func (t *Table) Len() int { return len(t.Rows) }

// Index возвращает номер колонки или -1.
func (t *Table) Index(column string) int {
	for i, c := range t.Columns {
		if c == column {
			return i
		}
	}
	return -1
}

// Column возвращает номер колонки или *ColumnNotFoundError.
func (t *Table) Column(column string) (int, error) {
	if i := t.Index(column); i >= 0 {
		return i, nil
	}
	return -1, &ColumnNotFoundError{Column: column, Available: append([]string(nil), t.Columns...)}
}

// Value возвращает значение ячейки строки row в колонке column.
func (t *Table) Value(row Row, column string) string {
	i := t.Index(column)
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}

// Clone возвращает глубокую копию таблицы.
func (t *Table) Clone() *Table {
	out := &Table{Columns: append([]string(nil), t.Columns...), Rows: make([]Row, len(t.Rows))}
	for i, r := range t.Rows {
		out.Rows[i] = append(Row(nil), r...)
	}
	return out
}

// Preview возвращает копию первых n строк.
func (t *Table) Preview(n int) *Table {
	if n > len(t.Rows) {
		n = len(t.Rows)
	}
	out := &Table{Columns: append([]string(nil), t.Columns...), Rows: make([]Row, 0, n)}
	for _, r := range t.Rows[:n] {
		out.Rows = append(out.Rows, append(Row(nil), r...))
	}
	return out
}

// Records возвращает заголовок и строки одним срезом (для CSV/XLSX).
func (t *Table) Records() [][]string {
	out := make([][]string, 0, len(t.Rows)+1)
	out = append(out, t.Columns)
	for _, r := range t.Rows {
		out = append(out, r)
	}
	return out
}

// FromRecords строит таблицу из записей, первая запись - заголовок.
// Короткие строки дополняются пустыми значениями, лишние ячейки отбрасываются.
func FromRecords(records [][]string) (*Table, error) {
	if len(records) == 0 {
		return nil, ErrEmptyTable
	}
	header := make([]string, len(records[0]))
	for i, h := range records[0] {
		header[i] = strings.TrimSpace(h)
	}
	t := &Table{Columns: header, Rows: make([]Row, 0, len(records)-1)}
	for _, rec := range records[1:] {
		t.Rows = append(t.Rows, t.fit(rec))
	}
	return t, nil
}
