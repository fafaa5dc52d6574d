package table

// Group - подтаблица строк с одинаковым значением ключевой колонки.
type Group struct {
	Key   string `json:"key"`
	Table *Table `json:"table"`
}

// Partitions - группы в порядке первого появления значения.
type Partitions []Group

// Partition разбивает таблицу по значениям колонки column.
// Исходная таблица не изменяется, строки копируются.
func Partition(t *Table, column string) (Partitions, error) {
	idx, err := t.Column(column)
	if err != nil {
		return nil, err
	}

	pos := make(map[string]int)
	var parts Partitions
	for _, r := range t.Rows {
		var key string
		if idx < len(r) {
			key = r[idx]
		}
		i, ok := pos[key]
		if !ok {
			i = len(parts)
			pos[key] = i
			parts = append(parts, Group{Key: key, Table: New(t.Columns...)})
		}
		parts[i].Table.Rows = append(parts[i].Table.Rows, append(Row(nil), r...))
	}
	return parts, nil
}

// Index возвращает позицию группы со значением key или -1.
func (p Partitions) Index(key string) int {
	for i, g := range p {
		if g.Key == key {
			return i
		}
	}
	return -1
}
