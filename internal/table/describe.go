package table

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ColumnStats - краткая статистика по колонке.
type ColumnStats struct {
	Column  string `json:"column"`
	Count   int    `json:"count"`
	Unique  int    `json:"unique"`
	Top     string `json:"top,omitempty"`
	Freq    int    `json:"freq,omitempty"`
	Numeric bool   `json:"numeric"`

	Sum  *decimal.Decimal `json:"sum,omitempty"`
	Mean *decimal.Decimal `json:"mean,omitempty"`
	Min  *decimal.Decimal `json:"min,omitempty"`
	Max  *decimal.Decimal `json:"max,omitempty"`
}

const meanPlaces = 4

// Describe считает статистику для каждой колонки таблицы.
// Пустые ячейки не учитываются.
func Describe(t *Table) []ColumnStats {
	stats := make([]ColumnStats, len(t.Columns))
	for i, col := range t.Columns {
		stats[i] = describeColumn(t, i, col)
	}
	return stats
}

func describeColumn(t *Table, idx int, column string) ColumnStats {
	st := ColumnStats{Column: column}
	freq := make(map[string]int)
	var order []string
	var nums []decimal.Decimal
	numeric := true

	for _, r := range t.Rows {
		if idx >= len(r) {
			continue
		}
		v := strings.TrimSpace(r[idx])
		if v == "" {
			continue
		}
		st.Count++
		if freq[v] == 0 {
			order = append(order, v)
		}
		freq[v]++
		if numeric {
			d, err := decimal.NewFromString(v)
			if err != nil {
				numeric = false
				continue
			}
			nums = append(nums, d)
		}
	}

	st.Unique = len(order)
	for _, v := range order {
		if freq[v] > st.Freq {
			st.Top, st.Freq = v, freq[v]
		}
	}

	if numeric && len(nums) > 0 {
		st.Numeric = true
		sum, lo, hi := decimal.Sum(nums[0], nums[1:]...), decimal.Min(nums[0], nums[1:]...), decimal.Max(nums[0], nums[1:]...)
		mean := sum.DivRound(decimal.NewFromInt(int64(len(nums))), meanPlaces)
		st.Sum, st.Mean, st.Min, st.Max = &sum, &mean, &lo, &hi
	}
	return st
}
