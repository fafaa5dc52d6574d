package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	tbl "timetable/internal/table"
)

var headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF")).Padding(0, 1)

var cellStyle = lipgloss.NewStyle().Padding(0, 1)

func newDescribeCmd() *cobra.Command {
	var preview int
	cmd := &cobra.Command{
		Use:   "describe <file>",
		Short: "Показать колонки и статистику таблицы",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := tbl.ReadFile(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if preview > 0 {
				p := t.Preview(preview)
				rows := make([][]string, 0, p.Len())
				for _, r := range p.Rows {
					rows = append(rows, r)
				}
				fmt.Fprintln(out, render(p.Columns, rows))
			}

			fmt.Fprintf(out, "rows: %d\n", t.Len())
			var stats [][]string
			for _, st := range tbl.Describe(t) {
				stats = append(stats, []string{
					st.Column, strconv.Itoa(st.Count), strconv.Itoa(st.Unique), st.Top, strconv.Itoa(st.Freq),
					num(st.Sum), num(st.Mean), num(st.Min), num(st.Max),
				})
			}
			fmt.Fprintln(out, render(
				[]string{"column", "count", "unique", "top", "freq", "sum", "mean", "min", "max"}, stats))
			return nil
		},
	}
	cmd.Flags().IntVarP(&preview, "preview", "n", 5, "сколько первых строк показать")
	return cmd
}

func render(headers []string, rows [][]string) string {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("#444444"))).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...).
		Rows(rows...).
		Render()
}

func num(d *decimal.Decimal) string {
	if d == nil {
		return "-"
	}
	return d.String()
}
