package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"timetable/internal/table"
)

type splitOptions struct {
	column string
	format string
	outDir string
	zip    string
}

func newSplitCmd() *cobra.Command {
	opts := &splitOptions{}
	cmd := &cobra.Command{
		Use:   "split <file>",
		Short: "Разбить таблицу CSV/XLSX по значениям колонки",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSplit(cmd, args[0], opts)
		},
	}
	cmd.Flags().StringVarP(&opts.column, "column", "c", "", "колонка для группировки")
	cmd.Flags().StringVarP(&opts.format, "format", "f", table.FormatXLSX, "формат файлов: xlsx или csv")
	cmd.Flags().StringVarP(&opts.outDir, "out", "o", ".", "каталог для файлов групп")
	cmd.Flags().StringVar(&opts.zip, "zip", "", "записать все группы в один zip-архив")
	_ = cmd.MarkFlagRequired("column")
	return cmd
}

func runSplit(cmd *cobra.Command, path string, opts *splitOptions) error {
	if opts.format != table.FormatXLSX && opts.format != table.FormatCSV {
		return fmt.Errorf("%w: %s", table.ErrUnsupportedFormat, opts.format)
	}

	t, err := table.ReadFile(path)
	if err != nil {
		return err
	}
	parts, err := table.Partition(t, opts.column)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if opts.zip != "" {
		if err := writeFile(opts.zip, func(f *os.File) error {
			return table.WriteArchive(f, parts, opts.format)
		}); err != nil {
			return err
		}
		fmt.Fprintf(out, "%s: %d групп\n", opts.zip, len(parts))
		return nil
	}

	if err := os.MkdirAll(opts.outDir, 0o755); err != nil {
		return err
	}
	for i, name := range table.FileNames(parts, opts.format) {
		g := parts[i]
		dst := filepath.Join(opts.outDir, name)
		if err := writeFile(dst, func(f *os.File) error {
			return table.Write(f, g.Table, opts.format)
		}); err != nil {
			return err
		}
		fmt.Fprintf(out, "%s\t%d\n", dst, g.Table.Len())
	}
	return nil
}

func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}
