package main

import (
	"github.com/spf13/cobra"

	"timetable/internal/tui"
)

func newDashboardCmd(opts *rootOptions) *cobra.Command {
	var section string
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Интерактивная панель расписания",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, book, err := opts.setup()
			if err != nil {
				return err
			}
			loc, err := cfg.Location()
			if err != nil {
				return err
			}
			if section == "" {
				section = book.Default()
			}
			return tui.Run(book, section, loc)
		},
	}
	cmd.Flags().StringVarP(&section, "section", "s", "", "секция (по умолчанию - из конфигурации)")
	return cmd
}
