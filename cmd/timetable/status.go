package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"timetable/internal/schedule"
	"timetable/internal/tui"
)

func newStatusCmd(opts *rootOptions) *cobra.Command {
	var section, at string
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Что идёт сейчас и что дальше",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, book, err := opts.setup()
			if err != nil {
				return err
			}
			loc, err := cfg.Location()
			if err != nil {
				return err
			}

			now := time.Now()
			if at != "" {
				if now, err = time.Parse(time.RFC3339, at); err != nil {
					return fmt.Errorf("--at: %w", err)
				}
			}

			if section == "" {
				section = book.Default()
			}
			s, ok := book.Get(section)
			if !ok {
				return fmt.Errorf("секция %q не найдена (доступны: %v)", section, book.Names())
			}

			out := cmd.OutOrStdout()
			if s.Err != nil {
				fmt.Fprintln(out, tui.RenderLoadError(s.Name, s.File, s.Err))
			}
			fmt.Fprintln(out, tui.RenderStatus(schedule.Resolve(now.In(loc), s.Entries)))
			return nil
		},
	}
	cmd.Flags().StringVarP(&section, "section", "s", "", "секция (по умолчанию - из конфигурации)")
	cmd.Flags().StringVar(&at, "at", "", "момент времени в формате RFC3339")
	return cmd
}
