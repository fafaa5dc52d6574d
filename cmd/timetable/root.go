package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"timetable/internal/config"
	"timetable/internal/logging"
	"timetable/internal/timetable"
)

type rootOptions struct {
	envFile string
	verbose bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "timetable",
		Short:         "Расписание секции и разбиение таблиц",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&opts.envFile, "env", ".env", "файл с переменными окружения")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "писать журнал в stderr")

	cmd.AddCommand(
		newStatusCmd(opts),
		newDashboardCmd(opts),
		newSplitCmd(),
		newDescribeCmd(),
	)
	return cmd
}

// setup читает конфигурацию и загружает расписания всех секций.
func (o *rootOptions) setup() (*config.Config, *timetable.Book, error) {
	// .env необязателен: настройки могут прийти из окружения.
	_ = config.LoadEnv(o.envFile)

	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	logger := zap.NewNop()
	if o.verbose {
		if logger, err = logging.New(cfg.LogLevel, true); err != nil {
			return nil, nil, err
		}
	}

	book := timetable.NewBook(cfg.Sections, cfg.DefaultSection, logger)
	book.Load()
	return cfg, book, nil
}
