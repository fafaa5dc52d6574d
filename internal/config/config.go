// Package config загружает настройки сервиса из окружения (.env) и файла секций.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config - настройки сервиса.
type Config struct {
	Addr    string `validate:"required"`
	GinMode string `validate:"omitempty,oneof=debug release test"`

	TimetableFile  string
	SectionName    string
	SectionsFile   string
	DefaultSection string
	Sections       []Section `validate:"min=1,dive"`

	UTCOffset string `validate:"required"`

	StoreDriver   string `validate:"oneof=memory redis"`
	RedisAddr     string `validate:"required_if=StoreDriver redis"`
	RedisPassword string
	RedisDB       int           `validate:"gte=0"`
	SessionTTL    time.Duration `validate:"gt=0"`

	ReloadCron  string `validate:"required"`
	MaxUploadMB int64  `validate:"gt=0"`
	LogLevel    string `validate:"oneof=debug info warn error"`
}

// LoadEnv подключает .env, если переменная ENV_CHEK не задана.
func LoadEnv(files ...string) error {
	if os.Getenv("ENV_CHEK") != "" {
		return nil
	}
	if err := godotenv.Load(files...); err != nil {
		return fmt.Errorf("config: load .env: %w", err)
	}
	return nil
}

// Load читает конфигурацию из переменных окружения и файла секций.
func Load() (*Config, error) {
	return load(os.Getenv)
}

func load(getenv func(string) string) (*Config, error) {
	env := func(key, def string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return def
	}

	cfg := &Config{
		Addr:          env("HTTP_ADDR", ":8080"),
		GinMode:       env("GIN_MODE", ""),
		TimetableFile: env("TIMETABLE_FILE", "timetable1b.csv"),
		SectionName:   env("SECTION_NAME", "BSE-1B"),
		SectionsFile:  env("SECTIONS_FILE", ""),
		UTCOffset:     env("UTC_OFFSET", "+05:00"),
		StoreDriver:   strings.ToLower(env("STORE_DRIVER", "memory")),
		RedisAddr:     env("REDIS_ADDR", ""),
		RedisPassword: getenv("REDIS_PASSWORD"),
		ReloadCron:    env("RELOAD_CRON", "0 0 0 * * *"),
		LogLevel:      strings.ToLower(env("LOG_LEVEL", "info")),
	}

	var err error
	if cfg.RedisDB, err = strconv.Atoi(env("REDIS_DB", "0")); err != nil {
		return nil, fmt.Errorf("config: REDIS_DB: %w", err)
	}
	if cfg.SessionTTL, err = time.ParseDuration(env("SESSION_TTL", "2h")); err != nil {
		return nil, fmt.Errorf("config: SESSION_TTL: %w", err)
	}
	if cfg.MaxUploadMB, err = strconv.ParseInt(env("MAX_UPLOAD_MB", "20"), 10, 64); err != nil {
		return nil, fmt.Errorf("config: MAX_UPLOAD_MB: %w", err)
	}

	if cfg.SectionsFile != "" {
		sf, err := LoadSections(cfg.SectionsFile)
		if err != nil {
			return nil, err
		}
		cfg.Sections = sf.Sections
		cfg.DefaultSection = sf.Default
	} else {
		cfg.Sections = []Section{{Name: cfg.SectionName, File: cfg.TimetableFile}}
		cfg.DefaultSection = cfg.SectionName
	}

	if _, err := cfg.Location(); err != nil {
		return nil, err
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// Location возвращает часовой пояс с фиксированным смещением UTCOffset.
func (c *Config) Location() (*time.Location, error) {
	t, err := time.Parse("-07:00", c.UTCOffset)
	if err != nil {
		return nil, fmt.Errorf("config: UTC_OFFSET %q: expected ±HH:MM", c.UTCOffset)
	}
	_, offset := t.Zone()
	return time.FixedZone("UTC"+c.UTCOffset, offset), nil
}

// MaxUploadBytes - ограничение размера загружаемого файла.
func (c *Config) MaxUploadBytes() int64 {
	return c.MaxUploadMB << 20
}
