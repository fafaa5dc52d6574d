package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := load(envMap(nil))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "memory", cfg.StoreDriver)
	assert.Equal(t, 2*time.Hour, cfg.SessionTTL)
	assert.Equal(t, int64(20<<20), cfg.MaxUploadBytes())
	require.Len(t, cfg.Sections, 1)
	assert.Equal(t, Section{Name: "BSE-1B", File: "timetable1b.csv"}, cfg.Sections[0])
	assert.Equal(t, "BSE-1B", cfg.DefaultSection)

	loc, err := cfg.Location()
	require.NoError(t, err)
	_, offset := time.Date(2024, 1, 1, 0, 0, 0, 0, loc).Zone()
	assert.Equal(t, 5*3600, offset)
}

func TestLoadRejectsBadValues(t *testing.T) {
	_, err := load(envMap(map[string]string{"STORE_DRIVER": "postgres"}))
	assert.Error(t, err)

	_, err = load(envMap(map[string]string{"STORE_DRIVER": "redis"}))
	assert.Error(t, err, "redis without address")

	_, err = load(envMap(map[string]string{"UTC_OFFSET": "PKT"}))
	assert.Error(t, err)

	_, err = load(envMap(map[string]string{"SESSION_TTL": "soon"}))
	assert.Error(t, err)
}

func TestLoadRedis(t *testing.T) {
	cfg, err := load(envMap(map[string]string{
		"STORE_DRIVER": "Redis",
		"REDIS_ADDR":   "localhost:6379",
		"REDIS_DB":     "2",
		"UTC_OFFSET":   "-03:30",
	}))
	require.NoError(t, err)
	assert.Equal(t, "redis", cfg.StoreDriver)
	assert.Equal(t, 2, cfg.RedisDB)

	loc, err := cfg.Location()
	require.NoError(t, err)
	_, offset := time.Date(2024, 1, 1, 0, 0, 0, 0, loc).Zone()
	assert.Equal(t, -(3*3600 + 30*60), offset)
}

func TestLoadSectionsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sections.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
default: BSE-1B
sections:
  - name: BSE-1A
    file: data/1a.csv
  - name: " BSE-1B "
    file: /srv/1b.xlsx
`), 0o644))

	cfg, err := load(envMap(map[string]string{"SECTIONS_FILE": path}))
	require.NoError(t, err)
	require.Len(t, cfg.Sections, 2)
	assert.Equal(t, filepath.Join(dir, "data", "1a.csv"), cfg.Sections[0].File)
	assert.Equal(t, "BSE-1B", cfg.Sections[1].Name)
	assert.Equal(t, "/srv/1b.xlsx", cfg.Sections[1].File)
	assert.Equal(t, "BSE-1B", cfg.DefaultSection)
}

func TestLoadSectionsValidation(t *testing.T) {
	dir := t.TempDir()
	write := func(body string) string {
		path := filepath.Join(dir, "s.yaml")
		require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
		return path
	}

	_, err := LoadSections(write("sections: []\n"))
	assert.Error(t, err)

	_, err = LoadSections(write("sections:\n  - name: A\n    file: a.csv\n  - name: A\n    file: b.csv\n"))
	assert.ErrorContains(t, err, "duplicate")

	_, err = LoadSections(write("default: Z\nsections:\n  - name: A\n    file: a.csv\n"))
	assert.ErrorContains(t, err, "not declared")

	sf, err := LoadSections(write("sections:\n  - name: A\n    file: a.csv\n"))
	require.NoError(t, err)
	assert.Equal(t, "A", sf.Default)
}
