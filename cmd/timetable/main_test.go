package main

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const students = "Name,Section,Score\nAli,A,10\nSara,B,20.5\nOmar,A,30\n"

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeStudents(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "students.csv")
	require.NoError(t, os.WriteFile(path, []byte(students), 0o644))
	return path
}

const timetableCSV = `Day,Start_Time,End_Time,Course,Teacher,Venue
Monday,09:00,10:00,Calculus,Dr. Khan,Room 4
Monday,10:20,11:00,Physics,Dr. Aslam,Lab 2
`

func setupTimetableEnv(t *testing.T) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "timetable1b.csv")
	require.NoError(t, os.WriteFile(path, []byte(timetableCSV), 0o644))

	t.Setenv("ENV_CHEK", "1")
	t.Setenv("TIMETABLE_FILE", path)
	t.Setenv("SECTION_NAME", "BSE-1B")
	t.Setenv("SECTIONS_FILE", "")
	t.Setenv("UTC_OFFSET", "+05:00")
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("LOG_LEVEL", "info")
	t.Setenv("GIN_MODE", "")
}

func TestStatus(t *testing.T) {
	setupTimetableEnv(t)

	tests := []struct {
		name string
		at   string
		want []string
	}{
		{"идёт занятие", "2024-01-01T09:30:00+05:00", []string{"Happening Now", "Calculus", "Next Up", "Physics"}},
		{"другой пояс", "2024-01-01T04:30:00Z", []string{"Happening Now", "Calculus"}},
		{"после занятий", "2024-01-01T12:00:00+05:00", []string{"All classes for today are over!"}},
		{"выходной", "2024-01-06T10:00:00+05:00", []string{"No classes scheduled for today (Saturday)!"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, "status", "--section", "BSE-1B", "--at", tt.at)
			require.NoError(t, err)
			for _, w := range tt.want {
				assert.Contains(t, out, w)
			}
		})
	}
}

func TestStatusDefaultsToConfiguredSection(t *testing.T) {
	setupTimetableEnv(t)
	out, err := run(t, "status", "--at", "2024-01-01T10:10:00+05:00")
	require.NoError(t, err)
	assert.Contains(t, out, "Next Up")
	assert.Contains(t, out, "Physics")
	assert.NotContains(t, out, "Happening Now")
}

func TestStatusErrors(t *testing.T) {
	setupTimetableEnv(t)

	_, err := run(t, "status", "--section", "BSE-9Z")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "BSE-9Z")

	_, err = run(t, "status", "--at", "yesterday")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--at")
}

func TestSplitWritesOneFilePerGroup(t *testing.T) {
	src := writeStudents(t)
	out := t.TempDir()

	_, err := run(t, "split", src, "--column", "Section", "--format", "csv", "--out", out)
	require.NoError(t, err)

	a, err := os.ReadFile(filepath.Join(out, "A.csv"))
	require.NoError(t, err)
	assert.Equal(t, "Name,Section,Score\nAli,A,10\nOmar,A,30\n", string(a))

	b, err := os.ReadFile(filepath.Join(out, "B.csv"))
	require.NoError(t, err)
	assert.Equal(t, "Name,Section,Score\nSara,B,20.5\n", string(b))
}

func TestSplitZip(t *testing.T) {
	src := writeStudents(t)
	archive := filepath.Join(t.TempDir(), "sections.zip")

	_, err := run(t, "split", src, "-c", "Section", "-f", "csv", "--zip", archive)
	require.NoError(t, err)

	zr, err := zip.OpenReader(archive)
	require.NoError(t, err)
	defer zr.Close()

	var names []string
	for _, f := range zr.File {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"A.csv", "B.csv"}, names)
}

func TestSplitUnknownColumn(t *testing.T) {
	src := writeStudents(t)
	_, err := run(t, "split", src, "--column", "Class", "--out", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Class")
}

func TestDescribe(t *testing.T) {
	src := writeStudents(t)
	out, err := run(t, "describe", src)
	require.NoError(t, err)
	assert.Contains(t, out, "rows: 3")
	assert.Contains(t, out, "Score")
	assert.Contains(t, out, "60.5")
	assert.Contains(t, out, "╭", "статистика выводится таблицей lipgloss")
	assert.Contains(t, out, "Sara")
}
