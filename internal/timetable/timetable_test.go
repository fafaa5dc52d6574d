package timetable

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"timetable/internal/config"
	"timetable/internal/models"
	"timetable/internal/table"
)

const header = "Day,Start_Time,End_Time,Course,Teacher,Venue\n"

func readCSV(t *testing.T, body string) *table.Table {
	t.Helper()
	tbl, err := table.Read(strings.NewReader(body), "timetable.csv")
	require.NoError(t, err)
	return tbl
}

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestFromTable(t *testing.T) {
	tbl := readCSV(t, header+
		"monday ,09:00,10:00,Math,Dr. Khan,Room 1\n"+
		",,,,,\n"+
		"Tuesday,10:20,11:00,Physics,Ms. Ali,Lab 2\n")

	entries, err := FromTable(tbl)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Monday", entries[0].Day)
	assert.Equal(t, "09:00", entries[0].Start.String())
	assert.Equal(t, "10:00", entries[0].EndText)
	assert.Equal(t, "Dr. Khan", entries[0].Teacher)
	assert.Equal(t, "Lab 2", entries[1].Venue)
}

func TestFromTableMissingColumns(t *testing.T) {
	tbl := readCSV(t, "Day,Start_Time,Course\nMonday,09:00,Math\n")

	_, err := FromTable(tbl)
	var mc *MissingColumnsError
	require.True(t, errors.As(err, &mc))
	assert.Equal(t, []string{"End_Time", "Teacher", "Venue"}, mc.Missing)
}

func TestFromTableRowErrors(t *testing.T) {
	cases := []struct {
		name   string
		row    string
		column string
		check  func(error) bool
	}{
		{"bad time", "Monday,9am,10:00,Math,X,Y", ColStart, func(err error) bool {
			var fe *models.FormatError
			return errors.As(err, &fe)
		}},
		{"empty interval", "Monday,10:00,10:00,Math,X,Y", ColEnd, func(err error) bool {
			return errors.Is(err, ErrEmptyInterval)
		}},
		{"unknown day", "Someday,09:00,10:00,Math,X,Y", ColDay, func(err error) bool {
			return errors.Is(err, ErrUnknownDay)
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tbl := readCSV(t, header+"Monday,08:00,08:50,Intro,X,Y\n"+tc.row+"\n")

			_, err := FromTable(tbl)
			var re *RowError
			require.True(t, errors.As(err, &re), "got %v", err)
			assert.Equal(t, 3, re.Row)
			assert.Equal(t, tc.column, re.Column)
			assert.True(t, tc.check(err))
		})
	}
}

func TestBookLoadKeepsFailedSectionsEmpty(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "1b.csv", header+"Monday,09:00,10:00,Math,X,Y\n")
	bad := writeFile(t, dir, "1c.csv", header+"Monday,nine,10:00,Math,X,Y\n")

	book := NewBook([]config.Section{
		{Name: "BSE-1B", File: good},
		{Name: "BSE-1C", File: bad},
		{Name: "BSE-1D", File: filepath.Join(dir, "missing.csv")},
	}, "", zap.NewNop())

	assert.Equal(t, 2, book.Load())
	assert.Equal(t, "BSE-1B", book.Default())
	assert.Equal(t, []string{"BSE-1B", "BSE-1C", "BSE-1D"}, book.Names())

	s, ok := book.Get("BSE-1B")
	require.True(t, ok)
	assert.NoError(t, s.Err)
	assert.Len(t, s.Entries, 1)

	s, ok = book.Get("BSE-1C")
	require.True(t, ok)
	assert.Error(t, s.Err)
	assert.Empty(t, s.Entries)

	s, ok = book.Get("BSE-1D")
	require.True(t, ok)
	assert.ErrorIs(t, s.Err, os.ErrNotExist)

	_, ok = book.Get("BSE-9Z")
	assert.False(t, ok)
}

func TestBookReloadPicksUpChanges(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "1b.csv", header+"Monday,09:00,10:00,Math,X,Y\n")
	book := NewBook([]config.Section{{Name: "BSE-1B", File: path}}, "BSE-1B", zap.NewNop())
	require.Equal(t, 0, book.Load())

	writeFile(t, dir, "1b.csv", header+"Monday,09:00,10:00,Math,X,Y\nFriday,11:00,12:00,Art,Z,W\n")
	require.Equal(t, 0, book.Reload())

	s, _ := book.Get("BSE-1B")
	assert.Len(t, s.Entries, 2)

	// Изменение копии не затрагивает книгу.
	s.Entries[0].Course = "changed"
	again, _ := book.Get("BSE-1B")
	assert.Equal(t, "Math", again.Entries[0].Course)
}
