package tasks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type fakeBook struct {
	calls  int
	failed int
}

func (b *fakeBook) Reload() int {
	b.calls++
	return b.failed
}

type fakeStore struct{ swept int }

func (s *fakeStore) Sweep() int { return s.swept }

func TestReloadTimetablesLogsFailures(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	book := &fakeBook{failed: 2}

	ReloadTimetables(book, zap.New(core))

	assert.Equal(t, 1, book.calls)
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, zapcore.WarnLevel, logs.All()[0].Level)
}

func TestCleanExpiredTablesQuietWhenNothingSwept(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)

	CleanExpiredTables(&fakeStore{}, zap.New(core))
	assert.Equal(t, 0, logs.Len())

	CleanExpiredTables(&fakeStore{swept: 3}, zap.New(core))
	assert.Equal(t, 1, logs.Len())
}

func TestInitScheduler(t *testing.T) {
	c, err := InitScheduler("0 0 0 * * *", &fakeBook{}, &fakeStore{}, zap.NewNop())
	require.NoError(t, err)
	defer c.Stop()
	assert.Len(t, c.Entries(), 2)

	_, err = InitScheduler("every day", &fakeBook{}, nil, zap.NewNop())
	assert.Error(t, err)
}
