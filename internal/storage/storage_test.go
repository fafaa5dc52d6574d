package storage

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"timetable/internal/config"
	"timetable/internal/table"
)

func sampleTable() *table.Table {
	t := table.New("Class", "Name")
	t.Append("A", "Ali")
	t.Append("B", "Sara")
	return t
}

func exerciseStore(t *testing.T, s TableStore) {
	ctx := context.Background()
	src := sampleTable()

	id, err := s.Save(ctx, src)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	got, err := s.Load(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, src.Columns, got.Columns)
	assert.Equal(t, src.Rows, got.Rows)

	other, err := s.Save(ctx, src)
	require.NoError(t, err)
	assert.NotEqual(t, id, other)

	require.NoError(t, s.Delete(ctx, id))
	_, err = s.Load(ctx, id)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.Delete(ctx, id), ErrNotFound)

	_, err = s.Load(ctx, "not-a-session")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemoryStore(time.Hour))
}

func TestMemoryStoreIsolatesCopies(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(time.Hour)
	src := sampleTable()

	id, err := s.Save(ctx, src)
	require.NoError(t, err)
	src.Rows[0][1] = "changed"

	got, err := s.Load(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Ali", got.Rows[0][1])
}

func TestMemoryStoreExpiry(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(time.Minute)
	now := time.Date(2024, 9, 2, 9, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	first, err := s.Save(ctx, sampleTable())
	require.NoError(t, err)
	_, err = s.Save(ctx, sampleTable())
	require.NoError(t, err)

	now = now.Add(2 * time.Minute)
	_, err = s.Load(ctx, first)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 1, s.Sweep())
	assert.Equal(t, 0, s.Sweep())
}

func TestRedisStore(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	exerciseStore(t, NewRedisStore(client, time.Hour))
}

func TestRedisStoreTTL(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()
	s := NewRedisStore(client, time.Minute)

	id, err := s.Save(context.Background(), sampleTable())
	require.NoError(t, err)
	assert.Equal(t, time.Minute, mr.TTL(keyPrefix+id))

	mr.FastForward(2 * time.Minute)
	_, err = s.Load(context.Background(), id)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNewPicksDriver(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)

	s, err := New(ctx, &config.Config{StoreDriver: "memory", SessionTTL: time.Hour}, zap.NewNop())
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, s)
	_, sweeps := s.(Sweeper)
	assert.True(t, sweeps, "хранилище в памяти очищается по расписанию")

	s, err = New(ctx, &config.Config{StoreDriver: "redis", RedisAddr: mr.Addr(), SessionTTL: time.Hour}, zap.NewNop())
	require.NoError(t, err)
	assert.IsType(t, &RedisStore{}, s)
	_, sweeps = s.(Sweeper)
	assert.False(t, sweeps, "Redis удаляет ключи сам по TTL")

	_, err = New(ctx, &config.Config{StoreDriver: "etcd"}, zap.NewNop())
	assert.Error(t, err)
}
