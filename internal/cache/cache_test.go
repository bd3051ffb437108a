package cache

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/maazimam/parkeasy-sub000/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	require.NoError(t, err)
	return log
}

var opts = Options{TTL: 5 * time.Minute, LocalSize: 100}

func results(ids ...string) []domain.ListingResult {
	out := make([]domain.ListingResult, len(ids))
	for i, id := range ids {
		out[i] = domain.ListingResult{Listing: domain.Listing{ID: id, Title: "spot " + id}}
	}
	return out
}

func TestSearchCache_LocalOnly(t *testing.T) {
	c := New(nil, opts, newTestLogger(t))
	defer c.Close()
	ctx := context.Background()

	_, ok := c.Get(ctx, "q")
	assert.False(t, ok)

	c.Set(ctx, "q", results("a", "b"))
	got, ok := c.Get(ctx, "q")
	require.True(t, ok)
	assert.Equal(t, results("a", "b"), got)

	c.Invalidate(ctx)
	_, ok = c.Get(ctx, "q")
	assert.False(t, ok)
}

func TestSearchCache_SetWritesThroughWithGeneration(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := New(db, opts, newTestLogger(t))
	defer c.Close()

	payload, err := json.Marshal(results("a"))
	require.NoError(t, err)

	mock.ExpectGet(generationKey).SetVal("3")
	mock.ExpectSet(keyPrefix+"3:q", payload, opts.TTL).SetVal("OK")

	c.Set(context.Background(), "q", results("a"))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchCache_GetFallsBackToRedis(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := New(db, opts, newTestLogger(t))
	defer c.Close()
	ctx := context.Background()

	payload, err := json.Marshal(results("a", "b"))
	require.NoError(t, err)

	mock.ExpectGet(generationKey).RedisNil()
	mock.ExpectGet(keyPrefix + "0:q").SetVal(string(payload))
	mock.ExpectGet(generationKey).RedisNil()

	got, ok := c.Get(ctx, "q")
	require.True(t, ok)
	require.Len(t, got, 2)
	assert.Equal(t, "b", got[1].Listing.ID)

	// second read is served by the local tier
	got, ok = c.Get(ctx, "q")
	require.True(t, ok)
	assert.Len(t, got, 2)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchCache_InvalidateBumpsGeneration(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := New(db, opts, newTestLogger(t))
	defer c.Close()
	ctx := context.Background()

	mock.ExpectIncr(generationKey).SetVal(4)
	mock.ExpectGet(generationKey).SetVal("4")
	mock.ExpectGet(keyPrefix + "4:q").RedisNil()

	c.Invalidate(ctx)
	_, ok := c.Get(ctx, "q")

	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchCache_RedisDownIsAMiss(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := New(db, opts, newTestLogger(t))
	defer c.Close()

	mock.ExpectGet(generationKey).SetErr(errors.New("connection refused"))

	_, ok := c.Get(context.Background(), "q")

	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchCache_CorruptEntryIsAMiss(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := New(db, opts, newTestLogger(t))
	defer c.Close()

	mock.ExpectGet(generationKey).SetVal("1")
	mock.ExpectGet(keyPrefix + "1:q").SetVal("{not json")

	_, ok := c.Get(context.Background(), "q")

	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}
