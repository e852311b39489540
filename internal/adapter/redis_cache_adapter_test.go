package adapter

import (
	"context"
	"testing"
	"time"

	"disasterguard/internal/domain"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisCacheAdapter_Get(t *testing.T) {
	t.Run("returns the cached value", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		cache := NewRedisCacheAdapter(client)
		mock.ExpectGet("key").SetVal("value")

		value, err := cache.Get(context.Background(), "key")

		require.NoError(t, err)
		assert.Equal(t, "value", value)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("translates a missing key to a cache miss", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		cache := NewRedisCacheAdapter(client)
		mock.ExpectGet("key").RedisNil()

		_, err := cache.Get(context.Background(), "key")

		assert.ErrorIs(t, err, domain.ErrCacheMiss)
	})

	t.Run("propagates other errors", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		cache := NewRedisCacheAdapter(client)
		mock.ExpectGet("key").SetErr(assert.AnError)

		_, err := cache.Get(context.Background(), "key")

		require.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrCacheMiss)
	})
}

func TestRedisCacheAdapter_Set(t *testing.T) {
	client, mock := redismock.NewClientMock()
	cache := NewRedisCacheAdapter(client)
	mock.ExpectSet("key", "value", time.Hour).SetVal("OK")

	err := cache.Set(context.Background(), "key", "value", time.Hour)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisCacheAdapter_Delete(t *testing.T) {
	client, mock := redismock.NewClientMock()
	cache := NewRedisCacheAdapter(client)
	mock.ExpectDel("key").SetVal(1)

	err := cache.Delete(context.Background(), "key")

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisCacheAdapter_Ping(t *testing.T) {
	client, mock := redismock.NewClientMock()
	cache := NewRedisCacheAdapter(client)
	mock.ExpectPing().SetVal("PONG")

	assert.NoError(t, cache.Ping(context.Background()))
}
