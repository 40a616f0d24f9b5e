package cache_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"impressions/infras/otel/mocks"
	"impressions/shared/cache"
)

type session struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

func TestRedisCache_Save(t *testing.T) {
	client, mock := redismock.NewClientMock()
	redisCache := cache.NewRedisCache(client, mocks.NewOtel())

	mock.ExpectSet("session:u1:t1", []byte(`{"user_id":"u1","username":"studio"}`), 60*time.Second).SetVal("OK")
	mock.ExpectSet("plain", []byte("value"), time.Second).SetErr(errors.New("connection refused"))

	err := redisCache.Save(context.Background(), "session:u1:t1", session{UserID: "u1", Username: "studio"}, 60)
	require.NoError(t, err)

	err = redisCache.Save(context.Background(), "plain", "value", 1)
	assert.Error(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisCache_Get(t *testing.T) {
	client, mock := redismock.NewClientMock()
	redisCache := cache.NewRedisCache(client, mocks.NewOtel())

	mock.ExpectGet("session:u1:t1").SetVal(`{"user_id":"u1","username":"studio"}`)
	mock.ExpectGet("raw").SetVal("hello")
	mock.ExpectGet("missing").RedisNil()
	mock.ExpectGet("garbled").SetVal("{not json")

	var got session

	require.NoError(t, redisCache.Get(context.Background(), "session:u1:t1", &got))
	assert.Equal(t, session{UserID: "u1", Username: "studio"}, got)

	var raw string

	require.NoError(t, redisCache.Get(context.Background(), "raw", &raw))
	assert.Equal(t, "hello", raw)

	err := redisCache.Get(context.Background(), "missing", &got)
	assert.ErrorIs(t, err, cache.Nil)

	err = redisCache.Get(context.Background(), "garbled", &got)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, cache.Nil)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisCache_DeleteAndClear(t *testing.T) {
	client, mock := redismock.NewClientMock()
	redisCache := cache.NewRedisCache(client, mocks.NewOtel())

	mock.ExpectDel("session:u1:t1").SetVal(1)
	mock.ExpectScan(0, "session:u1:*", 100).SetVal([]string{"session:u1:t2", "session:u1:t3"}, 0)
	mock.ExpectDel("session:u1:t2").SetVal(1)
	mock.ExpectDel("session:u1:t3").SetVal(1)

	require.NoError(t, redisCache.Delete(context.Background(), "session:u1:t1"))
	require.NoError(t, redisCache.Clear(context.Background(), "session:u1:"))

	assert.NoError(t, mock.ExpectationsWereMet())
}
