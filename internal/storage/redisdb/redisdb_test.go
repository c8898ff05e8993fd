package redisdb

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/subscriptions/internal/config"
)

func TestNew(t *testing.T) {
	mr := miniredis.RunT(t)

	db, err := New(context.Background(), config.RedisConnection{AddressRedis: mr.Addr()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, db.Set(context.Background(), "k", "v", 0).Err())
	got, err := mr.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "v", got)
}

func TestNewInvalidAddr(t *testing.T) {
	db, err := New(context.Background(), config.RedisConnection{AddressRedis: "127.0.0.1:1"})
	assert.Nil(t, db)
	assert.Error(t, err)
}

func TestHealthcheck(t *testing.T) {
	mr := miniredis.RunT(t)

	db, err := New(context.Background(), config.RedisConnection{AddressRedis: mr.Addr()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	check := Healthcheck(db)
	assert.NoError(t, check(context.Background()))

	mr.Close()
	assert.Error(t, check(context.Background()))
}
