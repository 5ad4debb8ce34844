package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestInit_BadURL(t *testing.T) {
	err := Init("not-a-redis-url", "")
	assert.Error(t, err)
}

func TestClientOperations(t *testing.T) {
	srv, err := miniredis.Run()
	if err != nil {
		t.Skipf("skip: miniredis unavailable in this environment: %v", err)
	}
	defer srv.Close()

	cli := goredis.NewClient(&goredis.Options{Addr: srv.Addr()})
	SetClient(cli)
	defer cli.Close()
	assert.Same(t, cli, GetClient())

	ctx := context.Background()

	assert.NoError(t, Set(ctx, "k", "v", time.Minute))

	got, err := Get(ctx, "k")
	assert.NoError(t, err)
	assert.Equal(t, "v", got)

	ttl, err := TTL(ctx, "k")
	assert.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))

	ok, err := SetNX(ctx, "k", "other", time.Minute)
	assert.NoError(t, err)
	assert.False(t, ok)

	ok, err = SetNX(ctx, "fresh", "v2", time.Minute)
	assert.NoError(t, err)
	assert.True(t, ok)

	assert.NoError(t, Del(ctx, "k"))
	_, err = Get(ctx, "k")
	assert.ErrorIs(t, err, goredis.Nil)
}
