package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

const testKeyHex = "0000000000000000000000000000000000000000000000000000000000000000"

func TestNewSessionStoreValidation(t *testing.T) {
	_, err := NewSessionStore("zz")
	assert.Error(t, err)

	_, err = NewSessionStore("0011")
	assert.Error(t, err)

	store, err := NewSessionStore(testKeyHex)
	assert.NoError(t, err)
	assert.NotNil(t, store)
}

func TestSessionStoreEncryptDecrypt(t *testing.T) {
	store, err := NewSessionStore(testKeyHex)
	assert.NoError(t, err)

	enc, err := store.encrypt([]byte(`{"x":1}`))
	assert.NoError(t, err)
	assert.NotEmpty(t, enc)

	dec, err := store.decrypt(enc)
	assert.NoError(t, err)
	assert.Contains(t, string(dec), `"x":1`)

	_, err = store.decrypt("00") // shorter than the nonce
	assert.Error(t, err)

	_, err = store.decrypt("zz-not-hex")
	assert.Error(t, err)
}

func TestSessionStoreRoundTrip(t *testing.T) {
	srv, err := miniredis.Run()
	if err != nil {
		t.Skipf("skip: miniredis unavailable in this environment: %v", err)
	}
	defer srv.Close()

	cli := goredis.NewClient(&goredis.Options{Addr: srv.Addr()})
	SetClient(cli)
	defer cli.Close()

	store, err := NewSessionStore(testKeyHex)
	assert.NoError(t, err)

	ctx := context.Background()
	err = store.CreateSession(ctx, "sid-ok", &SessionData{AccessToken: "a-ok", RefreshToken: "r-ok"}, time.Minute)
	assert.NoError(t, err)

	// Stored value must not contain the plaintext tokens.
	raw, err := srv.Get("session:sid-ok")
	assert.NoError(t, err)
	assert.NotContains(t, raw, "a-ok")

	data, err := store.GetSession(ctx, "sid-ok")
	assert.NoError(t, err)
	assert.Equal(t, "a-ok", data.AccessToken)
	assert.Equal(t, "r-ok", data.RefreshToken)

	err = store.DeleteSession(ctx, "sid-ok")
	assert.NoError(t, err)

	_, err = store.GetSession(ctx, "sid-ok")
	assert.Error(t, err)
}

func TestSessionStoreExpiry(t *testing.T) {
	srv, err := miniredis.Run()
	if err != nil {
		t.Skipf("skip: miniredis unavailable in this environment: %v", err)
	}
	defer srv.Close()

	cli := goredis.NewClient(&goredis.Options{Addr: srv.Addr()})
	SetClient(cli)
	defer cli.Close()

	store, err := NewSessionStore(testKeyHex)
	assert.NoError(t, err)

	ctx := context.Background()
	err = store.CreateSession(ctx, "sid-exp", &SessionData{AccessToken: "a"}, time.Second)
	assert.NoError(t, err)

	srv.FastForward(2 * time.Second)

	_, err = store.GetSession(ctx, "sid-exp")
	assert.Error(t, err)
}
