// Package testutils provides test helpers: scripted dice and an in-memory
// Redis server.
package testutils

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-battle/internal/redis"
)

// TestRedis is an in-memory Redis server and a client connected to it.
type TestRedis struct {
	Server *miniredis.Miniredis
	Client redis.Client
}

// NewTestRedis starts a server that is closed when t finishes.
func NewTestRedis(t *testing.T) *TestRedis {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err, "failed to create miniredis")

	client, err := redis.NewClient(mr.Addr(), nil)
	require.NoError(t, err, "failed to create redis client")

	t.Cleanup(func() {
		_ = client.Close()
		mr.Close()
	})

	return &TestRedis{Server: mr, Client: client}
}

// FastForward moves the server clock so keys with a TTL expire.
func (r *TestRedis) FastForward(d time.Duration) {
	r.Server.FastForward(d)
}
