package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client is the subset of go-redis the stores depend on. It is the full
// UniversalClient so a cluster client can be swapped in.
type Client interface {
	redis.UniversalClient
}
