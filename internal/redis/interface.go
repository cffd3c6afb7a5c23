package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client wraps redis.UniversalClient so repositories depend on this package
// rather than on a concrete go-redis client
type Client interface {
	redis.UniversalClient
}

// Nil is returned by Get when the key does not exist
var Nil = redis.Nil
