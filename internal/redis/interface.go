package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client is the subset of go-redis the repositories depend on. It is the
// full UniversalClient so single-instance and cluster clients both fit.
type Client interface {
	redis.UniversalClient
}
