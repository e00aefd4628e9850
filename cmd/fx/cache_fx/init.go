package cache_fx

import (
	"go.uber.org/fx"
	"yellbook/pkg/cache"
)

var Module = fx.Provide(provideCacheClient)

// provideCacheClient returns nil when Redis is not configured; consumers
// treat the nil client as a disabled cache.
func provideCacheClient() *cache.Client {
	return cache.NewFromEnv()
}
