package cache

import (
	"strings"

	"ravelpix.com/photo-download-gateway/config/environment_variables"
)

// NewCacheService creates a cache service based on configuration
func NewCacheService() CacheService {
	cacheType := strings.ToLower(environment_variables.EnvironmentVariables.CACHE_TYPE)

	switch cacheType {
	case "redis":
		return NewRedisCacheService()
	case "valkey":
		return NewValkeyCacheService()
	default:
		// The gateway is fully functional without a cache; every existence
		// question then goes to the object store.
		return NewNoOpCacheService()
	}
}
