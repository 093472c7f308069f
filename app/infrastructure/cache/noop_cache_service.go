package cache

import (
	"context"
	"fmt"
	"time"
)

// NoOpCacheService provides a no-operation cache service for graceful degradation
type NoOpCacheService struct{}

// NewNoOpCacheService creates a cache service that never stores anything.
func NewNoOpCacheService() CacheService {
	return &NoOpCacheService{}
}

// Set is a no-op implementation
func (n *NoOpCacheService) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	return nil
}

// Get always returns "key not found" error
func (n *NoOpCacheService) Get(ctx context.Context, key string) (string, error) {
	return "", fmt.Errorf("key not found: %s", key)
}

// Exists always reports absence
func (n *NoOpCacheService) Exists(ctx context.Context, key string) (bool, error) {
	return false, nil
}

// Delete is a no-op implementation
func (n *NoOpCacheService) Delete(ctx context.Context, key string) error {
	return nil
}

// Close is a no-op implementation
func (n *NoOpCacheService) Close() error {
	return nil
}

// HealthCheck always succeeds
func (n *NoOpCacheService) HealthCheck(ctx context.Context) error {
	return nil
}
