package database

import (
	"context"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Health performs boundary reachability probes. Probe failures are logged
// and converted to a boolean; a probe never returns an error and never
// panics.
type Health struct {
	db     *DB
	cache  *redis.Client
	logger *zap.Logger
}

// NewHealth creates probes over the given pool and cache client.
// The cache client may be nil when Redis is not configured.
func NewHealth(db *DB, cache *redis.Client, logger *zap.Logger) *Health {
	return &Health{db: db, cache: cache, logger: logger}
}

// CheckDatabase executes a trivial round-trip query against the pool.
func (h *Health) CheckDatabase(ctx context.Context) bool {
	if h.db == nil {
		return false
	}

	var one int
	if err := h.db.QueryRow(ctx, "SELECT 1").Scan(&one); err != nil {
		h.logger.Error("Database health check failed", zap.Error(err))
		return false
	}
	return true
}

// CheckCache pings the Redis client.
func (h *Health) CheckCache(ctx context.Context) bool {
	if h.cache == nil {
		return false
	}

	if err := h.cache.Ping(ctx).Err(); err != nil {
		h.logger.Error("Cache health check failed", zap.Error(err))
		return false
	}
	return true
}
