// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"medibook/config"

	"github.com/go-redis/redis/v8"
)

var (
	// LockClient backs the distributed doctor schedule lock.
	LockClient *redis.Client
	// AuthCacheClient is the dedicated client for account status caching.
	AuthCacheClient *redis.Client
)

// NewRedisClient builds a client for one logical database on the configured server.
func NewRedisClient(db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       db,
	})
}

func mustPing(client *redis.Client, name string) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (%s): %v", name, err)
	}
}

// InitLockClient initializes the Redis client used for schedule locks.
func InitLockClient() {
	LockClient = NewRedisClient(config.AppConfig.RedisLockDB)
	mustPing(LockClient, "Lock")
}

// InitAuthCache initializes the Redis client for account status caching.
func InitAuthCache() {
	AuthCacheClient = NewRedisClient(config.AppConfig.RedisAuthDB)
	mustPing(AuthCacheClient, "Auth Cache")
}

// RedisClients returns every initialised client, for health checks and shutdown.
func RedisClients() []*redis.Client {
	var clients []*redis.Client
	for _, c := range []*redis.Client{LockClient, AuthCacheClient} {
		if c != nil {
			clients = append(clients, c)
		}
	}
	return clients
}

// AuthCacheKey is the Redis key holding the cached account status of userID.
func AuthCacheKey(userID string) string {
	return AuthCachePrefix + userID
}

// InvalidateAuthCache drops the cached status so the next request re-reads the account.
func InvalidateAuthCache(ctx context.Context, client *redis.Client, userID string) error {
	if client == nil {
		return nil
	}
	return client.Del(ctx, AuthCacheKey(userID)).Err()
}
