package auth

import (
	"context"
	"sync"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// Blacklist stores revoked refresh-token IDs (jti) until their natural
// expiry. Logout adds the refresh jti; a blacklisted token can never be
// revoked or refreshed again.
type Blacklist interface {
	Add(ctx context.Context, jti string, until time.Time) error
	Contains(ctx context.Context, jti string) (bool, error)
}

const blacklistKeyPrefix = "auth:blacklist:"

// RedisBlacklist persists revocations in Redis with a TTL matching the token
// expiry, so entries clean themselves up.
type RedisBlacklist struct {
	client *goredis.Client
}

func NewRedisBlacklist(client *goredis.Client) *RedisBlacklist {
	return &RedisBlacklist{client: client}
}

func (b *RedisBlacklist) Add(ctx context.Context, jti string, until time.Time) error {
	ttl := time.Until(until)
	if ttl <= 0 {
		// Already expired, nothing to revoke.
		return nil
	}
	return b.client.Set(ctx, blacklistKeyPrefix+jti, "1", ttl).Err()
}

func (b *RedisBlacklist) Contains(ctx context.Context, jti string) (bool, error) {
	n, err := b.client.Exists(ctx, blacklistKeyPrefix+jti).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// MemoryBlacklist is the single-process fallback used when Redis is not
// configured. Expired entries are swept by a background janitor.
type MemoryBlacklist struct {
	mu      sync.RWMutex
	revoked map[string]time.Time
}

func NewMemoryBlacklist() *MemoryBlacklist {
	b := &MemoryBlacklist{revoked: make(map[string]time.Time)}
	go b.janitor(5 * time.Minute)
	return b
}

func (b *MemoryBlacklist) janitor(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for range ticker.C {
		now := time.Now()
		b.mu.Lock()
		for jti, until := range b.revoked {
			if until.Before(now) {
				delete(b.revoked, jti)
			}
		}
		b.mu.Unlock()
	}
}

func (b *MemoryBlacklist) Add(_ context.Context, jti string, until time.Time) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.revoked[jti] = until
	return nil
}

func (b *MemoryBlacklist) Contains(_ context.Context, jti string) (bool, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	until, ok := b.revoked[jti]
	if !ok {
		return false, nil
	}
	return time.Now().Before(until), nil
}
