package redisstore

import (
	"context"
	"encoding/json"
	"time"

	"studiobooking/internal/infra"

	"github.com/redis/go-redis/v9"
)

const deviceHashKeyPrefix = "devices:"

// DeviceHashCache is a short-lived read-through cache of the bcrypt
// fingerprint hashes trusted for a phone, saving a database round trip on
// every auto-login attempt. Invalidated whenever a new device is trusted.
type DeviceHashCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewDeviceHashCache(client *redis.Client, ttl time.Duration) *DeviceHashCache {
	return &DeviceHashCache{client: client, ttl: ttl}
}

// Get returns the cached hashes and whether the cache held an entry. An
// empty cached slice is a valid hit meaning "no trusted devices".
func (c *DeviceHashCache) Get(ctx context.Context, phone string) ([]string, bool, error) {
	data, err := c.client.Get(ctx, deviceHashKeyPrefix+phone).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, infra.WrapRepoErr("failed to read device hash cache", err)
	}
	var hashes []string
	if err := json.Unmarshal(data, &hashes); err != nil {
		return nil, false, infra.WrapRepoErr("failed to unmarshal device hash cache", err)
	}
	return hashes, true, nil
}

func (c *DeviceHashCache) Set(ctx context.Context, phone string, hashes []string) error {
	if hashes == nil {
		hashes = []string{}
	}
	data, err := json.Marshal(hashes)
	if err != nil {
		return infra.WrapRepoErr("failed to marshal device hash cache", err)
	}
	if err := c.client.Set(ctx, deviceHashKeyPrefix+phone, data, c.ttl).Err(); err != nil {
		return infra.WrapRepoErr("failed to write device hash cache", err)
	}
	return nil
}

func (c *DeviceHashCache) Invalidate(ctx context.Context, phone string) error {
	if err := c.client.Del(ctx, deviceHashKeyPrefix+phone).Err(); err != nil {
		return infra.WrapRepoErr("failed to invalidate device hash cache", err)
	}
	return nil
}
