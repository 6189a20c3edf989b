package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

const (
	userKeyPrefix    = "user:%d"
	profileKeyPrefix = "profile:%d"
)

const (
	// UserTTL bounds staleness of cached user rows.
	UserTTL = 5 * time.Minute
	// ProfileTTL bounds staleness of cached profile payloads.
	ProfileTTL = 5 * time.Minute
)

// UserKey returns the cache key for a user row.
func UserKey(userID uint) string {
	return fmt.Sprintf(userKeyPrefix, userID)
}

// ProfileKey returns the cache key for a user's profile payload.
func ProfileKey(userID uint) string {
	return fmt.Sprintf(profileKeyPrefix, userID)
}

// Aside implements the cache-aside pattern: on hit, dest is populated from
// Redis; on miss, load runs and its result is stored with the given TTL.
// When Redis is unavailable Aside degrades to calling load directly.
func Aside(ctx context.Context, key string, dest interface{}, ttl time.Duration, load func() error) error {
	if client != nil {
		if raw, err := client.Get(ctx, key).Bytes(); err == nil {
			if unmarshalErr := json.Unmarshal(raw, dest); unmarshalErr == nil {
				return nil
			}
			// A poisoned entry falls through to the loader and is rewritten.
		}
	}

	if err := load(); err != nil {
		return err
	}

	if client != nil {
		if raw, err := json.Marshal(dest); err == nil {
			client.Set(ctx, key, raw, ttl)
		}
	}
	return nil
}

// Invalidate removes a single cache entry.
func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

// InvalidateUser removes all cached entries for a user.
func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
	Invalidate(ctx, ProfileKey(userID))
}
