package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const policyKeyPrefix = "governance:policy:"

// Connect initializes a Redis client from a redis:// URL or a host:port address
func Connect(ctx context.Context, redisURL string) (*redis.Client, error) {
	var client *redis.Client
	if strings.HasPrefix(redisURL, "redis://") || strings.HasPrefix(redisURL, "rediss://") {
		opt, err := redis.ParseURL(redisURL)
		if err != nil {
			return nil, fmt.Errorf("parse redis url: %w", err)
		}
		client = redis.NewClient(opt)
	} else {
		client = redis.NewClient(&redis.Options{Addr: redisURL})
	}

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

// PolicyEntry is the cached part of a tenant policy. The vocabulary is derived
// from TenantType on read and is not stored.
type PolicyEntry struct {
	TenantType string   `json:"tenantType"`
	Features   []string `json:"features"`
}

// RedisPolicyCache stores resolved tenant policies per team with a TTL
type RedisPolicyCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisPolicyCache creates a tenant policy cache adapter
func NewRedisPolicyCache(client *redis.Client, ttl time.Duration) *RedisPolicyCache {
	return &RedisPolicyCache{client: client, ttl: ttl}
}

func policyKey(teamID uuid.UUID) string {
	return policyKeyPrefix + teamID.String()
}

// Get returns the cached entry for a team, or nil when there is none
func (c *RedisPolicyCache) Get(ctx context.Context, teamID uuid.UUID) (*PolicyEntry, error) {
	raw, err := c.client.Get(ctx, policyKey(teamID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var entry PolicyEntry
	if err := json.Unmarshal(raw, &entry); err != nil {
		return nil, fmt.Errorf("decode cached policy: %w", err)
	}
	return &entry, nil
}

// Set stores the entry for a team for the configured TTL
func (c *RedisPolicyCache) Set(ctx context.Context, teamID uuid.UUID, entry *PolicyEntry) error {
	raw, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, policyKey(teamID), raw, c.ttl).Err()
}

// Invalidate drops the cached entry of a team
func (c *RedisPolicyCache) Invalidate(ctx context.Context, teamID uuid.UUID) error {
	return c.client.Del(ctx, policyKey(teamID)).Err()
}
