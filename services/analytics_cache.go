package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"main/model"

	"github.com/redis/go-redis/v9"
)

// AnalyticsCache memoizes computed analytics overviews in Redis. Entries are
// short-lived and explicitly invalidated whenever the user's habits or
// records change, so no cached value outlives its inputs.
type AnalyticsCache struct {
	client *redis.Client
}

var GlobalAnalyticsCache *AnalyticsCache

const analyticsCacheTTL = 5 * time.Minute

func NewAnalyticsCache(redisURL string) (*AnalyticsCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %v", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %v", err)
	}

	return &AnalyticsCache{client: client}, nil
}

func overviewKey(userID string, window Window) string {
	return fmt.Sprintf("analytics:%s:%s", userID, window)
}

// GetOverview returns the cached overview or nil on a miss.
func (ac *AnalyticsCache) GetOverview(userID string, window Window) (*model.AnalyticsOverview, error) {
	if userID == "" {
		return nil, fmt.Errorf("userID cannot be empty")
	}

	data, err := ac.client.Get(context.Background(), overviewKey(userID, window)).Bytes()
	if err == redis.Nil {
		return nil, nil // cache miss
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get overview from cache: %v", err)
	}

	var overview model.AnalyticsOverview
	if err := json.Unmarshal(data, &overview); err != nil {
		return nil, fmt.Errorf("failed to unmarshal overview: %v", err)
	}
	return &overview, nil
}

func (ac *AnalyticsCache) SetOverview(userID string, window Window, overview *model.AnalyticsOverview) error {
	if overview == nil {
		return fmt.Errorf("cannot cache nil overview")
	}

	data, err := json.Marshal(overview)
	if err != nil {
		return fmt.Errorf("failed to marshal overview: %v", err)
	}

	return ac.client.Set(context.Background(), overviewKey(userID, window), data, analyticsCacheTTL).Err()
}

// Invalidate drops every cached window for the user. Called on any habit or
// record write.
func (ac *AnalyticsCache) Invalidate(userID string) error {
	if userID == "" {
		return fmt.Errorf("userID cannot be empty")
	}

	ctx := context.Background()
	pattern := fmt.Sprintf("analytics:%s:*", userID)

	var cursor uint64
	for {
		keys, newCursor, err := ac.client.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			return fmt.Errorf("failed to scan cache keys: %v", err)
		}
		if len(keys) > 0 {
			if err := ac.client.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("failed to delete cache keys: %v", err)
			}
		}
		cursor = newCursor
		if cursor == 0 {
			break
		}
	}
	return nil
}

func (ac *AnalyticsCache) IsConnected() bool {
	if ac == nil || ac.client == nil {
		return false
	}
	return ac.client.Ping(context.Background()).Err() == nil
}

func (ac *AnalyticsCache) Close() error {
	return ac.client.Close()
}
