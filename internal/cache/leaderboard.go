package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"peerskill/api/internal/models"
)

const (
	leaderboardKey = "peerskill:leaderboard"
	leaderboardTTL = 10 * time.Minute
)

// LeaderboardCache keeps a JSON snapshot of the top users by skill points.
// It is purely an acceleration layer: a miss or a redis outage falls through
// to the database.
type LeaderboardCache struct {
	client *redis.Client
}

func NewLeaderboardCache(client *redis.Client) *LeaderboardCache {
	return &LeaderboardCache{client: client}
}

func (c *LeaderboardCache) Get(ctx context.Context) ([]models.User, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}

	payload, err := c.client.Get(ctx, leaderboardKey).Bytes()
	if err != nil {
		return nil, false
	}

	var users []models.User
	if err := json.Unmarshal(payload, &users); err != nil {
		return nil, false
	}
	return users, true
}

func (c *LeaderboardCache) Set(ctx context.Context, users []models.User) error {
	if c == nil || c.client == nil {
		return nil
	}

	// Never persist password hashes outside the primary store.
	snapshot := make([]models.User, len(users))
	for i, u := range users {
		u.PasswordHash = nil
		snapshot[i] = u
	}

	payload, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, leaderboardKey, payload, leaderboardTTL).Err()
}
