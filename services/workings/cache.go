package workings

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"goodjob/models"
	"goodjob/services/statistics"
	"goodjob/utils"

	"github.com/go-redis/redis/v8"
)

// StatsCache stores computed company groups between requests.
type StatsCache interface {
	GetGroups(ctx context.Context, key string) ([]models.CompanyGroup, bool, error)
	SetGroups(ctx context.Context, key string, groups []models.CompanyGroup) error
	// Invalidate drops every cached result.
	Invalidate(ctx context.Context) error
}

// groupCacheKey folds case only for job titles. Company searches also match
// company.id exactly, so their keyword is kept as typed.
func groupCacheKey(mode, keyword string, opts statistics.GroupOptions) string {
	if mode == modeJobTitle {
		keyword = strings.ToUpper(keyword)
	}
	return fmt.Sprintf("%s:%s:%s:%s", mode, opts.SortBy, opts.Order, keyword)
}

// RedisStatsCache keeps results under a generation counter, so invalidation
// is a single INCR and stale entries simply expire.
type RedisStatsCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStatsCache(client *redis.Client, ttl time.Duration) *RedisStatsCache {
	return &RedisStatsCache{client: client, ttl: ttl}
}

func (c *RedisStatsCache) generation(ctx context.Context) (int64, error) {
	gen, err := c.client.Get(ctx, utils.StatsGenerationKey).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	return gen, err
}

func (c *RedisStatsCache) redisKey(ctx context.Context, key string) (string, error) {
	gen, err := c.generation(ctx)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%sgroups:%d:%s", utils.StatsCachePrefix, gen, key), nil
}

func (c *RedisStatsCache) GetGroups(ctx context.Context, key string) ([]models.CompanyGroup, bool, error) {
	redisKey, err := c.redisKey(ctx, key)
	if err != nil {
		return nil, false, err
	}
	data, err := c.client.Get(ctx, redisKey).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	groups := []models.CompanyGroup{}
	if err := json.Unmarshal(data, &groups); err != nil {
		return nil, false, err
	}
	return groups, true, nil
}

func (c *RedisStatsCache) SetGroups(ctx context.Context, key string, groups []models.CompanyGroup) error {
	redisKey, err := c.redisKey(ctx, key)
	if err != nil {
		return err
	}
	b, err := json.Marshal(groups)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, redisKey, b, c.ttl).Err()
}

func (c *RedisStatsCache) Invalidate(ctx context.Context) error {
	return c.client.Incr(ctx, utils.StatsGenerationKey).Err()
}

// NoopStatsCache never stores anything.
type NoopStatsCache struct{}

func (NoopStatsCache) GetGroups(context.Context, string) ([]models.CompanyGroup, bool, error) {
	return nil, false, nil
}

func (NoopStatsCache) SetGroups(context.Context, string, []models.CompanyGroup) error { return nil }

func (NoopStatsCache) Invalidate(context.Context) error { return nil }
