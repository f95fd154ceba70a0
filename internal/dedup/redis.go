package dedup

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"go-hh-publisher/internal/logger"
)

// RedisStore keeps the two sent-sets as Redis sets under <prefix>:sent:links
// and <prefix>:sent:ids.
type RedisStore struct {
	rdb      *redis.Client
	linksKey string
	idsKey   string
}

// NewRedisClient parses redisURL and verifies connectivity.
func NewRedisClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("redis.ParseURL: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return client, nil
}

func NewRedisStore(rdb *redis.Client, prefix string) *RedisStore {
	return &RedisStore{
		rdb:      rdb,
		linksKey: prefix + ":sent:links",
		idsKey:   prefix + ":sent:ids",
	}
}

func (rs *RedisStore) Load(ctx context.Context) (SentSet, error) {
	set := NewSentSet()

	links, err := rs.rdb.SMembers(ctx, rs.linksKey).Result()
	if err != nil {
		return SentSet{}, fmt.Errorf("smembers %s: %w", rs.linksKey, err)
	}
	ids, err := rs.rdb.SMembers(ctx, rs.idsKey).Result()
	if err != nil {
		return SentSet{}, fmt.Errorf("smembers %s: %w", rs.idsKey, err)
	}
	for _, l := range links {
		set.Add(l, "")
	}
	for _, id := range ids {
		set.Add("", id)
	}

	logger.Ctx(ctx).Info().
		Int("links", len(set.Links)).
		Int("ids", len(set.IDs)).
		Msg("📋 Loaded previously sent vacancies from Redis")
	return set, nil
}

func (rs *RedisStore) Append(ctx context.Context, links, ids []string) error {
	pipe := rs.rdb.TxPipeline()
	if members := toMembers(links); len(members) > 0 {
		pipe.SAdd(ctx, rs.linksKey, members...)
	}
	if members := toMembers(ids); len(members) > 0 {
		pipe.SAdd(ctx, rs.idsKey, members...)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redis append: %w", err)
	}
	return nil
}

func toMembers(values []string) []interface{} {
	out := make([]interface{}, 0, len(values))
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
