package cache

import (
	"context"
	"strconv"
	"time"

	"github.com/emrgen/resourcesync/internal/model"
	redis "github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const resourceKeyPrefix = "resource:url:"

func resourceKey(url string) string {
	return resourceKeyPrefix + url
}

var _ ResourceCache = (*RedisResourceCache)(nil)

type RedisResourceCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
		Protocol: 2, // Connection protocol
	})
}

func NewRedisResourceCache(client *redis.Client, ttl time.Duration) *RedisResourceCache {
	return &RedisResourceCache{client: client, ttl: ttl}
}

func (r *RedisResourceCache) GetResourceIDs(ctx context.Context, urls []string) (map[string]uint, error) {
	ids := make(map[string]uint, len(urls))
	if len(urls) == 0 {
		return ids, nil
	}

	keys := make([]string, len(urls))
	for i, url := range urls {
		keys[i] = resourceKey(url)
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	for i, value := range values {
		raw, ok := value.(string)
		if !ok {
			continue
		}

		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			logrus.Warnf("ignoring cached resource id %q for %s: %v", raw, urls[i], err)
			continue
		}
		ids[urls[i]] = uint(id)
	}

	return ids, nil
}

func (r *RedisResourceCache) SetResources(ctx context.Context, resources []*model.Resource) error {
	if len(resources) == 0 {
		return nil
	}

	pipe := r.client.Pipeline()
	for _, resource := range resources {
		if resource == nil || resource.ID == 0 {
			continue
		}
		pipe.Set(ctx, resourceKey(resource.URL), strconv.FormatUint(uint64(resource.ID), 10), r.ttl)
	}

	_, err := pipe.Exec(ctx)
	return err
}
