package storage

import (
	"context"
	"errors"
	"time"

	"github.com/Yapcheekian/shortcode/models"
	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"
)

const keyPrefix = "shortcode:"

// Cached is a read-through Redis cache in front of another Store. Redis
// errors are logged and never fail a request.
type Cached struct {
	next  Store
	redis *redis.Client
	ttl   time.Duration
}

func NewCached(next Store, client *redis.Client, ttl time.Duration) *Cached {
	return &Cached{
		next:  next,
		redis: client,
		ttl:   ttl,
	}
}

func (c *Cached) Create(ctx context.Context, url *models.URL) error {
	if err := c.next.Create(ctx, url); err != nil {
		return err
	}

	if err := c.redis.Set(ctx, keyPrefix+url.ShortCode, url.OriginalURL, c.ttl).Err(); err != nil {
		log.Warn().Err(err).Str("code", url.ShortCode).Msg("redis.Set failed")
	}
	return nil
}

func (c *Cached) GetByCode(ctx context.Context, code string) (models.URL, error) {
	val, err := c.redis.Get(ctx, keyPrefix+code).Result()
	switch {
	case err == nil:
		return models.URL{ShortCode: code, OriginalURL: val}, nil
	case !errors.Is(err, redis.Nil):
		log.Warn().Err(err).Str("code", code).Msg("redis.Get failed")
	}

	url, err := c.next.GetByCode(ctx, code)
	if err != nil {
		return url, err
	}

	if err := c.redis.Set(ctx, keyPrefix+code, url.OriginalURL, c.ttl).Err(); err != nil {
		log.Warn().Err(err).Str("code", code).Msg("redis.Set failed")
	}
	return url, nil
}
