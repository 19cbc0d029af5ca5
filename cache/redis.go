package cache

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const clearBatchSize = 100

// Redis is a Cache shared between instances, stored in a redis server
type Redis struct {
	client redis.UniversalClient
}

// NewRedis connects to the redis server described by opts and checks that
// it is reachable
func NewRedis(ctx context.Context, opts *redis.Options) (*Redis, error) {
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.Wrapf(err, "could not reach redis at '%s'", opts.Addr)
	}
	return &Redis{client: client}, nil
}

// Close closes the underlying client
func (r *Redis) Close() error {
	return r.client.Close()
}

// Get implements the Cache interface
func (r *Redis) Get(ctx context.Context, key string, target any) (bool, error) {
	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, errors.Wrap(err, "redis get failed")
	}
	if err = decode(data, target); err != nil {
		return false, err
	}
	return true, nil
}

// Set implements the Cache interface
func (r *Redis) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	data, err := encode(value)
	if err != nil {
		return err
	}
	if ttl < 0 {
		ttl = 0
	}
	return errors.Wrap(r.client.Set(ctx, key, data, ttl).Err(), "redis set failed")
}

// Delete implements the Cache interface
func (r *Redis) Delete(ctx context.Context, key string) error {
	return errors.Wrap(r.client.Del(ctx, key).Err(), "redis delete failed")
}

// Clear implements the Cache interface
func (r *Redis) Clear(ctx context.Context, prefix string) error {
	iter := r.client.Scan(ctx, 0, prefix+"*", clearBatchSize).Iterator()
	batch := make([]string, 0, clearBatchSize)
	for iter.Next(ctx) {
		batch = append(batch, iter.Val())
		if len(batch) == clearBatchSize {
			if err := r.client.Del(ctx, batch...).Err(); err != nil {
				return errors.Wrap(err, "redis delete failed")
			}
			batch = batch[:0]
		}
	}
	if err := iter.Err(); err != nil {
		return errors.Wrap(err, "redis scan failed")
	}
	if len(batch) > 0 {
		if err := r.client.Del(ctx, batch...).Err(); err != nil {
			return errors.Wrap(err, "redis delete failed")
		}
	}
	return nil
}
