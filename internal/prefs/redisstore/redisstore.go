// Package redisstore is a Redis implementation of prefs.Store, for shared kiosk devices
// that keep their settings in a local Redis.
package redisstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/and161185/kid-clinic/internal/errs"
	"github.com/and161185/kid-clinic/internal/prefs"
)

// DefaultHash is the hash that holds all preference fields.
const DefaultHash = "kc:prefs"

// Store keeps preferences as fields of one Redis hash.
type Store struct {
	rdb  *redis.Client
	hash string
}

var _ prefs.Store = (*Store)(nil)

// New parses a redis:// URL, connects and pings.
func New(ctx context.Context, url string) (*Store, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis URL: %w", err)
	}
	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return NewWithClient(rdb, DefaultHash), nil
}

// NewWithClient wraps an existing client; hash defaults to DefaultHash.
func NewWithClient(rdb *redis.Client, hash string) *Store {
	if hash == "" {
		hash = DefaultHash
	}
	return &Store{rdb: rdb, hash: hash}
}

// Close closes the Redis connection.
func (s *Store) Close() error { return s.rdb.Close() }

// Get implements prefs.Store.
func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := s.rdb.HGet(ctx, s.hash, key).Result()
	switch {
	case err == nil:
		return v, true, nil
	case errors.Is(err, redis.Nil):
		return "", false, nil
	default:
		return "", false, wrap("get", key, err)
	}
}

// Set implements prefs.Store.
func (s *Store) Set(ctx context.Context, key, value string) error {
	if err := prefs.CheckEntry(key, value); err != nil {
		return err
	}
	if err := s.rdb.HSet(ctx, s.hash, key, value).Err(); err != nil {
		return wrap("set", key, err)
	}
	return nil
}

// Delete implements prefs.Store.
func (s *Store) Delete(ctx context.Context, key string) error {
	if err := s.rdb.HDel(ctx, s.hash, key).Err(); err != nil {
		return wrap("delete", key, err)
	}
	return nil
}

func wrap(op, key string, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return fmt.Errorf("redisstore %s %q: %w: %w", op, key, errs.ErrPersistence, err)
}
