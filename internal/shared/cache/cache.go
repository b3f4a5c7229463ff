package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Store adalah cache murni advisory: hasil kalkulasi selalu bisa diturunkan
// ulang dari tabel sumber, jadi kegagalan cache tidak pernah menggagalkan
// request. Get mengembalikan false bila key tidak ada atau cache bermasalah.
//
//go:generate mockgen -source=cache.go -destination=mock/cache_mock.go -package=mock
type Store interface {
	Get(ctx context.Context, key string, dest any) bool
	Set(ctx context.Context, key string, value any, ttl time.Duration)
	Invalidate(ctx context.Context, prefix string)
}

type redisStore struct {
	rdb    *redis.Client
	logger *zap.Logger
}

func NewRedisStore(rdb *redis.Client, logger ...*zap.Logger) Store {
	l := zap.L().Named("cache.redis")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("cache.redis")
	}
	return &redisStore{rdb: rdb, logger: l}
}

func (s *redisStore) Get(ctx context.Context, key string, dest any) bool {
	val, err := s.rdb.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			s.logger.Warn("cache get failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}

	if err := json.Unmarshal([]byte(val), dest); err != nil {
		s.logger.Warn("cache payload decode failed", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (s *redisStore) Set(ctx context.Context, key string, value any, ttl time.Duration) {
	payload, err := json.Marshal(value)
	if err != nil {
		s.logger.Warn("cache payload encode failed", zap.String("key", key), zap.Error(err))
		return
	}

	if err := s.rdb.Set(ctx, key, payload, ttl).Err(); err != nil {
		s.logger.Warn("cache set failed", zap.String("key", key), zap.Error(err))
	}
}

func (s *redisStore) Invalidate(ctx context.Context, prefix string) {
	var cursor uint64
	for {
		keys, next, err := s.rdb.Scan(ctx, cursor, prefix+"*", 100).Result()
		if err != nil {
			s.logger.Warn("cache invalidate scan failed", zap.String("prefix", prefix), zap.Error(err))
			return
		}
		if len(keys) > 0 {
			if err := s.rdb.Del(ctx, keys...).Err(); err != nil {
				s.logger.Warn("cache invalidate delete failed", zap.String("prefix", prefix), zap.Error(err))
			}
		}
		cursor = next
		if cursor == 0 {
			return
		}
	}
}

// Noop dipakai di unit test dan saat redis tidak dikonfigurasi.
type Noop struct{}

func (Noop) Get(ctx context.Context, key string, dest any) bool               { return false }
func (Noop) Set(ctx context.Context, key string, value any, t time.Duration) {}
func (Noop) Invalidate(ctx context.Context, prefix string)                   {}
