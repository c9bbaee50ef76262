package session

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/gymkit/dashboard/internal/config"
)

const redisKeyPrefix = "gymdash:session:"

// RedisStorage persists session fields in Redis, for deployments where the
// dashboard host has no durable local disk.
type RedisStorage struct {
	client *redis.Client
}

// NewRedisStorage connects to Redis using the provided configuration.
func NewRedisStorage(cfg config.RedisConfig, logger *zap.Logger) *RedisStorage {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		logger.Warn("unable to reach redis", zap.Error(err))
	} else {
		logger.Info("connected to redis")
	}

	return &RedisStorage{client: client}
}

func (s *RedisStorage) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := s.client.Get(ctx, redisKeyPrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (s *RedisStorage) Set(ctx context.Context, key, value string) error {
	return s.client.Set(ctx, redisKeyPrefix+key, value, 0).Err()
}

func (s *RedisStorage) Clear(ctx context.Context) error {
	keys := []string{redisKeyPrefix + KeyToken, redisKeyPrefix + KeyUser, redisKeyPrefix + KeyRole}
	return s.client.Del(ctx, keys...).Err()
}

// Close closes the underlying client.
func (s *RedisStorage) Close() {
	if s != nil && s.client != nil {
		_ = s.client.Close()
	}
}
