package services

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisService holds the rating matrix. Each rating key
// ("<code>:<sumInsured>") maps to a sorted set whose members are
// premium amounts scored by risk band.
type RedisService struct {
	client *redis.Client
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

func NewRedisService(config *RedisConfig) (*RedisService, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", config.Host, config.Port),
		Password: config.Password,
		DB:       config.DB,
	})

	// Test the connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := client.Ping(ctx).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %v", err)
	}

	return &RedisService{
		client: client,
	}, nil
}

// AddRate stores a premium amount under the rating key with its band score.
func (r *RedisService) AddRate(ctx context.Context, key string, score int, premium string) error {
	return r.client.ZAdd(ctx, key, redis.Z{Score: float64(score), Member: premium}).Err()
}

// RatesByScore returns the premium members stored for exactly this band.
func (r *RedisService) RatesByScore(ctx context.Context, key string, score int) ([]string, error) {
	band := fmt.Sprintf("%d", score)
	return r.client.ZRangeByScore(ctx, key, &redis.ZRangeBy{
		Min: band,
		Max: band,
	}).Result()
}

// HasKeys reports whether any rating keys are present.
func (r *RedisService) HasKeys(ctx context.Context) (bool, error) {
	keys, err := r.client.Keys(ctx, "*").Result()
	if err != nil {
		return false, err
	}
	return len(keys) > 0, nil
}

// Flush drops the entire rating matrix.
func (r *RedisService) Flush(ctx context.Context) error {
	return r.client.FlushAll(ctx).Err()
}

// Close closes the Redis connection
func (r *RedisService) Close() error {
	return r.client.Close()
}
