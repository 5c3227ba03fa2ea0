package database

import (
	"context"
	"fmt"
	"vollmed-client/internal/app/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// NewRedisClient returns nil when redis is disabled so callers can fall back to memory only.
func NewRedisClient(ctx context.Context, driverConfig *config.DriverConfig, log *zap.Logger) (*redis.Client, error) {
	if !driverConfig.Redis.Enabled {
		log.Info("Redis disabled, image cache stays in memory")
		return nil, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", driverConfig.Redis.Host, driverConfig.Redis.Port),
		Password: driverConfig.Redis.Password,
		DB:       driverConfig.Redis.DB,
	})

	_, err := rdb.Ping(ctx).Result()
	if err != nil {
		rdb.Close()
		return nil, fmt.Errorf("could not connect to redis: %w", err)
	}

	log.Info("Successfully connected to Redis",
		zap.String("addr", rdb.Options().Addr),
	)
	return rdb, nil
}
