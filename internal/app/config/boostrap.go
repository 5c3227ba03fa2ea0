package config

import (
	"context"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Bootstrap struct {
	Router         *chi.Mux
	Redis          *redis.Client
	Logger         *zap.Logger
	InternalConfig *InternalConfig
	DriverConfig   *DriverConfig
}

// Shutdown releases the drivers held by the bootstrap. Nil fields are skipped.
func (b *Bootstrap) Shutdown(ctx context.Context) error {
	if b.Redis != nil {
		err := b.Redis.Close()
		if err != nil {
			return err
		}
		if b.Logger != nil {
			b.Logger.Debug("Successfully closing Redis")
		}
	}

	if b.Logger != nil {
		// Sync fails on stdout/stderr with EINVAL on some platforms; nothing to do about it.
		_ = b.Logger.Sync()
	}

	return nil
}
