package cache

import (
	"context"
	"log/slog"
	"time"

	"booking-engine/internal/pkg/config"
	"booking-engine/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

const pingTimeout = 2 * time.Second

func Connect(cfg config.RedisConfig) (*redis.Client, func(), error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, errs.Wrap(err, "failed to ping redis")
	}

	cleanup := func() {
		if err := client.Close(); err != nil {
			slog.Warn("failed to close redis client", "error", err.Error())
			return
		}
		slog.Info("redis client closed")
	}

	return client, cleanup, nil
}
