package bootstrap

import (
	"context"
	"log/slog"

	"booking-engine/internal/infra/cache"
	"booking-engine/internal/pkg/config"
	"booking-engine/internal/usecase/queries"
	"booking-engine/internal/usecase/shared"

	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewSummaryCache,
		func(c summaryCache) queries.SummaryCache { return c },
		func(c summaryCache) shared.SummaryInvalidator { return c },
		NewLedgerSettings,
	),
)

type summaryCache interface {
	queries.SummaryCache
	shared.SummaryInvalidator
}

func NewSummaryCache(lc fx.Lifecycle, cfg config.Config) (summaryCache, error) {
	if !cfg.Redis.Enabled {
		slog.Info("redis disabled, ledger summaries are not cached")
		return cache.Disabled{}, nil
	}

	client, cleanup, err := cache.Connect(cfg.Redis)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})
	return cache.NewSummaryCache(client), nil
}

func NewLedgerSettings(cfg config.Config) queries.LedgerSettings {
	settings := queries.LedgerSettings{
		CommissionBps: cfg.Ledger.CommissionBps,
		CacheTTL:      cfg.Ledger.CacheTTL,
	}
	if !cfg.Redis.Enabled {
		settings.CacheTTL = 0
	}
	return settings
}
