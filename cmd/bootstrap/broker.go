package bootstrap

import (
	"context"
	"log/slog"

	"booking-engine/internal/infra/broker"
	"booking-engine/internal/pkg/config"
	"booking-engine/internal/usecase/jobs"

	"go.uber.org/fx"
)

var BrokerModule = fx.Module("broker",
	fx.Provide(
		NewPublisher,
	),
)

func NewPublisher(lc fx.Lifecycle, cfg config.Config) jobs.Publisher {
	if !cfg.AMQP.Enabled {
		slog.Info("amqp disabled, outbox events are only logged")
		return broker.LogPublisher{}
	}

	p := broker.NewPublisher(cfg.AMQP)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return p.Close()
		},
	})
	return p
}
