package bootstrap

import (
	"context"
	"log/slog"

	"bluehaven/internal/infra/broker/kafka"
	"bluehaven/internal/infra/mailrelay"
	"bluehaven/internal/pkg/config"
	"bluehaven/internal/usecase/shared"

	"go.uber.org/fx"
)

var MessagingModule = fx.Module("messaging",
	fx.Provide(
		NewNotifier,
		NewEventPublisher,
	),
)

func NewNotifier(cfg config.Config) shared.Notifier {
	if !cfg.Mail.Enabled() {
		slog.Info("mail relay not configured, notifications disabled")
		return shared.NopNotifier{}
	}
	client := mailrelay.NewClient(cfg.Mail.Endpoint, cfg.Mail.ServiceID, cfg.Mail.PublicKey, cfg.Mail.PrivateKey, cfg.Mail.Timeout)
	return mailrelay.NewNotifier(client, cfg.Mail, cfg.Property.OwnerEmail, cfg.Property.Location())
}

// NewEventPublisher degrades to a no-op publisher when the brokers are unreachable
// at startup.
func NewEventPublisher(lc fx.Lifecycle, cfg config.Config) shared.EventPublisher {
	if !cfg.Kafka.Enabled() {
		return shared.NopPublisher{}
	}
	producer, err := kafka.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.ClientID, nil)
	if err != nil {
		slog.Warn("kafka unavailable, booking events disabled", "brokers", cfg.Kafka.Brokers, "error", err)
		return shared.NopPublisher{}
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return producer.Close()
		},
	})
	slog.Info("publishing booking events", "topic", cfg.Kafka.Topic)
	return kafka.NewBookingPublisher(producer, cfg.Kafka.Topic)
}
