package event

import (
	"context"
	"fmt"

	"frontdesk/config"
	"frontdesk/infras/kafka"
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/notification/model"
	"frontdesk/internal/domains/notification/service"
	"frontdesk/shared/constant"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
)

// Notification consumes queued notification messages and delivers them.
type Notification struct {
	client       kafka.Client
	notification service.Notification
	cfg          *config.Config
	otel         otel.Otel
}

func NewNotification(client kafka.Client, notification service.Notification, cfg *config.Config, otel otel.Otel) Notification {
	return Notification{
		client:       client,
		notification: notification,
		cfg:          cfg,
		otel:         otel,
	}
}

// Run blocks until ctx is cancelled.
func (n *Notification) Run(ctx context.Context) {
	log.Info().Str("topic", n.cfg.Kafka.NotificationTopic).Msg("Notification consumer started")

	n.client.Consume(ctx, n.cfg.Kafka.ConsumerGroup, n.cfg.Kafka.NotificationTopic, n.Handle)
}

// Handle delivers one message. Delivery failures are logged by the
// deliverer and the offset is still committed; there is no redelivery.
func (n *Notification) Handle(ctx context.Context, message kafkaGo.Message) (err error) {
	ctx, scope := n.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".Notification")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	msg, err := kafka.Decode[model.Message](message)
	if err != nil {
		return fmt.Errorf("failed to decode notification: %w", err)
	}

	scope.SetAttributes(map[string]any{
		"notification.template": string(msg.Template),
		"notification.channel":  string(msg.Channel),
	})

	_ = n.notification.Deliver(ctx, msg)

	return nil
}
