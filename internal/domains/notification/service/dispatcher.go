package service

//go:generate go run go.uber.org/mock/mockgen -source=./dispatcher.go -destination=../mocks/dispatcher_mock.go -package=mocks

import (
	"context"
	"sync"

	"frontdesk/config"
	"frontdesk/infras/kafka"
	"frontdesk/internal/domains/notification/model"

	"github.com/rs/zerolog/log"
)

// Dispatcher hands messages off after the caller's state change has been
// committed. Dispatch never blocks on delivery and never reports its outcome.
type Dispatcher interface {
	Dispatch(ctx context.Context, messages ...model.Message)
	// Wait blocks until every dispatched message has been handed off.
	Wait()
}

type localDispatcher struct {
	notification Notification
	wg           sync.WaitGroup
}

// NewDispatcher delivers each message on its own goroutine in-process.
func NewDispatcher(notification Notification) Dispatcher {
	return &localDispatcher{notification: notification}
}

func (d *localDispatcher) Dispatch(ctx context.Context, messages ...model.Message) {
	ctx = context.WithoutCancel(ctx)

	for _, msg := range messages {
		d.wg.Add(1)

		go func() {
			defer d.wg.Done()

			// error already logged by Deliver
			_ = d.notification.Deliver(ctx, msg)
		}()
	}
}

func (d *localDispatcher) Wait() {
	d.wg.Wait()
}

type queueDispatcher struct {
	client kafka.Client
	topic  string
	local  Dispatcher
	wg     sync.WaitGroup
}

// NewQueueDispatcher publishes messages to the notification topic; a
// separate notifier process delivers them. Sensitive messages are delivered
// in-process and never written to the topic.
func NewQueueDispatcher(client kafka.Client, notification Notification, cfg *config.Config) Dispatcher {
	return &queueDispatcher{
		client: client,
		topic:  cfg.Kafka.NotificationTopic,
		local:  NewDispatcher(notification),
	}
}

func (d *queueDispatcher) Dispatch(ctx context.Context, messages ...model.Message) {
	ctx = context.WithoutCancel(ctx)

	batch := make([]kafka.Message, 0, len(messages))
	queued := make([]model.Message, 0, len(messages))

	for _, msg := range messages {
		if msg.Sensitive() {
			d.local.Dispatch(ctx, msg)

			continue
		}

		batch = append(batch, kafka.Message{Key: msg.Recipient, Value: msg})
		queued = append(queued, msg)
	}

	if len(batch) == 0 {
		return
	}

	d.wg.Add(1)

	go func() {
		defer d.wg.Done()

		if err := d.client.SendMessages(ctx, d.topic, batch...); err != nil {
			for _, msg := range queued {
				log.Error().Err(err).
					Str("template", string(msg.Template)).
					Str("channel", string(msg.Channel)).
					Str("recipient", msg.Recipient).
					Msg("failed to publish notification")
			}
		}
	}()
}

func (d *queueDispatcher) Wait() {
	d.wg.Wait()
	d.local.Wait()
}

// ProvideDispatcher selects the queue dispatcher when Kafka is enabled.
func ProvideDispatcher(cfg *config.Config, notification Notification, client kafka.Client) Dispatcher {
	if cfg.Kafka.Enable && client != nil {
		return NewQueueDispatcher(client, notification, cfg)
	}

	return NewDispatcher(notification)
}
