package event_test

import (
	"context"
	"errors"
	"testing"

	"frontdesk/config"
	kafkaMocks "frontdesk/infras/kafka/mocks"
	"frontdesk/infras/otel/mocks"
	"frontdesk/internal/domains/notification/model"
	notificationMocks "frontdesk/internal/domains/notification/mocks"
	"frontdesk/internal/handlers/event"

	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Kafka.ConsumerGroup = "frontdesk-notifier"
	cfg.Kafka.NotificationTopic = "frontdesk.notifications"

	return cfg
}

func TestNotification_Handle(t *testing.T) {
	msg := model.Message{
		Template:  model.TemplateAccessRequestReceived,
		Channel:   model.ChannelEmail,
		Recipient: "jane@x.com",
		Data:      map[string]string{model.DataFullName: "Jane"},
	}

	tests := []struct {
		name       string
		value      []byte
		deliverErr error
		expectCall bool
		wantErr    bool
	}{
		{
			name:       "delivers decoded message",
			value:      []byte(`{"template":"access_request_received","channel":"EMAIL","recipient":"jane@x.com","data":{"FullName":"Jane"}}`),
			expectCall: true,
		},
		{
			name:       "delivery failure still commits",
			value:      []byte(`{"template":"access_request_received","channel":"EMAIL","recipient":"jane@x.com","data":{"FullName":"Jane"}}`),
			deliverErr: errors.New("smtp down"),
			expectCall: true,
		},
		{
			name:    "undecodable payload",
			value:   []byte(`{not json`),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			notification := notificationMocks.NewMockNotification(ctrl)

			if tt.expectCall {
				notification.EXPECT().Deliver(gomock.Any(), msg).Return(tt.deliverErr)
			}

			handler := event.NewNotification(kafkaMocks.NewMockClient(ctrl), notification, newConfig(), mocks.NewOtel())

			err := handler.Handle(context.Background(), kafkaGo.Message{Key: []byte("jane@x.com"), Value: tt.value})
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestNotification_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := kafkaMocks.NewMockClient(ctrl)

	client.EXPECT().
		Consume(gomock.Any(), "frontdesk-notifier", "frontdesk.notifications", gomock.Any()).
		Times(1)

	handler := event.NewNotification(client, notificationMocks.NewMockNotification(ctrl), newConfig(), mocks.NewOtel())
	handler.Run(context.Background())
}
