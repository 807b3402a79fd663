package kafka_test

import (
	"testing"

	"frontdesk/infras/kafka"

	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Template string            `json:"template"`
	Data     map[string]string `json:"data"`
}

func TestMessageRoundTrip(t *testing.T) {
	message := kafka.Message{
		Key:   "booking-1",
		Value: payload{Template: "invoice_issued", Data: map[string]string{"invoiceNo": "INV-20240101-000001"}},
	}

	raw, err := message.ToKafkaMessage()
	require.NoError(t, err)
	assert.Equal(t, []byte("booking-1"), raw.Key)

	decoded, err := kafka.Decode[payload](raw)
	require.NoError(t, err)
	assert.Equal(t, "invoice_issued", decoded.Template)
	assert.Equal(t, "INV-20240101-000001", decoded.Data["invoiceNo"])
}

func TestDecodeInvalidPayload(t *testing.T) {
	_, err := kafka.Decode[payload](kafkaGo.Message{Value: []byte("not-json")})
	assert.Error(t, err)
}

func TestToKafkaMessageUnsupportedValue(t *testing.T) {
	message := kafka.Message{Key: "k", Value: make(chan int)}

	_, err := message.ToKafkaMessage()
	assert.Error(t, err)
}
