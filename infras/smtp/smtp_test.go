package smtp_test

import (
	"context"
	"strings"
	"testing"

	"frontdesk/config"
	"frontdesk/infras/otel/mocks"
	"frontdesk/infras/smtp"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompose(t *testing.T) {
	body, err := smtp.Compose("desk@hotel.test", "jane@x.com", "Welcome\nabroad", "<p>Hello</p>", "Hello")
	require.NoError(t, err)

	msg := string(body)

	assert.Contains(t, msg, "From: desk@hotel.test\r\n")
	assert.Contains(t, msg, "To: jane@x.com\r\n")
	assert.Contains(t, msg, "Subject: Welcome abroad\r\n")
	assert.Contains(t, msg, "Content-Type: text/plain; charset=UTF-8")
	assert.Contains(t, msg, "Content-Type: text/html; charset=UTF-8")
	assert.True(t, strings.HasSuffix(msg, "--\r\n"))
}

func TestCompose_SkipsEmptyParts(t *testing.T) {
	body, err := smtp.Compose("desk@hotel.test", "jane@x.com", "Hi", "", "plain only")
	require.NoError(t, err)

	assert.NotContains(t, string(body), "text/html")
}

func TestSend_NotConfigured(t *testing.T) {
	mailer := smtp.New(&config.Config{}, mocks.NewOtel())

	err := mailer.Send(context.Background(), "jane@x.com", "Hi", "", "hello")
	assert.ErrorIs(t, err, smtp.ErrNotConfigured)
}
