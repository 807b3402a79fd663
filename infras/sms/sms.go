package sms

//go:generate go run go.uber.org/mock/mockgen -source=./sms.go -destination=./mocks/sms_mock.go -package=mocks

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"frontdesk/config"
	"frontdesk/infras/otel"
	"frontdesk/shared/constant"

	jsoniter "github.com/json-iterator/go"
)

const (
	otelAttrRecipient = "recipient"
	maxErrorBody      = 512
)

var (
	json = jsoniter.ConfigCompatibleWithStandardLibrary

	ErrNotConfigured = errors.New("sms endpoint not configured")
)

type Sender interface {
	Send(ctx context.Context, to, message string) error
}

type payload struct {
	To      string `json:"to"`
	From    string `json:"from,omitempty"`
	Message string `json:"message"`
}

type senderImpl struct {
	config *config.Config
	client *http.Client
	otel   otel.Otel
}

func New(config *config.Config, client *http.Client, otel otel.Otel) Sender {
	if client == nil {
		client = http.DefaultClient
	}

	return &senderImpl{
		config: config,
		client: client,
		otel:   otel,
	}
}

// Send posts the message to the configured gateway endpoint. Any non-2xx
// answer is an error carrying the start of the response body.
func (s *senderImpl) Send(ctx context.Context, to, message string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".sms.Send")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(otelAttrRecipient, to)

	cfg := s.config.Notification.SMS
	if cfg.Endpoint == "" {
		return ErrNotConfigured
	}

	body, err := json.Marshal(payload{To: to, From: cfg.Sender, Message: message})
	if err != nil {
		return fmt.Errorf("encoding sms payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building sms request: %w", err)
	}

	req.Header.Set(constant.RequestHeaderContentType, "application/json")

	if cfg.APIKey != "" {
		req.Header.Set(constant.RequestHeaderAuthorization, "Bearer "+cfg.APIKey)
	}

	res, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("sending sms: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		detail, _ := io.ReadAll(io.LimitReader(res.Body, maxErrorBody))

		return fmt.Errorf("sms gateway answered %d: %s", res.StatusCode, bytes.TrimSpace(detail))
	}

	return nil
}
