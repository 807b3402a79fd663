package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"frontdesk/config"
	"frontdesk/infras/otel"
	"frontdesk/infras/sms"
	"frontdesk/infras/smtp"
	"frontdesk/internal/domains/notification/model"
	"frontdesk/internal/domains/notification/renderer"
	"frontdesk/shared/constant"

	"github.com/rs/zerolog/log"
)

const defaultTimeout = 10 * time.Second

var ErrUnknownChannel = errors.New("unknown notification channel")

// Notification renders and sends a single message through its channel.
type Notification interface {
	Deliver(ctx context.Context, msg model.Message) error
}

type serviceImpl struct {
	renderer renderer.Renderer
	mailer   smtp.Mailer
	sender   sms.Sender
	cfg      *config.Config
	otel     otel.Otel
}

func New(renderer renderer.Renderer, mailer smtp.Mailer, sender sms.Sender, cfg *config.Config, otel otel.Otel) Notification {
	return &serviceImpl{
		renderer: renderer,
		mailer:   mailer,
		sender:   sender,
		cfg:      cfg,
		otel:     otel,
	}
}

// Deliver is bounded by the configured notification timeout. Failures are
// logged with enough context to resend by hand and then returned.
func (s *serviceImpl) Deliver(ctx context.Context, msg model.Message) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Deliver")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	defer func() {
		if err != nil {
			log.Error().Err(err).
				Str("template", string(msg.Template)).
				Str("channel", string(msg.Channel)).
				Str("recipient", msg.Recipient).
				Msg("failed to deliver notification")
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, s.timeout())
	defer cancel()

	rendered, err := s.renderer.Render(msg.Template, msg.Data)
	if err != nil {
		return fmt.Errorf("failed to render notification: %w", err)
	}

	switch msg.Channel {
	case model.ChannelEmail:
		err = s.mailer.Send(ctx, msg.Recipient, rendered.Subject, rendered.HTML, rendered.Text)
	case model.ChannelSMS:
		err = s.sender.Send(ctx, msg.Recipient, rendered.Subject+"\n"+rendered.Text)
	default:
		err = fmt.Errorf("%w: %s", ErrUnknownChannel, msg.Channel)
	}

	if err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}

	log.Debug().
		Str("template", string(msg.Template)).
		Str("channel", string(msg.Channel)).
		Str("recipient", msg.Recipient).
		Msg("notification delivered")

	return nil
}

func (s *serviceImpl) timeout() time.Duration {
	if s.cfg.Notification.TimeoutSeconds <= 0 {
		return defaultTimeout
	}

	return time.Duration(s.cfg.Notification.TimeoutSeconds) * time.Second
}
