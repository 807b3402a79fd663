package smtp

//go:generate go run go.uber.org/mock/mockgen -source=./smtp.go -destination=./mocks/smtp_mock.go -package=mocks

import (
	"bytes"
	"context"
	"crypto/rand"
	"crypto/tls"
	"encoding/hex"
	"errors"
	"fmt"
	"mime/quotedprintable"
	"net"
	"net/smtp"
	"strings"

	"frontdesk/config"
	"frontdesk/infras/otel"
	"frontdesk/shared/constant"

	"github.com/rs/zerolog/log"
)

const otelAttrRecipient = "recipient"

var ErrNotConfigured = errors.New("smtp host not configured")

type Mailer interface {
	Send(ctx context.Context, to, subject, html, text string) error
}

type mailerImpl struct {
	config *config.Config
	otel   otel.Otel
}

func New(config *config.Config, otel otel.Otel) Mailer {
	return &mailerImpl{
		config: config,
		otel:   otel,
	}
}

// Send delivers a multipart/alternative message. The context deadline bounds
// the whole SMTP conversation.
func (m *mailerImpl) Send(ctx context.Context, to, subject, html, text string) (err error) {
	ctx, scope := m.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".smtp.Send")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(otelAttrRecipient, to)

	cfg := m.config.Notification.SMTP
	if cfg.Host == "" {
		return ErrNotConfigured
	}

	var dialer net.Dialer

	conn, err := dialer.DialContext(ctx, "tcp", net.JoinHostPort(cfg.Host, cfg.Port))
	if err != nil {
		return fmt.Errorf("dialing smtp server: %w", err)
	}

	if deadline, ok := ctx.Deadline(); ok {
		if err = conn.SetDeadline(deadline); err != nil {
			_ = conn.Close()

			return fmt.Errorf("setting smtp deadline: %w", err)
		}
	}

	client, err := smtp.NewClient(conn, cfg.Host)
	if err != nil {
		_ = conn.Close()

		return fmt.Errorf("opening smtp session: %w", err)
	}

	defer func() {
		if cerr := client.Close(); cerr != nil && !errors.Is(cerr, net.ErrClosed) {
			log.Debug().Err(cerr).Msg("failed to close smtp session")
		}
	}()

	if ok, _ := client.Extension("STARTTLS"); ok {
		if err = client.StartTLS(&tls.Config{ServerName: cfg.Host, MinVersion: tls.VersionTLS12}); err != nil {
			return fmt.Errorf("starting tls: %w", err)
		}
	}

	if cfg.Username != "" {
		if err = client.Auth(smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)); err != nil {
			return fmt.Errorf("authenticating: %w", err)
		}
	}

	from := cfg.From
	if from == "" {
		from = cfg.Username
	}

	if err = client.Mail(from); err != nil {
		return fmt.Errorf("setting sender: %w", err)
	}

	if err = client.Rcpt(to); err != nil {
		return fmt.Errorf("setting recipient: %w", err)
	}

	body, err := Compose(from, to, subject, html, text)
	if err != nil {
		return err
	}

	writer, err := client.Data()
	if err != nil {
		return fmt.Errorf("opening data stream: %w", err)
	}

	if _, err = writer.Write(body); err != nil {
		_ = writer.Close()

		return fmt.Errorf("writing message: %w", err)
	}

	if err = writer.Close(); err != nil {
		return fmt.Errorf("closing data stream: %w", err)
	}

	return client.Quit() //nolint:wrapcheck
}

// Compose builds the RFC 5322 message with a plain text and an HTML part.
func Compose(from, to, subject, html, text string) ([]byte, error) {
	raw := make([]byte, 12)
	if _, err := rand.Read(raw); err != nil {
		return nil, fmt.Errorf("generating boundary: %w", err)
	}

	boundary := "frontdesk-" + hex.EncodeToString(raw)

	var buf bytes.Buffer

	fmt.Fprintf(&buf, "From: %s\r\n", from)
	fmt.Fprintf(&buf, "To: %s\r\n", to)
	fmt.Fprintf(&buf, "Subject: %s\r\n", strings.ReplaceAll(subject, "\n", " "))
	buf.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&buf, "Content-Type: multipart/alternative; boundary=%q\r\n\r\n", boundary)

	for _, part := range []struct{ contentType, body string }{
		{"text/plain", text},
		{"text/html", html},
	} {
		if part.body == "" {
			continue
		}

		fmt.Fprintf(&buf, "--%s\r\n", boundary)
		fmt.Fprintf(&buf, "Content-Type: %s; charset=UTF-8\r\n", part.contentType)
		buf.WriteString("Content-Transfer-Encoding: quoted-printable\r\n\r\n")

		qp := quotedprintable.NewWriter(&buf)
		if _, err := qp.Write([]byte(part.body)); err != nil {
			return nil, fmt.Errorf("encoding body: %w", err)
		}

		if err := qp.Close(); err != nil {
			return nil, fmt.Errorf("encoding body: %w", err)
		}

		buf.WriteString("\r\n")
	}

	fmt.Fprintf(&buf, "--%s--\r\n", boundary)

	return buf.Bytes(), nil
}
