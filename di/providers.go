package di

import (
	"net/http"
	"time"

	"frontdesk/config"
	"frontdesk/infras/kafka"
	"frontdesk/infras/otel"
	notificationService "frontdesk/internal/domains/notification/service"
	userService "frontdesk/internal/domains/user/service"
	"frontdesk/internal/handlers/event"
	"frontdesk/jobs"
	httpTransport "frontdesk/transport/http"
)

const defaultNotificationTimeout = 10 * time.Second

// App is everything cmd/app starts and stops.
type App struct {
	HTTP       *httpTransport.HTTP
	Scheduler  *jobs.Scheduler
	Dispatcher notificationService.Dispatcher
	User       userService.User
	Kafka      kafka.Client
	Otel       otel.Otel
}

// Notifier is everything cmd/notifier starts and stops.
type Notifier struct {
	Consumer event.Notification
	Kafka    kafka.Client
	Otel     otel.Otel
}

func provideHTTPClient(cfg *config.Config) *http.Client {
	timeout := time.Duration(cfg.Notification.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = defaultNotificationTimeout
	}

	return &http.Client{Timeout: timeout}
}
