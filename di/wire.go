//go:build wireinject
// +build wireinject

package di

import (
	"frontdesk/config"
	"frontdesk/infras/jwt"
	"frontdesk/infras/kafka"
	"frontdesk/infras/otel"
	"frontdesk/infras/redis"
	"frontdesk/infras/sms"
	"frontdesk/infras/smtp"
	"frontdesk/jobs"
	"frontdesk/permissions"
	"frontdesk/shared/cache"
	"frontdesk/shared/keylock"
	"frontdesk/shared/snapshot"
	"frontdesk/transport/http"
	"frontdesk/transport/http/middleware"
	"frontdesk/transport/http/router"

	accessRequestRepository "frontdesk/internal/domains/accessrequest/repository"
	accessRequestService "frontdesk/internal/domains/accessrequest/service"
	authService "frontdesk/internal/domains/auth/service"
	bookingRepository "frontdesk/internal/domains/booking/repository"
	bookingService "frontdesk/internal/domains/booking/service"
	ledgerRepository "frontdesk/internal/domains/ledger/repository"
	ledgerService "frontdesk/internal/domains/ledger/service"
	"frontdesk/internal/domains/notification/renderer"
	notificationService "frontdesk/internal/domains/notification/service"
	roomRepository "frontdesk/internal/domains/room/repository"
	roomService "frontdesk/internal/domains/room/service"
	userRepository "frontdesk/internal/domains/user/repository"
	userService "frontdesk/internal/domains/user/service"

	accessRequestHandler "frontdesk/internal/handlers/accessrequest"
	authHandler "frontdesk/internal/handlers/auth"
	bookingHandler "frontdesk/internal/handlers/booking"
	"frontdesk/internal/handlers/event"
	ledgerHandler "frontdesk/internal/handlers/ledger"
	roomHandler "frontdesk/internal/handlers/room"
	userHandler "frontdesk/internal/handlers/user"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	smtp.New,
	sms.New,
	provideHTTPClient,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	snapshot.New,
	keylock.New,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
	authService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomRepository.NewRoomType,
	roomService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
	ledgerRepository.NewCharge,
	ledgerRepository.NewInvoice,
	ledgerRepository.NewPayment,
	ledgerService.New,
)

var notificationDomain = wire.NewSet(
	renderer.New,
	notificationService.New,
	notificationService.ProvideDispatcher,
)

var accessRequestDomain = wire.NewSet(
	accessRequestRepository.New,
	accessRequestRepository.NewReply,
	accessRequestService.New,
)

var domains = wire.NewSet(
	userDomain,
	roomDomain,
	bookingDomain,
	notificationDomain,
	accessRequestDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	roomHandler.New,
	bookingHandler.New,
	ledgerHandler.New,
	accessRequestHandler.New,
	router.New,
)

func InitializeApp() (*App, error) {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
		jobs.New,
		wire.Struct(new(App), "*"),
	)

	return &App{}, nil
}

func InitializeNotifier() (*Notifier, error) {
	wire.Build(
		config.Get,
		otel.New,
		kafka.New,
		smtp.New,
		sms.New,
		provideHTTPClient,
		renderer.New,
		notificationService.New,
		event.NewNotification,
		wire.Struct(new(Notifier), "*"),
	)

	return &Notifier{}, nil
}
