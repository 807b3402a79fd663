package router

import (
	"frontdesk/internal/handlers/accessrequest"
	"frontdesk/internal/handlers/auth"
	"frontdesk/internal/handlers/booking"
	"frontdesk/internal/handlers/ledger"
	"frontdesk/internal/handlers/room"
	"frontdesk/internal/handlers/user"
	"frontdesk/transport/http/middleware"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth          auth.Handler
	User          user.Handler
	Room          room.Handler
	Booking       booking.Handler
	Ledger        ledger.Handler
	AccessRequest accessrequest.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	authRole       middleware.AuthRole
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Use(r.authRole.APIKey, r.authRole.Auth, r.authRole.RBAC)

		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)

		routerGroup.Route("/bookings", func(bookingGroup chi.Router) {
			r.DomainHandlers.Booking.Router(bookingGroup)
			r.DomainHandlers.Ledger.BookingRouter(bookingGroup)
		})

		r.DomainHandlers.Ledger.PaymentRouter(routerGroup)
		r.DomainHandlers.AccessRequest.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, authRole middleware.AuthRole) Router {
	return Router{
		DomainHandlers: domainHandlers,
		authRole:       authRole,
	}
}
