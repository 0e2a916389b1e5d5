package router

import (
	"atrium/internal/handlers/booking"
	"atrium/internal/handlers/contact"
	"atrium/internal/handlers/room"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Room    room.Handler
	Booking booking.Handler
	Contact contact.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	r.DomainHandlers.Room.Router(router)
	r.DomainHandlers.Booking.Router(router)
	r.DomainHandlers.Contact.Router(router)
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
