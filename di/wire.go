//go:build wireinject
// +build wireinject

package di

import (
	"atrium/config"
	"atrium/infras/otel"
	"atrium/infras/postgres"
	"atrium/internal/seeder"
	"atrium/transport/http"
	"atrium/transport/http/middleware"
	"atrium/transport/http/router"

	adminRepository "atrium/internal/domains/admin/repository"
	adminService "atrium/internal/domains/admin/service"
	bookingRepository "atrium/internal/domains/booking/repository"
	bookingService "atrium/internal/domains/booking/service"
	contactRepository "atrium/internal/domains/contact/repository"
	contactService "atrium/internal/domains/contact/service"
	roomRepository "atrium/internal/domains/room/repository"
	roomService "atrium/internal/domains/room/service"

	bookingHandler "atrium/internal/handlers/booking"
	contactHandler "atrium/internal/handlers/contact"
	roomHandler "atrium/internal/handlers/room"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var contactDomain = wire.NewSet(
	contactRepository.New,
	contactService.New,
)

var adminDomain = wire.NewSet(
	adminRepository.New,
	adminService.New,
)

var domains = wire.NewSet(
	roomDomain,
	bookingDomain,
	contactDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	roomHandler.New,
	bookingHandler.New,
	contactHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}

func InitializeSeeder() *seeder.Seeder {
	wire.Build(
		configurations,
		infrastructures,
		roomDomain,
		adminDomain,
		seeder.New,
	)

	return &seeder.Seeder{}
}
