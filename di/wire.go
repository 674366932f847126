//go:build wireinject
// +build wireinject

package di

import (
	"hotelier/config"
	"hotelier/infras/jsonfile"
	"hotelier/infras/otel"

	customerRepository "hotelier/internal/domains/customer/repository"
	customerService "hotelier/internal/domains/customer/service"
	hotelRepository "hotelier/internal/domains/hotel/repository"
	hotelService "hotelier/internal/domains/hotel/service"
	reservationRepository "hotelier/internal/domains/reservation/repository"
	reservationService "hotelier/internal/domains/reservation/service"

	"github.com/google/wire"
)

var infrastructures = wire.NewSet(
	jsonfile.New,
	otel.New,
)

var hotelDomain = wire.NewSet(
	hotelRepository.New,
	hotelService.New,
)

var customerDomain = wire.NewSet(
	customerRepository.New,
	customerService.New,
)

var reservationDomain = wire.NewSet(
	reservationRepository.New,
	reservationService.New,
)

var domains = wire.NewSet(
	hotelDomain,
	customerDomain,
	reservationDomain,
)

func InitializeServices(cfg *config.Config) *Services {
	wire.Build(
		infrastructures,
		domains,
		wire.Struct(new(Stores), "*"),
		wire.Struct(new(Services), "*"),
	)

	return &Services{}
}
