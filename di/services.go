package di

import (
	"context"
	"fmt"
	"hotelier/config"
	"hotelier/infras/otel"
	customerRepository "hotelier/internal/domains/customer/repository"
	customerService "hotelier/internal/domains/customer/service"
	hotelRepository "hotelier/internal/domains/hotel/repository"
	hotelService "hotelier/internal/domains/hotel/service"
	reservationRepository "hotelier/internal/domains/reservation/repository"
	reservationService "hotelier/internal/domains/reservation/service"
)

// Stores are the record stores behind the services.
type Stores struct {
	Hotel       hotelRepository.Hotel
	Customer    customerRepository.Customer
	Reservation reservationRepository.Reservation
}

// Init creates every missing store document.
func (s *Stores) Init(ctx context.Context) error {
	initializers := []func(context.Context) error{
		s.Hotel.Init,
		s.Customer.Init,
		s.Reservation.Init,
	}

	for _, initialize := range initializers {
		if err := initialize(ctx); err != nil {
			return fmt.Errorf("failed to initialize stores: %w", err)
		}
	}

	return nil
}

type Services struct {
	Config      *config.Config
	Otel        otel.Otel
	Stores      Stores
	Hotel       hotelService.Hotel
	Customer    customerService.Customer
	Reservation reservationService.Reservation
}
