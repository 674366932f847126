package main

import (
	"context"
	customerDto "hotelier/internal/domains/customer/model/dto"
	hotelDto "hotelier/internal/domains/hotel/model/dto"
	reservationDto "hotelier/internal/domains/reservation/model/dto"
	"hotelier/shared"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

type demoStep struct {
	Step   string `json:"step"             yaml:"step"`
	Result any    `json:"result,omitempty" yaml:"result,omitempty"`
	Error  string `json:"error,omitempty"  yaml:"error,omitempty"`
}

type demoRun struct {
	steps []demoStep
}

// record keeps the outcome of one step. A failed step is logged and the run goes on.
func (r *demoRun) record(step string, result any, err error) bool {
	if err != nil {
		log.Error().Err(err).Str("step", step).Msg("demo step failed")
		r.steps = append(r.steps, demoStep{Step: step, Error: err.Error()})

		return false
	}

	r.steps = append(r.steps, demoStep{Step: step, Result: result})

	return true
}

func (a *app) demoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Create, read, modify, cancel and delete one of each record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withScope(cmd, func(ctx context.Context) error {
				return a.render(a.runDemo(ctx).steps)
			})
		},
	}
}

func (a *app) runDemo(ctx context.Context) *demoRun {
	run := &demoRun{}
	svc := a.services

	run.record("init stores", nil, svc.Stores.Init(ctx))

	hotel, err := svc.Hotel.Create(ctx, hotelDto.CreateHotelRequest{
		Name:       "Grand Plaza",
		Location:   "New York",
		TotalRooms: 10,
	})
	if !run.record("create hotel", hotel, err) {
		return run
	}

	info, err := svc.Hotel.Get(ctx, hotel.ID)
	run.record("get hotel", info, err)

	customer, err := svc.Customer.Create(ctx, customerDto.CreateCustomerRequest{
		Name:  "John Doe",
		Email: "john@example.com",
	})
	customerCreated := run.record("create customer", customer, err)

	if customerCreated {
		reservation, err := svc.Reservation.Create(ctx, reservationDto.CreateReservationRequest{
			CustomerID: customer.ID,
			HotelID:    hotel.ID,
			CheckIn:    time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
			CheckOut:   time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC),
		})
		if run.record("create reservation", reservation, err) {
			err = svc.Reservation.Cancel(ctx, reservation.ID)
			if err == nil {
				reservation, err = svc.Reservation.Get(ctx, reservation.ID)
			}

			run.record("cancel reservation", reservation, err)
		}
	}

	err = svc.Hotel.Update(ctx, hotelDto.UpdateHotelRequest{
		Name:       shared.Ptr("Grand Plaza - Renovado"),
		TotalRooms: shared.Ptr(12),
	}, hotel.ID)
	if err == nil {
		info, err = svc.Hotel.Get(ctx, hotel.ID)
	}

	run.record("update hotel", info, err)
	run.record("delete hotel", statusResponse{Message: "deleted"}, svc.Hotel.Delete(ctx, hotel.ID))

	if customerCreated {
		run.record("delete customer", statusResponse{Message: "deleted"}, svc.Customer.Delete(ctx, customer.ID))
	}

	return run
}
