package main

import (
	"context"
	"fmt"
	"hotelier/internal/domains/reservation/model/dto"
	"hotelier/shared/failure"
	"hotelier/shared/timezone"
	"time"

	"github.com/spf13/cobra"
)

func (a *app) reservationCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reservation",
		Short: "Book and cancel rooms",
	}

	cmd.AddCommand(
		a.reservationCreateCmd(),
		a.reservationGetCmd(),
		a.reservationListCmd(),
		a.reservationCancelCmd(),
	)

	return cmd
}

func parseDateFlag(name, value string) (time.Time, error) {
	date, err := timezone.ParseDate(value)
	if err != nil {
		return time.Time{}, failure.BadRequestFromString(fmt.Sprintf("%s must be a date in the format YYYY-MM-DD, got %q", name, value))
	}

	return date, nil
}

func (a *app) reservationCreateCmd() *cobra.Command {
	var (
		customerID, hotelID int
		checkIn, checkOut   string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Book a room of a hotel for a customer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req := dto.CreateReservationRequest{
				CustomerID: customerID,
				HotelID:    hotelID,
			}

			var err error

			if req.CheckIn, err = parseDateFlag("check-in", checkIn); err != nil {
				return err
			}

			if req.CheckOut, err = parseDateFlag("check-out", checkOut); err != nil {
				return err
			}

			return a.withScope(cmd, func(ctx context.Context) error {
				res, err := a.services.Reservation.Create(ctx, req)
				if err != nil {
					return err
				}

				return a.render(res)
			})
		},
	}

	cmd.Flags().IntVar(&customerID, "customer-id", 0, "customer making the reservation")
	cmd.Flags().IntVar(&hotelID, "hotel-id", 0, "hotel to book a room in")
	cmd.Flags().StringVar(&checkIn, "check-in", "", "check-in date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&checkOut, "check-out", "", "check-out date (YYYY-MM-DD)")

	return cmd
}

func (a *app) reservationGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <reservation-id>",
		Short: "Show a reservation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			return a.withScope(cmd, func(ctx context.Context) error {
				res, err := a.services.Reservation.Get(ctx, id)
				if err != nil {
					return err
				}

				return a.render(res)
			})
		},
	}
}

func (a *app) reservationListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every reservation, cancelled ones included",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withScope(cmd, func(ctx context.Context) error {
				res, err := a.services.Reservation.GetAll(ctx)
				if err != nil {
					return err
				}

				return a.render(res)
			})
		},
	}
}

func (a *app) reservationCancelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cancel <reservation-id>",
		Short: "Cancel a reservation and release its room",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			return a.withScope(cmd, func(ctx context.Context) error {
				if err := a.services.Reservation.Cancel(ctx, id); err != nil {
					return err
				}

				res, err := a.services.Reservation.Get(ctx, id)
				if err != nil {
					return err
				}

				return a.render(res)
			})
		},
	}
}
