package main

import (
	"context"
	"fmt"
	"hotelier/internal/domains/hotel/model/dto"

	"github.com/spf13/cobra"
)

func (a *app) hotelCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hotel",
		Short: "Manage hotels and their room inventory",
	}

	cmd.AddCommand(
		a.hotelCreateCmd(),
		a.hotelGetCmd(),
		a.hotelListCmd(),
		a.hotelUpdateCmd(),
		a.hotelDeleteCmd(),
		a.hotelReserveCmd(),
		a.hotelReleaseCmd(),
	)

	return cmd
}

func (a *app) hotelCreateCmd() *cobra.Command {
	var req dto.CreateHotelRequest

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a hotel with no booked rooms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withScope(cmd, func(ctx context.Context) error {
				res, err := a.services.Hotel.Create(ctx, req)
				if err != nil {
					return err
				}

				return a.render(res)
			})
		},
	}

	cmd.Flags().StringVar(&req.Name, "name", "", "hotel name")
	cmd.Flags().StringVar(&req.Location, "location", "", "hotel location")
	cmd.Flags().IntVar(&req.TotalRooms, "total-rooms", 0, "number of rooms")

	return cmd
}

func (a *app) hotelGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <hotel-id>",
		Short: "Show a hotel",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			return a.withScope(cmd, func(ctx context.Context) error {
				res, err := a.services.Hotel.Get(ctx, id)
				if err != nil {
					return err
				}

				return a.render(res)
			})
		},
	}
}

func (a *app) hotelListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every hotel",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withScope(cmd, func(ctx context.Context) error {
				res, err := a.services.Hotel.GetAll(ctx)
				if err != nil {
					return err
				}

				return a.render(res)
			})
		},
	}
}

func (a *app) hotelUpdateCmd() *cobra.Command {
	var (
		name, location string
		totalRooms     int
	)

	cmd := &cobra.Command{
		Use:   "update <hotel-id>",
		Short: "Change the fields given as flags",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			var req dto.UpdateHotelRequest

			if cmd.Flags().Changed("name") {
				req.Name = &name
			}

			if cmd.Flags().Changed("location") {
				req.Location = &location
			}

			if cmd.Flags().Changed("total-rooms") {
				req.TotalRooms = &totalRooms
			}

			return a.withScope(cmd, func(ctx context.Context) error {
				if err := a.services.Hotel.Update(ctx, req, id); err != nil {
					return err
				}

				res, err := a.services.Hotel.Get(ctx, id)
				if err != nil {
					return err
				}

				return a.render(res)
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new hotel name")
	cmd.Flags().StringVar(&location, "location", "", "new hotel location")
	cmd.Flags().IntVar(&totalRooms, "total-rooms", 0, "new number of rooms")

	return cmd
}

func (a *app) hotelDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <hotel-id>",
		Short: "Delete a hotel",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			return a.withScope(cmd, func(ctx context.Context) error {
				if err := a.services.Hotel.Delete(ctx, id); err != nil {
					return err
				}

				return a.render(statusResponse{Message: fmt.Sprintf("hotel %d deleted", id)})
			})
		},
	}
}

func (a *app) hotelReserveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reserve <hotel-id>",
		Short: "Book one room without a reservation record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.hotelRoomAction(cmd, args[0], a.services.Hotel.ReserveRoom)
		},
	}
}

func (a *app) hotelReleaseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "release <hotel-id>",
		Short: "Give one booked room back",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.hotelRoomAction(cmd, args[0], a.services.Hotel.CancelRoomReservation)
		},
	}
}

func (a *app) hotelRoomAction(cmd *cobra.Command, arg string, action func(ctx context.Context, id int) error) error {
	id, err := parseID(arg)
	if err != nil {
		return err
	}

	return a.withScope(cmd, func(ctx context.Context) error {
		if err := action(ctx, id); err != nil {
			return err
		}

		res, err := a.services.Hotel.Get(ctx, id)
		if err != nil {
			return err
		}

		return a.render(res)
	})
}
