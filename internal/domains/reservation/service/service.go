package service

import (
	"context"
	"fmt"
	"hotelier/infras/otel"
	customerModel "hotelier/internal/domains/customer/model"
	customerRepo "hotelier/internal/domains/customer/repository"
	hotelModel "hotelier/internal/domains/hotel/model"
	hotelRepo "hotelier/internal/domains/hotel/repository"
	hotelService "hotelier/internal/domains/hotel/service"
	"hotelier/internal/domains/reservation/model"
	"hotelier/internal/domains/reservation/model/dto"
	"hotelier/internal/domains/reservation/repository"
	"hotelier/shared/constant"
	"hotelier/shared/failure"
	"hotelier/shared/validator"
	"strings"

	"github.com/rs/zerolog/log"
)

const (
	otelSpanPrefix = constant.OtelServiceScopeName + "." + model.EntityName
)

type Reservation interface {
	Create(ctx context.Context, req dto.CreateReservationRequest) (dto.ReservationResponse, error)
	Get(ctx context.Context, id int) (dto.ReservationResponse, error)
	GetAll(ctx context.Context) (dto.GetReservationsResponse, error)
	Cancel(ctx context.Context, id int) error
}

type serviceImpl struct {
	repo         repository.Reservation
	hotelRepo    hotelRepo.Hotel
	customerRepo customerRepo.Customer
	hotelService hotelService.Hotel
	otel         otel.Otel
}

func New(
	repo repository.Reservation,
	hotelRepo hotelRepo.Hotel,
	customerRepo customerRepo.Customer,
	hotelService hotelService.Hotel,
	otel otel.Otel,
) Reservation {
	return &serviceImpl{
		repo:         repo,
		hotelRepo:    hotelRepo,
		customerRepo: customerRepo,
		hotelService: hotelService,
		otel:         otel,
	}
}

func notFound(id int) error {
	return failure.NotFound(fmt.Sprintf("reservation %d not found", id))
}

// Create books one room of the hotel and then writes the reservation. If the
// write fails the room is released again. A crash between the two writes
// still leaves the room booked without a reservation.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateReservationRequest) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, otelSpanPrefix+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	if err = s.checkReferences(ctx, req.CustomerID, req.HotelID); err != nil {
		return res, err
	}

	var reservation model.Reservation

	err = runSaga(ctx,
		sagaStep{
			name: stepReserveRoom,
			execute: func(ctx context.Context) error {
				return s.hotelService.ReserveRoom(ctx, req.HotelID)
			},
			compensate: func(ctx context.Context) error {
				return s.hotelService.CancelRoomReservation(ctx, req.HotelID)
			},
			compensateName: stepReleaseRoom,
		},
		sagaStep{
			name: stepWriteReservation,
			execute: func(ctx context.Context) error {
				var err error

				reservation, err = s.repo.Insert(ctx, req.ToModel())
				if err != nil {
					log.Error().Err(err).Msg("failed to create reservation")

					return fmt.Errorf("failed to create reservation: %w", err)
				}

				return nil
			},
		},
	)
	if err != nil {
		return res, err
	}

	scope.SetAttribute(constant.OtelEntityIDAttributeKey, reservation.ID)

	log.Info().
		Int(model.FieldID, reservation.ID).
		Int(model.FieldCustomerID, reservation.CustomerID).
		Int(model.FieldHotelID, reservation.HotelID).
		Msg("reservation created")

	res.FromModel(reservation)

	return res, nil
}

// checkReferences resolves the customer and the hotel together so that a
// request missing both reports both.
func (s *serviceImpl) checkReferences(ctx context.Context, customerID, hotelID int) error {
	_, customerFound, err := s.customerRepo.Get(ctx, customerID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get customer")

		return fmt.Errorf("failed to get customer: %w", err)
	}

	_, hotelFound, err := s.hotelRepo.Get(ctx, hotelID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get hotel")

		return fmt.Errorf("failed to get hotel: %w", err)
	}

	var missing []string

	if !customerFound {
		missing = append(missing, fmt.Sprintf("%s %d not found", customerModel.EntityName, customerID))
	}

	if !hotelFound {
		missing = append(missing, fmt.Sprintf("%s %d not found", hotelModel.EntityName, hotelID))
	}

	if len(missing) > 0 {
		log.Warn().
			Int(model.FieldCustomerID, customerID).
			Int(model.FieldHotelID, hotelID).
			Bool("customer_found", customerFound).
			Bool("hotel_found", hotelFound).
			Msg("reservation rejected")

		return failure.NotFound(strings.Join(missing, "; "))
	}

	return nil
}

func (s *serviceImpl) Get(ctx context.Context, id int) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, otelSpanPrefix+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	reservation, found, err := s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return res, fmt.Errorf("failed to get reservation: %w", err)
	}

	if !found {
		return res, notFound(id)
	}

	res.FromModel(reservation)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetReservationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, otelSpanPrefix+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	reservations, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservations")

		return res, fmt.Errorf("failed to get reservations: %w", err)
	}

	res.FromModels(reservations)

	return res, nil
}

// Cancel deactivates the reservation and then releases its room. Cancelling
// twice is a conflict. Once the reservation is stored as cancelled the call
// succeeds, even when the room cannot be released.
func (s *serviceImpl) Cancel(ctx context.Context, id int) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, otelSpanPrefix+".Cancel")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	reservation, found, err := s.repo.Modify(ctx, id, func(current model.Reservation) (model.Reservation, error) {
		if !current.Deactivate() {
			return current, failure.Conflict(fmt.Sprintf("reservation %d is already cancelled", id))
		}

		return current, nil
	})
	if err != nil {
		if failure.IsFailure(err) {
			log.Warn().Err(err).Int(model.FieldID, id).Msg("cancel reservation rejected")

			return err
		}

		log.Error().Err(err).Int(model.FieldID, id).Msg("failed to cancel reservation")

		return fmt.Errorf("failed to cancel reservation: %w", err)
	}

	if !found {
		return notFound(id)
	}

	log.Info().Int(model.FieldID, id).Int(model.FieldHotelID, reservation.HotelID).Msg("reservation cancelled")

	if releaseErr := s.hotelService.CancelRoomReservation(ctx, reservation.HotelID); releaseErr != nil {
		event := log.Warn()
		if !failure.IsFailure(releaseErr) {
			event = log.Error()
			scope.TraceError(releaseErr)
		}

		event.Err(releaseErr).
			Int(model.FieldID, id).
			Int(model.FieldHotelID, reservation.HotelID).
			Msg("reservation cancelled, room not released")
	}

	return nil
}
