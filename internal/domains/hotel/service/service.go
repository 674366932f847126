package service

import (
	"context"
	"fmt"
	"hotelier/infras/otel"
	"hotelier/internal/domains/hotel/model"
	"hotelier/internal/domains/hotel/model/dto"
	"hotelier/internal/domains/hotel/repository"
	"hotelier/shared/constant"
	"hotelier/shared/failure"
	"hotelier/shared/validator"

	"github.com/rs/zerolog/log"
)

const (
	otelSpanPrefix = constant.OtelServiceScopeName + "." + model.EntityName
)

type Hotel interface {
	Create(ctx context.Context, req dto.CreateHotelRequest) (dto.HotelResponse, error)
	Get(ctx context.Context, id int) (dto.HotelResponse, error)
	GetAll(ctx context.Context) (dto.GetHotelsResponse, error)
	Update(ctx context.Context, req dto.UpdateHotelRequest, id int) error
	Delete(ctx context.Context, id int) error
	ReserveRoom(ctx context.Context, id int) error
	CancelRoomReservation(ctx context.Context, id int) error
}

type serviceImpl struct {
	repo repository.Hotel
	otel otel.Otel
}

func New(repo repository.Hotel, otel otel.Otel) Hotel {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func notFound(id int) error {
	return failure.NotFound(fmt.Sprintf("hotel %d not found", id))
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateHotelRequest) (res dto.HotelResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, otelSpanPrefix+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	hotel, err := s.repo.Insert(ctx, req.ToModel())
	if err != nil {
		log.Error().Err(err).Msg("failed to create hotel")

		return res, fmt.Errorf("failed to create hotel: %w", err)
	}

	log.Info().Int(model.FieldID, hotel.ID).Str(model.FieldName, hotel.Name).Msg("hotel created")

	res.FromModel(hotel)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int) (res dto.HotelResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, otelSpanPrefix+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	hotel, found, err := s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get hotel")

		return res, fmt.Errorf("failed to get hotel: %w", err)
	}

	if !found {
		return res, notFound(id)
	}

	res.FromModel(hotel)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetHotelsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, otelSpanPrefix+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	hotels, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get hotels")

		return res, fmt.Errorf("failed to get hotels: %w", err)
	}

	res.FromModels(hotels)

	return res, nil
}

// Update applies a partial update. Shrinking total_rooms below the booked
// rooms rejects the whole update and nothing is written.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateHotelRequest, id int) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, otelSpanPrefix+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return err
	}

	if req.IsEmpty() {
		_, found, err := s.repo.Get(ctx, id)
		if err != nil {
			log.Error().Err(err).Msg("failed to get hotel")

			return fmt.Errorf("failed to get hotel: %w", err)
		}

		if !found {
			return notFound(id)
		}

		return nil
	}

	return s.modify(ctx, id, "update hotel", func(current model.Hotel) (model.Hotel, error) {
		if req.TotalRooms != nil && !current.CanResize(*req.TotalRooms) {
			return current, failure.Conflict(fmt.Sprintf(
				"total_rooms %d is less than the %d booked rooms of hotel %d", *req.TotalRooms, current.BookedRooms, id))
		}

		return req.Apply(current), nil
	})
}

// Delete removes the hotel. Reservations that reference it are left as they are.
func (s *serviceImpl) Delete(ctx context.Context, id int) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, otelSpanPrefix+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	found, err := s.repo.Delete(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to delete hotel")

		return fmt.Errorf("failed to delete hotel: %w", err)
	}

	if !found {
		return notFound(id)
	}

	log.Info().Int(model.FieldID, id).Msg("hotel deleted")

	return nil
}

func (s *serviceImpl) ReserveRoom(ctx context.Context, id int) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, otelSpanPrefix+".ReserveRoom")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.modify(ctx, id, "reserve room", func(current model.Hotel) (model.Hotel, error) {
		if !current.CanReserve() {
			return current, failure.Conflict(fmt.Sprintf("hotel %d has no available rooms", id))
		}

		current.Reserve()

		return current, nil
	})
}

func (s *serviceImpl) CancelRoomReservation(ctx context.Context, id int) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, otelSpanPrefix+".CancelRoomReservation")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.modify(ctx, id, "cancel room reservation", func(current model.Hotel) (model.Hotel, error) {
		if !current.CanRelease() {
			return current, failure.Conflict(fmt.Sprintf("hotel %d has no booked rooms", id))
		}

		current.Release()

		return current, nil
	})
}

func (s *serviceImpl) modify(ctx context.Context, id int, action string, mutate func(model.Hotel) (model.Hotel, error)) error {
	hotel, found, err := s.repo.Modify(ctx, id, mutate)
	if err != nil {
		if failure.IsFailure(err) {
			log.Warn().Err(err).Int(model.FieldID, id).Msgf("%s rejected", action)

			return err
		}

		log.Error().Err(err).Int(model.FieldID, id).Msgf("failed to %s", action)

		return fmt.Errorf("failed to %s: %w", action, err)
	}

	if !found {
		return notFound(id)
	}

	log.Info().
		Int(model.FieldID, id).
		Int(model.FieldTotalRooms, hotel.TotalRooms).
		Int(model.FieldBookedRooms, hotel.BookedRooms).
		Msgf("%s succeeded", action)

	return nil
}
