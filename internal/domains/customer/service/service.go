package service

import (
	"context"
	"fmt"
	"hotelier/infras/otel"
	"hotelier/internal/domains/customer/model"
	"hotelier/internal/domains/customer/model/dto"
	"hotelier/internal/domains/customer/repository"
	"hotelier/shared/constant"
	"hotelier/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	otelSpanPrefix = constant.OtelServiceScopeName + "." + model.EntityName
)

type Customer interface {
	Create(ctx context.Context, req dto.CreateCustomerRequest) (dto.CustomerResponse, error)
	Get(ctx context.Context, id int) (dto.CustomerResponse, error)
	GetAll(ctx context.Context) (dto.GetCustomersResponse, error)
	Update(ctx context.Context, req dto.UpdateCustomerRequest, id int) error
	Delete(ctx context.Context, id int) error
}

type serviceImpl struct {
	repo repository.Customer
	otel otel.Otel
}

func New(repo repository.Customer, otel otel.Otel) Customer {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func notFound(id int) error {
	return failure.NotFound(fmt.Sprintf("customer %d not found", id))
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateCustomerRequest) (res dto.CustomerResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, otelSpanPrefix+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	customer, err := s.repo.Insert(ctx, req.ToModel())
	if err != nil {
		log.Error().Err(err).Msg("failed to create customer")

		return res, fmt.Errorf("failed to create customer: %w", err)
	}

	log.Info().Int(model.FieldID, customer.ID).Msg("customer created")

	res.FromModel(customer)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int) (res dto.CustomerResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, otelSpanPrefix+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	customer, found, err := s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get customer")

		return res, fmt.Errorf("failed to get customer: %w", err)
	}

	if !found {
		return res, notFound(id)
	}

	res.FromModel(customer)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetCustomersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, otelSpanPrefix+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	customers, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get customers")

		return res, fmt.Errorf("failed to get customers: %w", err)
	}

	res.FromModels(customers)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateCustomerRequest, id int) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, otelSpanPrefix+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.IsEmpty() {
		_, found, err := s.repo.Get(ctx, id)
		if err != nil {
			log.Error().Err(err).Msg("failed to get customer")

			return fmt.Errorf("failed to get customer: %w", err)
		}

		if !found {
			return notFound(id)
		}

		return nil
	}

	_, found, err := s.repo.Modify(ctx, id, func(current model.Customer) (model.Customer, error) {
		return req.Apply(current), nil
	})
	if err != nil {
		log.Error().Err(err).Int(model.FieldID, id).Msg("failed to update customer")

		return fmt.Errorf("failed to update customer: %w", err)
	}

	if !found {
		return notFound(id)
	}

	log.Info().Int(model.FieldID, id).Msg("customer updated")

	return nil
}

// Delete removes the customer. Reservations that reference it are left as they are.
func (s *serviceImpl) Delete(ctx context.Context, id int) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, otelSpanPrefix+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	found, err := s.repo.Delete(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to delete customer")

		return fmt.Errorf("failed to delete customer: %w", err)
	}

	if !found {
		return notFound(id)
	}

	log.Info().Int(model.FieldID, id).Msg("customer deleted")

	return nil
}
