package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"hotelier/config"
	"hotelier/infras/jsonfile"
	"hotelier/infras/otel"
	"hotelier/internal/domains/reservation/model"
	gRepo "hotelier/shared/repository"
)

// Reservation has no Delete: cancelled reservations stay in the store.
type Reservation interface {
	Init(ctx context.Context) error
	Insert(ctx context.Context, reservation model.Reservation) (model.Reservation, error)
	Get(ctx context.Context, id int) (model.Reservation, bool, error)
	GetAll(ctx context.Context) ([]model.Reservation, error)
	Modify(ctx context.Context, id int, mutate func(current model.Reservation) (model.Reservation, error)) (model.Reservation, bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Reservation]
}

func New(conn *jsonfile.Connection, cfg *config.Config, otel otel.Otel) Reservation {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Reservation](model.EntityName, cfg.Store.ReservationsFile, conn, otel),
	}
}
