package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"hotelier/config"
	"hotelier/infras/jsonfile"
	"hotelier/infras/otel"
	"hotelier/internal/domains/hotel/model"
	gRepo "hotelier/shared/repository"
)

type Hotel interface {
	Init(ctx context.Context) error
	Insert(ctx context.Context, hotel model.Hotel) (model.Hotel, error)
	Get(ctx context.Context, id int) (model.Hotel, bool, error)
	GetAll(ctx context.Context) ([]model.Hotel, error)
	Modify(ctx context.Context, id int, mutate func(current model.Hotel) (model.Hotel, error)) (model.Hotel, bool, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Hotel]
}

func New(conn *jsonfile.Connection, cfg *config.Config, otel otel.Otel) Hotel {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Hotel](model.EntityName, cfg.Store.HotelsFile, conn, otel),
	}
}
