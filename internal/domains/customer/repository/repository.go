package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"hotelier/config"
	"hotelier/infras/jsonfile"
	"hotelier/infras/otel"
	"hotelier/internal/domains/customer/model"
	gRepo "hotelier/shared/repository"
)

type Customer interface {
	Init(ctx context.Context) error
	Insert(ctx context.Context, customer model.Customer) (model.Customer, error)
	Get(ctx context.Context, id int) (model.Customer, bool, error)
	GetAll(ctx context.Context) ([]model.Customer, error)
	Modify(ctx context.Context, id int, mutate func(current model.Customer) (model.Customer, error)) (model.Customer, bool, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Customer]
}

func New(conn *jsonfile.Connection, cfg *config.Config, otel otel.Otel) Customer {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Customer](model.EntityName, cfg.Store.CustomersFile, conn, otel),
	}
}
