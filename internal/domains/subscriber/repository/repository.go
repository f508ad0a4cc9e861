package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"portfolio/infras/otel"
	"portfolio/infras/postgres"
	"portfolio/internal/domains/subscriber/model"
	gRepo "portfolio/shared/repository"
)

type Subscriber interface {
	Insert(ctx context.Context, model model.Subscriber) (int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Subscriber]
}

func New(db *postgres.Connection, otel otel.Otel) Subscriber {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Subscriber](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
