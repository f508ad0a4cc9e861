package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"portfolio/infras/otel"
	"portfolio/infras/postgres"
	"portfolio/internal/domains/booking/model"
	gDto "portfolio/shared/dto"
	gRepo "portfolio/shared/repository"
)

// Booking has no update or delete: bookings are append-only.
type Booking interface {
	Insert(ctx context.Context, model model.Booking) (int64, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
