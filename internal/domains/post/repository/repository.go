package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"portfolio/infras/otel"
	"portfolio/infras/postgres"
	"portfolio/internal/domains/post/model"
	gDto "portfolio/shared/dto"
	gRepo "portfolio/shared/repository"
)

type Post interface {
	Insert(ctx context.Context, model model.Post) (int64, error)
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Post, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Post, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Post]
}

func New(db *postgres.Connection, otel otel.Otel) Post {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Post](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
