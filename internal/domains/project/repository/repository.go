package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"portfolio/infras/otel"
	"portfolio/infras/postgres"
	"portfolio/internal/domains/project/model"
	gDto "portfolio/shared/dto"
	gRepo "portfolio/shared/repository"
)

type Project interface {
	Insert(ctx context.Context, model model.Project) (int64, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Project, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Project]
}

func New(db *postgres.Connection, otel otel.Otel) Project {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Project](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
