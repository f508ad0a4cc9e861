package service

import (
	"context"
	"portfolio/infras/otel"
	"portfolio/internal/domains/tour/model"
	"portfolio/internal/domains/tour/model/dto"
	"portfolio/internal/domains/tour/repository"
	"portfolio/shared/constant"
	"portfolio/shared/failure"
)

type Tour interface {
	GetAll(ctx context.Context) dto.GetToursResponse
	Get(ctx context.Context, id string) (model.Tour, error)
}

type serviceImpl struct {
	repo repository.Tour
	otel otel.Otel
}

func New(repo repository.Tour, otel otel.Otel) Tour {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetToursResponse) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()

	res.FromModels(s.repo.GetAll())

	return res
}

func (s *serviceImpl) Get(ctx context.Context, id string) (model.Tour, error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()

	tour, ok := s.repo.Get(id)
	if !ok {
		return tour, failure.NotFound("tour not found") // nolint:wrapcheck
	}

	return tour, nil
}
