package service

import (
	"context"
	"errors"
	"fmt"
	"portfolio/infras/otel"
	"portfolio/internal/domains/subscriber/model/dto"
	"portfolio/internal/domains/subscriber/repository"
	"portfolio/shared/constant"
	"portfolio/shared/failure"
	gRepo "portfolio/shared/repository"

	"github.com/rs/zerolog/log"
)

type Subscriber interface {
	Subscribe(ctx context.Context, req dto.SubscribeRequest) (dto.SubscribeResponse, error)
}

type serviceImpl struct {
	repo repository.Subscriber
	otel otel.Otel
}

func New(repo repository.Subscriber, otel otel.Otel) Subscriber {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) Subscribe(ctx context.Context, req dto.SubscribeRequest) (res dto.SubscribeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Subscribe")
	defer scope.End()
	defer scope.TraceIfError(err)

	subscriber := req.ToModel()

	id, err := s.repo.Insert(ctx, subscriber)
	if errors.Is(err, gRepo.ErrUniqueViolation) {
		return res, failure.Conflict("Email is already subscribed") // nolint:wrapcheck
	}

	if err != nil {
		log.Error().Err(err).Msg("failed to create subscriber")

		return res, fmt.Errorf("failed to create subscriber: %w", err)
	}

	return dto.SubscribeResponse{ID: id, Email: subscriber.Email}, nil
}
