package service

import (
	"context"
	"fmt"
	"portfolio/infras/otel"
	"portfolio/internal/domains/user/model"
	"portfolio/internal/domains/user/repository"
	"portfolio/shared"
	"portfolio/shared/constant"

	"github.com/rs/zerolog/log"
)

// User resolves roles for identity provider subjects. Every call reads storage; roles are never cached.
type User interface {
	Role(ctx context.Context, externalID string) (string, error)
	IsAdmin(ctx context.Context, externalID string) (bool, error)
}

type serviceImpl struct {
	repo repository.User
	otel otel.Otel
}

func New(repo repository.User, otel otel.Otel) User {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

// Role returns the stored role, or an empty string when no user row matches.
func (s *serviceImpl) Role(ctx context.Context, externalID string) (role string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Role")
	defer scope.End()
	defer scope.TraceIfError(err)

	if externalID == "" {
		return "", nil
	}

	user, err := s.repo.Get(
		ctx,
		shared.FilterBy(model.FieldExternalIdentityID, externalID, model.TableName),
		model.FieldID, model.FieldRole,
	)
	if err != nil {
		log.Error().Err(err).Str("external_id", externalID).Msg("failed to look up user role")

		return "", fmt.Errorf("failed to look up user role: %w", err)
	}

	return user.Role, nil
}

func (s *serviceImpl) IsAdmin(ctx context.Context, externalID string) (bool, error) {
	role, err := s.Role(ctx, externalID)
	if err != nil {
		return false, err
	}

	return role == constant.RoleAdmin, nil
}
