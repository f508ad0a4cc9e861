package service

import (
	"context"
	"fmt"
	"portfolio/config"
	"portfolio/infras/otel"
	"portfolio/internal/domains/project/model/dto"
	"portfolio/internal/domains/project/repository"
	"portfolio/shared/cache"
	"portfolio/shared/constant"
	gDto "portfolio/shared/dto"

	"github.com/rs/zerolog/log"
)

const cacheGetAllProject = "project:gets"

type Project interface {
	Create(ctx context.Context, req dto.CreateProjectRequest) (dto.ProjectResponse, error)
	GetAll(ctx context.Context) (dto.GetProjectsResponse, error)
}

type serviceImpl struct {
	repo  repository.Project
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Project, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Project {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateProjectRequest) (res dto.ProjectResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	project := req.ToModel()

	project.ID, err = s.repo.Insert(ctx, project)
	if err != nil {
		log.Error().Err(err).Msg("failed to create project")

		return res, fmt.Errorf("failed to create project: %w", err)
	}

	// the list lives under a single key, no prefix scan needed
	if delErr := s.cache.Delete(ctx, cacheGetAllProject); delErr != nil {
		log.Warn().Err(delErr).Str("key", cacheGetAllProject).Msg("failed to invalidate cache")
	}

	res.FromModel(project)

	return res, nil
}

// GetAll lists every project, newest first.
func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetProjectsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.cache.Get(ctx, cacheGetAllProject, &res); err == nil {
		return res, nil
	}

	models, err := s.repo.GetAll(ctx, gDto.Newest(), gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get projects")

		return res, fmt.Errorf("failed to get projects: %w", err)
	}

	res.FromModels(models)

	if err = s.cache.Save(ctx, cacheGetAllProject, res, s.cfg.Cache.TTL); err != nil {
		log.Warn().Err(err).Msg("failed to cache projects")
	}

	return res, nil
}
