package service

import (
	"context"
	"errors"
	"fmt"
	"portfolio/config"
	"portfolio/infras/otel"
	"portfolio/internal/domains/post/model"
	"portfolio/internal/domains/post/model/dto"
	"portfolio/internal/domains/post/repository"
	"portfolio/shared"
	"portfolio/shared/cache"
	"portfolio/shared/constant"
	gDto "portfolio/shared/dto"
	"portfolio/shared/failure"
	"portfolio/shared/markdown"
	gRepo "portfolio/shared/repository"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetPost    = "post:get"
	cacheGetAllPost = "post:gets"
)

type Post interface {
	Create(ctx context.Context, req dto.CreatePostRequest) (dto.PostResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams) (dto.GetPostsResponse, error)
	Get(ctx context.Context, slug string) (dto.PostResponse, error)
}

type serviceImpl struct {
	repo  repository.Post
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Post, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Post {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreatePostRequest) (res dto.PostResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	post := req.ToModel()
	if post.Slug == "" {
		return res, failure.BadRequestFromString("Title must contain letters or digits") // nolint:wrapcheck
	}

	html, err := markdown.ToHTML(post.Content)
	if err != nil {
		log.Error().Err(err).Str("slug", post.Slug).Msg("failed to render post content")

		return res, fmt.Errorf("failed to render post content: %w", err)
	}

	post.ID, err = s.repo.Insert(ctx, post)
	if errors.Is(err, gRepo.ErrUniqueViolation) {
		return res, failure.Conflict("A post with this slug already exists") // nolint:wrapcheck
	}

	if err != nil {
		log.Error().Err(err).Msg("failed to create post")

		return res, fmt.Errorf("failed to create post: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, cacheGetAllPost)

	res.FromModel(post, html)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams) (res dto.GetPostsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllPost, req, nil)
	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	filter := gDto.FilterGroup{}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count posts")

		return res, fmt.Errorf("failed to count posts: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get posts")

		return res, fmt.Errorf("failed to get posts: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	s.save(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, slug string) (res dto.PostResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetPost, slug)
	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	post, err := s.repo.Get(ctx, shared.FilterBy(model.FieldSlug, slug, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("slug", slug).Msg("failed to get post")

		return res, fmt.Errorf("failed to get post: %w", err)
	}

	if post.ID == 0 {
		return res, failure.NotFound("post not found") // nolint:wrapcheck
	}

	html, err := markdown.ToHTML(post.Content)
	if err != nil {
		log.Error().Err(err).Str("slug", slug).Msg("failed to render post content")

		return res, fmt.Errorf("failed to render post content: %w", err)
	}

	res.FromModel(post, html)

	s.save(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) save(ctx context.Context, key string, value any) {
	if err := s.cache.Save(ctx, key, value, s.cfg.Cache.TTL); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("failed to cache posts")
	}
}
