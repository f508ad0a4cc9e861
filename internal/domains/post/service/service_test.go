package service_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"portfolio/config"
	"portfolio/infras/otel/mocks"
	postMocks "portfolio/internal/domains/post/mocks"
	"portfolio/internal/domains/post/model"
	"portfolio/internal/domains/post/model/dto"
	"portfolio/internal/domains/post/service"
	"portfolio/shared/cache"
	cacheMocks "portfolio/shared/cache/mocks"
	gDto "portfolio/shared/dto"
	"portfolio/shared/failure"
	gRepo "portfolio/shared/repository"
)

func setup(t *testing.T) (service.Post, *postMocks.MockPost, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := postMocks.NewMockPost(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	return service.New(repo, cfg, mockCache, mocks.NewOtel()), repo, mockCache
}

func miss() error {
	return fmt.Errorf("failed to get cache value: %w", cache.Nil)
}

func validRequest() dto.CreatePostRequest {
	return dto.CreatePostRequest{
		Title:   "Zero Trust, Explained!",
		Excerpt: "What it means in practice",
		Content: "## Never trust\n\nAlways verify.",
		Author:  "Editor",
	}
}

func TestPostService_Create(t *testing.T) {
	t.Run("success renders markdown and invalidates listings", func(t *testing.T) {
		svc, repo, mockCache := setup(t)

		repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p model.Post) (int64, error) {
				assert.Equal(t, "zero-trust-explained", p.Slug)
				assert.Nil(t, p.CoverImage)
				assert.False(t, p.CreatedAt.IsZero())

				return 11, nil
			})
		mockCache.EXPECT().Clear(gomock.Any(), "post:gets*").Return(nil)

		res, err := svc.Create(context.Background(), validRequest())
		require.NoError(t, err)

		assert.Equal(t, int64(11), res.ID)
		assert.Equal(t, "zero-trust-explained", res.Slug)
		assert.Contains(t, res.ContentHTML, "<h2>Never trust</h2>")
	})

	t.Run("duplicate slug is a conflict", func(t *testing.T) {
		svc, repo, _ := setup(t)

		repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(int64(0), fmt.Errorf("failed to insert data (post): %w", gRepo.ErrUniqueViolation))

		_, err := svc.Create(context.Background(), validRequest())
		require.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("title without slug characters", func(t *testing.T) {
		svc, _, _ := setup(t)

		req := validRequest()
		req.Title = "!!!"

		_, err := svc.Create(context.Background(), req)
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("storage failure", func(t *testing.T) {
		svc, repo, _ := setup(t)

		repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("connection reset"))

		_, err := svc.Create(context.Background(), validRequest())
		require.Error(t, err)
		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})
}

func TestPostService_GetAll(t *testing.T) {
	params := gDto.QueryParams{Page: 1, Limit: 10, SortBy: "created_at", SortDir: "DESC"}

	t.Run("cache miss reads storage and saves", func(t *testing.T) {
		svc, repo, mockCache := setup(t)

		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(miss())
		repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(12, nil)
		repo.EXPECT().
			GetAll(gomock.Any(), params, gomock.Any()).
			Return([]model.Post{{ID: 2, Slug: "b"}, {ID: 1, Slug: "a"}}, nil)
		mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), 3600).Return(nil)

		res, err := svc.GetAll(context.Background(), params)
		require.NoError(t, err)

		assert.Equal(t, 12, res.TotalData)
		assert.Equal(t, 2, res.TotalPage)
		require.Len(t, res.Posts, 2)
		assert.Equal(t, "b", res.Posts[0].Slug)
	})

	t.Run("cache hit skips storage", func(t *testing.T) {
		svc, _, mockCache := setup(t)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any) error {
				res, ok := value.(*dto.GetPostsResponse)
				require.True(t, ok)

				res.TotalData = 1
				res.Posts = []dto.PostSummary{{Slug: "cached"}}

				return nil
			})

		res, err := svc.GetAll(context.Background(), params)
		require.NoError(t, err)
		assert.Equal(t, "cached", res.Posts[0].Slug)
	})

	t.Run("count failure", func(t *testing.T) {
		svc, repo, mockCache := setup(t)

		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(miss())
		repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, errors.New("db down"))

		_, err := svc.GetAll(context.Background(), params)
		assert.Error(t, err)
	})
}

func TestPostService_Get(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		svc, repo, mockCache := setup(t)

		mockCache.EXPECT().Get(gomock.Any(), "post:get:hello", gomock.Any()).Return(miss())
		repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Post{ID: 3, Slug: "hello", Content: "*hi*"}, nil)
		mockCache.EXPECT().Save(gomock.Any(), "post:get:hello", gomock.Any(), 3600).Return(errors.New("redis down"))

		res, err := svc.Get(context.Background(), "hello")
		require.NoError(t, err)
		assert.Contains(t, res.ContentHTML, "<em>hi</em>")
	})

	t.Run("not found", func(t *testing.T) {
		svc, repo, mockCache := setup(t)

		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(miss())
		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Post{}, nil)

		_, err := svc.Get(context.Background(), "missing")
		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}
