package shared_test

import (
	"context"
	"errors"
	"portfolio/shared"
	cacheMocks "portfolio/shared/cache/mocks"
	"portfolio/shared/dto"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{name: "zero total", total: 0, limit: 10, expected: 1},
		{name: "exact division", total: 20, limit: 10, expected: 2},
		{name: "with remainder", total: 21, limit: 10, expected: 3},
		{name: "zero limit", total: 5, limit: 0, expected: 1},
		{name: "negative limit", total: 5, limit: -1, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.CalculateTotalPage(tt.total, tt.limit))
		})
	}
}

func TestFilterBy(t *testing.T) {
	group := shared.FilterBy("slug", "hello-world", "blog_posts")
	where, args := group.GetWhereClause()

	assert.Equal(t, "(blog_posts.slug = :slug)", where)
	assert.Equal(t, map[string]any{"slug": "hello-world"}, args)
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "limiter:10.0.0.1:curl", shared.BuildCacheKey("limiter", "10.0.0.1", "curl"))
	assert.Equal(t, "posts:hello", shared.BuildCacheKey("posts", " ", "hello", ""))
	assert.Empty(t, shared.BuildCacheKey())
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{Page: 2, Limit: 10, SortBy: "created_at", SortDir: "DESC"}

	key := shared.BuildCacheKeyWithQuery("posts", params, map[string]string{"b": "2", "a": "1"})

	assert.Equal(t, "posts:page=2:limit=10:sort=created_at.desc:a=1:b=2", key)
}

func TestInvalidateCaches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	gomock.InOrder(
		mockCache.EXPECT().Clear(gomock.Any(), "posts*").Return(errors.New("redis down")),
		mockCache.EXPECT().Clear(gomock.Any(), "projects*").Return(nil),
	)

	shared.InvalidateCaches(context.Background(), mockCache, "posts", "projects")
}
