package project_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"portfolio/config"
	otelMocks "portfolio/infras/otel/mocks"
	projectMocks "portfolio/internal/domains/project/mocks"
	"portfolio/internal/domains/project/model"
	"portfolio/internal/domains/project/service"
	"portfolio/internal/handlers/project"
	"portfolio/shared/cache"
	cacheMocks "portfolio/shared/cache/mocks"
)

func setup(t *testing.T) (http.Handler, *projectMocks.MockProject, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := projectMocks.NewMockProject(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 60

	handler := project.New(service.New(repo, cfg, mockCache, otelMocks.NewOtel()), otelMocks.NewOtel())

	router := chi.NewRouter()
	router.Route("/v1", handler.Router)
	router.Route("/v1/admin", handler.AdminRouter)

	return router, repo, mockCache
}

func TestGetProjects(t *testing.T) {
	router, repo, mockCache := setup(t)

	mockCache.EXPECT().Get(gomock.Any(), "project:gets", gomock.Any()).Return(fmt.Errorf("failed to get cache value: %w", cache.Nil))
	repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Project{
			{ID: 2, Title: "Cloud audit", Icon: "Server", Items: model.StringList{"IAM", "S3"}},
			{ID: 1, Title: "Pentest", Icon: "Shield", Items: model.StringList{"OWASP"}},
		}, nil)
	mockCache.EXPECT().Save(gomock.Any(), "project:gets", gomock.Any(), 60).Return(nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/projects", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data struct {
			Projects []struct {
				ID    int64    `json:"id"`
				Icon  string   `json:"icon"`
				Items []string `json:"items"`
			} `json:"projects"`
			TotalData int `json:"total_data"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.Equal(t, 2, body.Data.TotalData)
	require.Len(t, body.Data.Projects, 2)
	assert.Equal(t, int64(2), body.Data.Projects[0].ID)
	assert.Equal(t, []string{"IAM", "S3"}, body.Data.Projects[0].Items)
}

func TestGetProjects_StorageFailure(t *testing.T) {
	router, repo, mockCache := setup(t)

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
	repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/projects", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestCreateProject(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		mock     func(repo *projectMocks.MockProject, mockCache *cacheMocks.MockRedisCache)
		wantCode int
		wantBody string
		check    func(t *testing.T, body []byte)
	}{
		{
			name: "created",
			body: `{"title":"Cloud audit","description":"AWS review","icon":"Server","items":["IAM","S3"]}`,
			mock: func(repo *projectMocks.MockProject, mockCache *cacheMocks.MockRedisCache) {
				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, p model.Project) (int64, error) {
						assert.Equal(t, "Server", p.Icon)

						return 7, nil
					})
				mockCache.EXPECT().Delete(gomock.Any(), "project:gets").Return(nil)
			},
			wantCode: http.StatusCreated,
			check: func(t *testing.T, body []byte) {
				var res struct {
					Data struct {
						ID        int64    `json:"id"`
						Icon      string   `json:"icon"`
						Items     []string `json:"items"`
						CreatedAt string   `json:"created_at"`
					} `json:"data"`
				}
				require.NoError(t, json.Unmarshal(body, &res))

				assert.Equal(t, int64(7), res.Data.ID)
				assert.Equal(t, "Server", res.Data.Icon)
				assert.Equal(t, []string{"IAM", "S3"}, res.Data.Items)
				assert.NotEmpty(t, res.Data.CreatedAt)
			},
		},
		{
			name:     "icon outside closed set",
			body:     `{"title":"Cloud audit","description":"AWS review","icon":"Rocket","items":["IAM"]}`,
			wantCode: http.StatusBadRequest,
			wantBody: `{"error":"Icon must be one of AlertTriangle Shield FileCode Lock Server Users"}`,
		},
		{
			name:     "empty items",
			body:     `{"title":"Cloud audit","description":"AWS review","icon":"Lock","items":[]}`,
			wantCode: http.StatusBadRequest,
			wantBody: `{"error":"Items must have at least 1 entries"}`,
		},
		{
			name:     "malformed body",
			body:     `{"title":`,
			wantCode: http.StatusBadRequest,
			wantBody: `{"error":"Invalid request body"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, repo, mockCache := setup(t)
			if tt.mock != nil {
				tt.mock(repo, mockCache)
			}

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/admin/projects", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantCode, rec.Code)

			if tt.check != nil {
				tt.check(t, rec.Body.Bytes())

				return
			}

			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}
