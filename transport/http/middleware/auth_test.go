package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"portfolio/config"
	identity "portfolio/infras/jwt"
	otelMocks "portfolio/infras/otel/mocks"
	userMocks "portfolio/internal/domains/user/mocks"
	userModel "portfolio/internal/domains/user/model"
	userService "portfolio/internal/domains/user/service"
	"portfolio/permissions"
	"portfolio/transport/http/middleware"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testSecret = "middleware-secret"
	testCookie = "__session"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Auth.SecretKey = testSecret
	cfg.Auth.SessionCookie = testCookie

	return cfg
}

func signedToken(t *testing.T, subject string) string {
	t.Helper()

	now := time.Now()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	return token
}

func newAuth(t *testing.T, setup func(repo *userMocks.MockUser)) middleware.AuthRole {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := userMocks.NewMockUser(ctrl)

	if setup != nil {
		setup(repo)
	}

	perms, err := permissions.Load([]byte(`{"endpoints":[
		{"path":"/v1/admin/bookings","method":"GET","permissions":["admin"]}
	]}`))
	require.NoError(t, err)

	cfg := testConfig()

	return middleware.NewAuthRoleMiddleware(
		identity.New(cfg),
		userService.New(repo, otelMocks.NewOtel()),
		otelMocks.NewOtel(),
		perms,
		cfg,
	)
}

func echoExternalID(w http.ResponseWriter, r *http.Request) {
	_, _ = w.Write([]byte(middleware.ExternalID(r.Context())))
}

func TestIdentity(t *testing.T) {
	auth := newAuth(t, nil)
	handler := auth.Identity(http.HandlerFunc(echoExternalID))

	tests := []struct {
		name    string
		prepare func(r *http.Request)
		want    string
	}{
		{
			name:    "anonymous",
			prepare: func(_ *http.Request) {},
			want:    "",
		},
		{
			name: "bearer token",
			prepare: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer "+signedToken(t, "user_bearer"))
			},
			want: "user_bearer",
		},
		{
			name: "session cookie",
			prepare: func(r *http.Request) {
				r.AddCookie(&http.Cookie{Name: testCookie, Value: signedToken(t, "user_cookie")})
			},
			want: "user_cookie",
		},
		{
			name: "invalid token stays anonymous",
			prepare: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer not-a-token")
			},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin/bookings", nil)
			tt.prepare(req)

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.want, rec.Body.String())
		})
	}
}

func TestRequireIdentity(t *testing.T) {
	auth := newAuth(t, nil)
	handler := auth.Identity(auth.RequireIdentity(http.HandlerFunc(echoExternalID)))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/admin/bookings", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Authentication required"}`, rec.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/v1/admin/bookings", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, "user_1"))

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user_1", rec.Body.String())
}

func TestRBAC(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		setup    func(repo *userMocks.MockUser)
		wantCode int
	}{
		{
			name: "admin allowed",
			path: "/v1/admin/bookings",
			setup: func(repo *userMocks.MockUser) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(userModel.User{ID: 1, Role: "admin"}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name: "plain user denied",
			path: "/v1/admin/bookings",
			setup: func(repo *userMocks.MockUser) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(userModel.User{ID: 2, Role: "user"}, nil)
			},
			wantCode: http.StatusForbidden,
		},
		{
			name: "unknown user denied",
			path: "/v1/admin/bookings",
			setup: func(repo *userMocks.MockUser) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(userModel.User{}, nil)
			},
			wantCode: http.StatusForbidden,
		},
		{
			name: "lookup failure denied",
			path: "/v1/admin/bookings",
			setup: func(repo *userMocks.MockUser) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(userModel.User{}, errors.New("connection refused"))
			},
			wantCode: http.StatusForbidden,
		},
		{
			name:     "route without permission entry denied",
			path:     "/v1/admin/unlisted",
			wantCode: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := newAuth(t, tt.setup)

			router := chi.NewRouter()
			router.Route("/v1/admin", func(r chi.Router) {
				r.Use(auth.Identity, auth.RequireIdentity, auth.RBAC)
				r.Get("/bookings", echoExternalID)
				r.Get("/unlisted", echoExternalID)
			})

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			req.Header.Set("Authorization", "Bearer "+signedToken(t, "user_1"))

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
