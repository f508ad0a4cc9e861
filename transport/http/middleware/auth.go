package middleware

import (
	"context"
	"errors"
	"net/http"
	"portfolio/config"
	"portfolio/infras/jwt"
	"portfolio/infras/otel"
	userService "portfolio/internal/domains/user/service"
	"portfolio/permissions"
	"portfolio/shared/constant"
	"portfolio/shared/failure"
	"portfolio/shared/logger"
	"portfolio/transport/http/response"

	"github.com/go-chi/chi/v5"
)

// Auth resolves who is calling.
type Auth interface {
	Identity(http.Handler) http.Handler
	RequireIdentity(http.Handler) http.Handler
}

// Role decides what the caller may do.
type Role interface {
	RBAC(http.Handler) http.Handler
}

// AuthRole combines all middleware interfaces
type AuthRole interface {
	Auth
	Role
}

type authRoleImpl struct {
	jwtService jwt.JWT
	users      userService.User
	otel       otel.Otel
	permission *permissions.PermissionData
	cfg        *config.Config
}

func NewAuthRoleMiddleware(
	jwtService jwt.JWT,
	users userService.User,
	otel otel.Otel,
	permissions *permissions.PermissionData,
	cfg *config.Config,
) AuthRole {
	return &authRoleImpl{
		jwtService: jwtService,
		users:      users,
		otel:       otel,
		permission: permissions,
		cfg:        cfg,
	}
}

// ExternalID returns the identity provider subject stored by Identity, or "" for anonymous callers.
func ExternalID(ctx context.Context) string {
	externalID, _ := ctx.Value(constant.ContextKeyExternalID).(string)

	return externalID
}

// Identity reads a session token from the Authorization header or the session cookie.
// A missing or invalid token leaves the request anonymous.
func (m *authRoleImpl) Identity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()
		_, scope := m.otel.NewScope(ctx, constant.OtelMiddlewareScopeName, "identity.middleware")

		tokenString := m.sessionToken(request)
		if tokenString == "" {
			scope.SetAttribute("auth.identity", "anonymous")
			scope.End()
			next.ServeHTTP(writer, request)

			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			reason := "invalid"
			if errors.Is(err, jwt.ErrExpiredToken) {
				reason = "expired"
			}

			logger.FromContext(ctx).Debug().Err(err).Str("reason", reason).Msg("ignoring session token")

			scope.SetAttribute("auth.identity", reason)
			scope.End()
			next.ServeHTTP(writer, request)

			return
		}

		scope.SetAttribute("auth.identity", "verified")
		scope.End()

		ctx = context.WithValue(ctx, constant.ContextKeyExternalID, claims.Subject)
		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}

// RequireIdentity rejects anonymous callers with 401.
func (m *authRoleImpl) RequireIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if ExternalID(request.Context()) == "" {
			response.WithError(writer, failure.UnauthenticatedError)

			return
		}

		next.ServeHTTP(writer, request)
	})
}

// RBAC looks up the caller's role on every request and checks it against the route's
// permission entry. Routes without an entry are denied.
func (m *authRoleImpl) RBAC(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()
		ctx, scope := m.otel.NewScope(ctx, constant.OtelMiddlewareScopeName, "rbac.middleware")

		if m.permission == nil {
			scope.TraceError(failure.ForbiddenError)
			scope.End()
			response.WithError(writer, failure.ForbiddenError)

			return
		}

		if m.permission.Skip {
			scope.End()
			next.ServeHTTP(writer, request)

			return
		}

		path := request.URL.Path
		if rctx := chi.RouteContext(ctx); rctx != nil && rctx.Routes != nil {
			path = rctx.Routes.Find(chi.NewRouteContext(), request.Method, request.URL.Path)
		}

		scope.SetAttributes(map[string]any{
			"middleware.type": "rbac",
			"http.path":       path,
			"http.method":     request.Method,
		})

		permission, ok := m.permission.FindPermissions(path, request.Method)
		if !ok {
			scope.SetAttribute("reason", "route_not_listed")
			scope.TraceError(failure.ForbiddenError)
			scope.End()
			response.WithError(writer, failure.ForbiddenError)

			return
		}

		if permission.Skip {
			scope.End()
			next.ServeHTTP(writer, request)

			return
		}

		role, err := m.users.Role(ctx, ExternalID(ctx))
		if err != nil {
			logger.FromContext(ctx).Error().Err(err).Msg("role lookup failed, denying request")

			scope.SetAttribute("reason", "role_lookup_failed")
			scope.TraceError(err)
			scope.End()
			response.WithError(writer, failure.ForbiddenError)

			return
		}

		if !permission.Allows(role) {
			scope.SetAttributes(map[string]any{
				"user_role":     role,
				"allowed_roles": permission.Permissions,
				"reason":        "role_not_allowed",
			})
			scope.TraceError(failure.ForbiddenError)
			scope.End()
			response.WithError(writer, failure.ForbiddenError)

			return
		}

		scope.End()

		ctx = context.WithValue(request.Context(), constant.ContextKeyUserRole, role)
		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}

func (m *authRoleImpl) sessionToken(request *http.Request) string {
	if header := request.Header.Get(constant.RequestHeaderAuthorization); header != "" {
		token, err := jwt.ExtractTokenFromHeader(header)
		if err == nil {
			return token
		}
	}

	cookie, err := request.Cookie(m.cfg.Auth.SessionCookie)
	if err != nil {
		return ""
	}

	return cookie.Value
}
