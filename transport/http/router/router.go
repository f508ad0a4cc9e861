package router

import (
	"net/http"
	"portfolio/internal/handlers/booking"
	"portfolio/internal/handlers/health"
	"portfolio/internal/handlers/post"
	"portfolio/internal/handlers/project"
	"portfolio/internal/handlers/subscriber"
	"portfolio/internal/handlers/tour"
	"portfolio/transport/http/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "portfolio/docs" // swagger spec registration
)

type DomainHandlers struct {
	Booking    booking.Handler
	Post       post.Handler
	Project    project.Handler
	Subscriber subscriber.Handler
	Tour       tour.Handler
	Health     health.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	App            middleware.AppMiddleware
	Auth           middleware.AuthRole
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Use(
		r.App.RequestID,
		r.App.Recoverer,
		r.App.Tracing,
		r.App.Metrics,
		r.App.Logger,
		r.App.CORS(),
	)

	r.DomainHandlers.Health.Router(router)
	router.Method(http.MethodGet, "/metrics", promhttp.Handler())
	router.Get("/swagger/*", httpSwagger.WrapHandler)

	router.Route("/api", func(routerGroup chi.Router) {
		routerGroup.Use(r.App.RateLimit())
		r.DomainHandlers.Booking.Router(routerGroup)
	})

	router.Route("/admin", func(routerGroup chi.Router) {
		routerGroup.Use(r.Auth.Identity)
		r.DomainHandlers.Booking.PageRouter(routerGroup)
	})

	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Use(r.App.RateLimit())

		r.DomainHandlers.Tour.Router(routerGroup)
		r.DomainHandlers.Post.Router(routerGroup)
		r.DomainHandlers.Project.Router(routerGroup)
		r.DomainHandlers.Subscriber.Router(routerGroup)

		routerGroup.Route("/admin", func(adminGroup chi.Router) {
			adminGroup.Use(r.Auth.Identity, r.Auth.RequireIdentity, r.Auth.RBAC)

			r.DomainHandlers.Booking.AdminRouter(adminGroup)
			r.DomainHandlers.Post.AdminRouter(adminGroup)
			r.DomainHandlers.Project.AdminRouter(adminGroup)
		})
	})
}

func New(domainHandlers DomainHandlers, app middleware.AppMiddleware, auth middleware.AuthRole) Router {
	return Router{
		DomainHandlers: domainHandlers,
		App:            app,
		Auth:           auth,
	}
}
