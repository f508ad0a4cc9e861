//go:build wireinject
// +build wireinject

package di

import (
	"portfolio/config"
	"portfolio/infras/jwt"
	"portfolio/infras/otel"
	"portfolio/infras/postgres"
	"portfolio/infras/redis"
	"portfolio/permissions"
	"portfolio/shared/cache"
	"portfolio/transport/http"
	"portfolio/transport/http/middleware"
	"portfolio/transport/http/router"
	"portfolio/transport/http/view"

	"github.com/google/wire"

	bookingRepository "portfolio/internal/domains/booking/repository"
	bookingService "portfolio/internal/domains/booking/service"
	postRepository "portfolio/internal/domains/post/repository"
	postService "portfolio/internal/domains/post/service"
	projectRepository "portfolio/internal/domains/project/repository"
	projectService "portfolio/internal/domains/project/service"
	subscriberRepository "portfolio/internal/domains/subscriber/repository"
	subscriberService "portfolio/internal/domains/subscriber/service"
	tourRepository "portfolio/internal/domains/tour/repository"
	tourService "portfolio/internal/domains/tour/service"
	userRepository "portfolio/internal/domains/user/repository"
	userService "portfolio/internal/domains/user/service"

	bookingHandler "portfolio/internal/handlers/booking"
	healthHandler "portfolio/internal/handlers/health"
	postHandler "portfolio/internal/handlers/post"
	projectHandler "portfolio/internal/handlers/project"
	subscriberHandler "portfolio/internal/handlers/subscriber"
	tourHandler "portfolio/internal/handlers/tour"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	view.New,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var postDomain = wire.NewSet(
	postRepository.New,
	postService.New,
)

var projectDomain = wire.NewSet(
	projectRepository.New,
	projectService.New,
)

var subscriberDomain = wire.NewSet(
	subscriberRepository.New,
	subscriberService.New,
)

var tourDomain = wire.NewSet(
	tourRepository.New,
	tourService.New,
)

var domains = wire.NewSet(
	userDomain,
	bookingDomain,
	postDomain,
	projectDomain,
	subscriberDomain,
	tourDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	bookingHandler.New,
	postHandler.New,
	projectHandler.New,
	subscriberHandler.New,
	tourHandler.New,
	healthHandler.New,
	router.New,
)

func InitializeService() (*http.HTTP, error) {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}, nil
}
