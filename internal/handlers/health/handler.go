package health

import (
	"context"
	"net/http"
	"portfolio/infras/postgres"
	"portfolio/transport/http/response"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	pingTimeout = 2 * time.Second
)

// Status reports each dependency as "up" or "down".
type Status struct {
	Database string `json:"database"`
	Cache    string `json:"cache"`
}

type Handler struct {
	db    *postgres.Connection
	redis *redis.Client
}

func New(db *postgres.Connection, redis *redis.Client) Handler {
	return Handler{
		db:    db,
		redis: redis,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/health", handler.Health)
}

// Health pings storage and cache. Only the database is required for a healthy answer.
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Data[Status]
// @Failure 503 {object} response.Message
// @Router /health [get]
func (handler *Handler) Health(writer http.ResponseWriter, request *http.Request) {
	ctx, cancel := context.WithTimeout(request.Context(), pingTimeout)
	defer cancel()

	status := Status{Database: "up", Cache: "up"}

	if err := handler.db.Write.PingContext(ctx); err != nil {
		log.Error().Err(err).Msg("health: database unreachable")

		response.WithUnhealthy(writer)

		return
	}

	if err := handler.redis.Ping(ctx).Err(); err != nil {
		log.Warn().Err(err).Msg("health: cache unreachable")

		status.Cache = "down"
	}

	response.WithJSON(writer, http.StatusOK, status)
}
