package subscriber

import (
	"net/http"
	"portfolio/infras/otel"
	"portfolio/internal/domains/subscriber/model/dto"
	"portfolio/internal/domains/subscriber/service"
	"portfolio/shared/constant"
	"portfolio/shared/validator"
	"portfolio/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Subscriber
	otel    otel.Otel
}

func New(service service.Subscriber, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/subscribers", handler.Subscribe)
}

// Subscribe adds an email to the newsletter list.
// @Summary Subscribe to the newsletter
// @Tags Subscriber
// @Accept json
// @Produce json
// @Param request body dto.SubscribeRequest true "Subscribe Request"
// @Success 201 {object} response.Data[dto.SubscribeResponse] "Subscribed"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/subscribers [post]
func (handler *Handler) Subscribe(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Subscribe")
	defer scope.End()

	req := dto.SubscribeRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		log.Debug().Err(err).Msg("invalid subscribe request")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Subscribe(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to subscribe")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, res)
}
