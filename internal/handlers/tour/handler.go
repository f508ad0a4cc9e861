package tour

import (
	"net/http"
	"portfolio/infras/otel"
	"portfolio/internal/domains/tour/service"
	"portfolio/shared/constant"
	"portfolio/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service service.Tour
	otel    otel.Otel
}

func New(service service.Tour, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/tours", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetTours)
		routerGroup.Get("/{id}", handler.GetTourByID)
	})
}

// GetTours lists the tour catalog.
// @Summary List tours
// @Tags Tour
// @Produce json
// @Success 200 {object} response.Data[dto.GetToursResponse] "Tour catalog"
// @Router /v1/tours [get]
func (handler *Handler) GetTours(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTours")
	defer scope.End()

	response.WithJSON(writer, http.StatusOK, handler.service.GetAll(ctx))
}

// GetTourByID returns one tour.
// @Summary Get a tour
// @Tags Tour
// @Produce json
// @Param id path string true "Tour ID"
// @Success 200 {object} response.Data[model.Tour] "Tour details"
// @Failure 404 {object} response.Error
// @Router /v1/tours/{id} [get]
func (handler *Handler) GetTourByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTourByID")
	defer scope.End()

	tour, err := handler.service.Get(ctx, chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, tour)
}
