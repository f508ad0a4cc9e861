package booking

import (
	"net/http"
	"net/url"
	"portfolio/config"
	"portfolio/infras/metrics"
	"portfolio/infras/otel"
	"portfolio/internal/domains/booking/model/dto"
	"portfolio/internal/domains/booking/service"
	"portfolio/shared/constant"
	"portfolio/shared/logger"
	"portfolio/shared/validator"
	"portfolio/transport/http/response"
	"portfolio/transport/http/view"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service  service.Booking
	renderer view.Renderer
	cfg      *config.Config
	otel     otel.Otel
}

func New(service service.Booking, renderer view.Renderer, cfg *config.Config, otel otel.Otel) Handler {
	return Handler{
		service:  service,
		renderer: renderer,
		cfg:      cfg,
		otel:     otel,
	}
}

// Router registers the public intake endpoint.
func (handler *Handler) Router(router chi.Router) {
	router.Post("/bookings", handler.CreateBooking)
}

// AdminRouter registers the JSON listing behind the admin guard.
func (handler *Handler) AdminRouter(router chi.Router) {
	router.Get("/bookings", handler.GetBookings)
}

// PageRouter registers the server-rendered booking page.
func (handler *Handler) PageRouter(router chi.Router) {
	router.Get("/bookings", handler.BookingsPage)
}

// CreateBooking handles a contact or booking form submission.
// @Summary Submit a booking
// @Description Accept a booking inquiry from the public contact form.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Booking submission"
// @Success 200 {object} response.Ack "Booking stored"
// @Failure 400 {object} response.Ack
// @Failure 500 {object} response.Ack
// @Router /api/bookings [post]
func (handler *Handler) CreateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		metrics.IncBooking(metrics.OutcomeRejected)
		logger.FromContext(ctx).Debug().Err(err).Msg("booking rejected")

		response.WithRejection(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		logger.FromContext(ctx).Error().Err(err).Msg("failed to create booking")

		response.WithRejection(writer, err)

		return
	}

	scope.AddEvent("Booking created")

	response.WithAck(writer, res.ID)
}

// GetBookings lists every booking newest first.
// @Summary List bookings
// @Description List all booking submissions, newest first. Admin only.
// @Tags Booking
// @Produce json
// @Success 200 {object} response.Data[dto.GetBookingsResponse] "List of bookings"
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Router /v1/admin/bookings [get]
// @Security BearerAuth
func (handler *Handler) GetBookings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	response.WithJSON(writer, http.StatusOK, handler.service.GetAll(ctx))
}

// BookingsPage renders the admin booking list. Anonymous callers are sent to sign in.
func (handler *Handler) BookingsPage(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".BookingsPage")
	defer scope.End()

	externalID, _ := ctx.Value(constant.ContextKeyExternalID).(string)
	result := handler.service.View(ctx, externalID)

	switch result.Access {
	case dto.AccessSignIn:
		http.Redirect(writer, request, handler.signInURL(request), http.StatusFound)
	case dto.AccessDenied:
		handler.render(writer, request, http.StatusForbidden, handler.renderer.Denied)
	case dto.AccessGranted:
		handler.render(writer, request, http.StatusOK, func() ([]byte, error) {
			return handler.renderer.Bookings(result.Bookings.Bookings)
		})
	}
}

func (handler *Handler) render(writer http.ResponseWriter, request *http.Request, code int, render func() ([]byte, error)) {
	body, err := render()
	if err != nil {
		logger.FromContext(request.Context()).Error().Err(err).Msg("failed to render bookings page")
		response.WithError(writer, err)

		return
	}

	response.WithHTML(writer, code, body)
}

func (handler *Handler) signInURL(request *http.Request) string {
	target, err := url.Parse(handler.cfg.Auth.SignInURL)
	if err != nil {
		return handler.cfg.Auth.SignInURL
	}

	query := target.Query()
	query.Set(constant.RequestParamRedirect, request.URL.RequestURI())
	target.RawQuery = query.Encode()

	return target.String()
}
