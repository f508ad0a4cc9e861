package service

import (
	"context"
	"fmt"
	"portfolio/infras/metrics"
	"portfolio/infras/otel"
	"portfolio/internal/domains/booking/model/dto"
	"portfolio/internal/domains/booking/repository"
	userService "portfolio/internal/domains/user/service"
	"portfolio/shared/constant"
	gDto "portfolio/shared/dto"

	"github.com/rs/zerolog/log"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.CreateBookingResponse, error)
	GetAll(ctx context.Context) dto.GetBookingsResponse
	View(ctx context.Context, externalID string) dto.BookingsView
}

type serviceImpl struct {
	repo  repository.Booking
	users userService.User
	otel  otel.Otel
}

func New(repo repository.Booking, users userService.User, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:  repo,
		users: users,
		otel:  otel,
	}
}

// Create stores one booking. The request must already be validated.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.CreateBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	id, err := s.repo.Insert(ctx, req.ToModel())
	if err != nil {
		metrics.IncBooking(metrics.OutcomeFailed)
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	metrics.IncBooking(metrics.OutcomeCreated)
	scope.SetAttribute("booking.id", id)

	return dto.CreateBookingResponse{OK: true, ID: id}, nil
}

// GetAll lists every booking newest first. A storage failure yields an empty list.
func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetBookingsResponse) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()

	models, err := s.repo.GetAll(ctx, gDto.Newest(), gDto.FilterGroup{})
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")
	}

	res.FromModels(models)

	return res
}

// View authorizes the viewer with a fresh role lookup before fetching anything.
func (s *serviceImpl) View(ctx context.Context, externalID string) dto.BookingsView {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".View")
	defer scope.End()

	if externalID == "" {
		return dto.BookingsView{Access: dto.AccessSignIn}
	}

	admin, err := s.users.IsAdmin(ctx, externalID)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Str("external_id", externalID).Msg("role lookup failed, denying access")

		return dto.BookingsView{Access: dto.AccessDenied}
	}

	if !admin {
		return dto.BookingsView{Access: dto.AccessDenied}
	}

	return dto.BookingsView{Access: dto.AccessGranted, Bookings: s.GetAll(ctx)}
}
