package dto

import (
	"portfolio/internal/domains/booking/model"
	"portfolio/shared/constant"
	gDto "portfolio/shared/dto"
	"portfolio/shared/timezone"
	"strings"
)

type CreateBookingRequest struct {
	Name    gDto.Text `json:"name"    validate:"required"`
	Email   gDto.Text `json:"email"   validate:"required,looseemail"`
	Message gDto.Text `json:"message" validate:"omitempty"`
	TourID  gDto.Text `json:"tourId"  validate:"omitempty,max=100"`
}

// Normalize trims every field before validation.
func (c *CreateBookingRequest) Normalize() {
	c.Name = gDto.Text(c.Name.Trimmed())
	c.Email = gDto.Text(c.Email.Trimmed())
	c.Message = gDto.Text(c.Message.Trimmed())
	c.TourID = gDto.Text(c.TourID.Trimmed())
}

func (c *CreateBookingRequest) ToModel() model.Booking {
	return model.Booking{
		Name:      c.Name.Trimmed(),
		Email:     c.Email.Trimmed(),
		Message:   c.Message.Optional(),
		TourID:    c.TourID.Optional(),
		CreatedAt: timezone.Now(),
	}
}

// CreateBookingResponse is the acknowledgement body.
type CreateBookingResponse struct {
	OK bool  `json:"ok"`
	ID int64 `json:"id"`
}

type BookingResponse struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Message   *string `json:"message"`
	TourID    *string `json:"tour_id"`
	CreatedAt string  `json:"created_at"`
	Submitted string  `json:"submitted"`
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.Name = model.Name
	r.Email = model.Email
	r.Message = model.Message
	r.TourID = model.TourID
	r.CreatedAt = timezone.Format(model.CreatedAt, constant.DateFormat)
	r.Submitted = timezone.Display(model.CreatedAt)
}

// MessageText returns the message or an empty string.
func (r BookingResponse) MessageText() string {
	if r.Message == nil {
		return ""
	}

	return strings.TrimSpace(*r.Message)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking) {
	r.TotalData = len(models)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

// Access is the result of checking a viewer against the booking list.
type Access int

const (
	// AccessSignIn means no identity was presented.
	AccessSignIn Access = iota
	// AccessDenied means the identity has no admin role record.
	AccessDenied
	// AccessGranted means the list was fetched for an admin.
	AccessGranted
)

// BookingsView is what the visibility operation hands to the page renderer.
type BookingsView struct {
	Access   Access
	Bookings GetBookingsResponse
}
