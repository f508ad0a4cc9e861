package dto_test

import (
	"strings"
	"testing"
	"time"

	"portfolio/internal/domains/booking/model"
	"portfolio/internal/domains/booking/model/dto"
	"portfolio/shared/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBookingRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{name: "happy path", body: `{"name":"Jane Doe","email":"jane@example.com","message":"Interested in the 7-day tour","tourId":"bhutan-classic-7d"}`},
		{name: "name and email only", body: `{"name":"Jane","email":"jane@example.com"}`},
		{name: "bad email", body: `{"name":"Jane Doe","email":"not-an-email"}`, wantErr: "Invalid email address"},
		{name: "missing name", body: `{"name":"","email":"jane@example.com"}`, wantErr: "Name is required"},
		{name: "whitespace name", body: `{"name":"   ","email":"jane@example.com"}`, wantErr: "Name is required"},
		{name: "null name", body: `{"name":null,"email":"jane@example.com"}`, wantErr: "Name is required"},
		{name: "missing email", body: `{"name":"Jane"}`, wantErr: "Email is required"},
		{name: "numeric name accepted", body: `{"name":42,"email":"jane@example.com"}`},
		{name: "numeric email rejected", body: `{"name":"Jane","email":42}`, wantErr: "Invalid email address"},
		{name: "tour id too long", body: `{"name":"Jane","email":"jane@example.com","tourId":"` + strings.Repeat("x", 101) + `"}`, wantErr: "Tour id must be at most 100 characters"},
		{name: "null body", body: `null`, wantErr: "Name is required"},
		{name: "malformed body", body: `{"name":`, wantErr: validator.MessageInvalidBody},
		{name: "object field", body: `{"name":{"first":"Jane"},"email":"jane@example.com"}`, wantErr: validator.MessageInvalidBody},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req dto.CreateBookingRequest

			err := validator.Validate(strings.NewReader(tt.body), &req)
			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}

func TestCreateBookingRequest_ToModel(t *testing.T) {
	req := dto.CreateBookingRequest{Name: "  Jane  ", Email: " jane@example.com ", Message: "", TourID: " bhutan-wellness-5d "}

	booking := req.ToModel()

	assert.Zero(t, booking.ID)
	assert.Equal(t, "Jane", booking.Name)
	assert.Equal(t, "jane@example.com", booking.Email)
	assert.Nil(t, booking.Message)
	require.NotNil(t, booking.TourID)
	assert.Equal(t, "bhutan-wellness-5d", *booking.TourID)
	assert.False(t, booking.CreatedAt.IsZero())
}

func TestBookingResponse_FromModel(t *testing.T) {
	message := "Hello"
	created := time.Date(2025, 3, 4, 9, 15, 0, 0, time.UTC)

	var res dto.BookingResponse
	res.FromModel(model.Booking{ID: 5, Name: "Jane", Email: "jane@example.com", Message: &message, CreatedAt: created})

	assert.Equal(t, int64(5), res.ID)
	assert.Equal(t, "Hello", res.MessageText())
	assert.Nil(t, res.TourID)
	assert.NotEmpty(t, res.CreatedAt)
	assert.NotEmpty(t, res.Submitted)

	var empty dto.BookingResponse
	assert.Empty(t, empty.MessageText())
}

func TestGetBookingsResponse_FromModels(t *testing.T) {
	var res dto.GetBookingsResponse
	res.FromModels([]model.Booking{{ID: 2}, {ID: 1}})

	require.Len(t, res.Bookings, 2)
	assert.Equal(t, 2, res.TotalData)
	assert.Equal(t, int64(2), res.Bookings[0].ID)

	var none dto.GetBookingsResponse
	none.FromModels(nil)

	assert.NotNil(t, none.Bookings)
	assert.Zero(t, none.TotalData)
}
