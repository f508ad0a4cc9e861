package model

import "time"

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID        = "id"
	FieldName      = "name"
	FieldEmail     = "email"
	FieldMessage   = "message"
	FieldTourID    = "tour_id"
	FieldCreatedAt = "created_at"
)

// Booking is an append-only visitor inquiry. The id is assigned by storage.
type Booking struct {
	ID        int64     `db:"id"         insert:"-"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Message   *string   `db:"message"`
	TourID    *string   `db:"tour_id"`
	CreatedAt time.Time `db:"created_at"`
}
