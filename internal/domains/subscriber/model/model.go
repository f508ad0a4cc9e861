package model

import "time"

const (
	TableName  = "subscribers"
	EntityName = "subscriber"

	FieldID    = "id"
	FieldEmail = "email"
	FieldName  = "name"
)

type Subscriber struct {
	ID        int64     `db:"id"         insert:"-"`
	Email     string    `db:"email"`
	Name      *string   `db:"name"`
	CreatedAt time.Time `db:"created_at"`
}
