package model

import "portfolio/shared/model"

const (
	TableName  = "users"
	EntityName = "user"

	FieldID                 = "id"
	FieldEmail              = "email"
	FieldName               = "name"
	FieldExternalIdentityID = "external_identity_id"
	FieldRole               = "role"
	FieldIsFirstUser        = "is_first_user"
)

// User links an identity provider subject to a role. Rows are provisioned outside this service.
type User struct {
	ID                 int64   `db:"id"                   insert:"-"`
	Email              string  `db:"email"`
	Name               *string `db:"name"`
	ExternalIdentityID string  `db:"external_identity_id"`
	Role               string  `db:"role"`
	IsFirstUser        bool    `db:"is_first_user"`
	model.Timestamps
}
