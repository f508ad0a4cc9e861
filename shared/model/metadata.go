package model

import (
	"portfolio/shared/timezone"
	"time"
)

type Timestamps struct {
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// NewTimestamps stamps both fields with the current application time.
func NewTimestamps() Timestamps {
	now := timezone.Now()

	return Timestamps{CreatedAt: now, UpdatedAt: now}
}
