package dto

import (
	"portfolio/shared/constant"
	"portfolio/shared/model"
	"portfolio/shared/timezone"
)

type Timestamps struct {
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func (m *Timestamps) FromModel(model model.Timestamps) {
	m.CreatedAt = timezone.Format(model.CreatedAt, constant.DateFormat)
	m.UpdatedAt = timezone.Format(model.UpdatedAt, constant.DateFormat)
}
