package dto

import (
	"portfolio/internal/domains/subscriber/model"
	gDto "portfolio/shared/dto"
	"portfolio/shared/timezone"
	"strings"
)

type SubscribeRequest struct {
	Email gDto.Text `json:"email" validate:"required,looseemail,max=254"`
	Name  gDto.Text `json:"name"  validate:"omitempty,max=100"`
}

// Normalize trims both fields and lowercases the email so duplicates collide.
func (c *SubscribeRequest) Normalize() {
	c.Email = gDto.Text(strings.ToLower(c.Email.Trimmed()))
	c.Name = gDto.Text(c.Name.Trimmed())
}

func (c *SubscribeRequest) ToModel() model.Subscriber {
	return model.Subscriber{
		Email:     c.Email.Trimmed(),
		Name:      c.Name.Optional(),
		CreatedAt: timezone.Now(),
	}
}

type SubscribeResponse struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}
