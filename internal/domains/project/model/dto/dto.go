package dto

import (
	"portfolio/internal/domains/project/model"
	gDto "portfolio/shared/dto"
	gModel "portfolio/shared/model"
	"strings"
)

type CreateProjectRequest struct {
	Title       string   `json:"title"       validate:"required,max=200"`
	Description string   `json:"description" validate:"required"`
	Icon        string   `json:"icon"        validate:"required,oneof=AlertTriangle Shield FileCode Lock Server Users"`
	Items       []string `json:"items"       validate:"required,min=1,dive,required"`
}

func (c *CreateProjectRequest) Normalize() {
	c.Title = strings.TrimSpace(c.Title)
	c.Description = strings.TrimSpace(c.Description)
	c.Icon = strings.TrimSpace(c.Icon)

	for i := range c.Items {
		c.Items[i] = strings.TrimSpace(c.Items[i])
	}
}

func (c *CreateProjectRequest) ToModel() model.Project {
	return model.Project{
		Title:       c.Title,
		Description: c.Description,
		Icon:        c.Icon,
		Items:       model.StringList(c.Items),
		Timestamps:  gModel.NewTimestamps(),
	}
}

type ProjectResponse struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Icon        string   `json:"icon"`
	Items       []string `json:"items"`
	gDto.Timestamps
}

func (r *ProjectResponse) FromModel(model model.Project) {
	r.ID = model.ID
	r.Title = model.Title
	r.Description = model.Description
	r.Icon = model.Icon
	r.Items = []string(model.Items)
	r.Timestamps.FromModel(model.Timestamps)

	if r.Items == nil {
		r.Items = []string{}
	}
}

type GetProjectsResponse struct {
	Projects  []ProjectResponse `json:"projects"`
	TotalData int               `json:"total_data"`
}

func (r *GetProjectsResponse) FromModels(models []model.Project) {
	r.TotalData = len(models)

	r.Projects = make([]ProjectResponse, len(models))
	for i, mod := range models {
		r.Projects[i].FromModel(mod)
	}
}
