package dto

import "portfolio/internal/domains/tour/model"

type GetToursResponse struct {
	Tours     []model.Tour `json:"tours"`
	TotalData int          `json:"total_data"`
}

func (r *GetToursResponse) FromModels(models []model.Tour) {
	r.Tours = models
	r.TotalData = len(models)

	if r.Tours == nil {
		r.Tours = []model.Tour{}
	}
}
