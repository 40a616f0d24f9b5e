package dto

import (
	"strings"
	"time"

	"impressions/internal/domains/services/model"
	gDto "impressions/shared/dto"
	gModel "impressions/shared/model"
)

type SaveServiceRequest struct {
	ID          string `json:"id"          form:"id"          validate:"omitempty,max=64"`
	Title       string `json:"title"       form:"title"       validate:"required,max=120"`
	Description string `json:"description" form:"description" validate:"max=2000"`
	ImagePath   string `json:"image_path"  form:"image_path"  validate:"max=2048"`
	Order       int    `json:"order"       form:"order"       validate:"gte=0"`
	Active      bool   `json:"active"      form:"active"`
}

func (r *SaveServiceRequest) ToModel(id, user string, now time.Time) model.Service {
	var description *string
	if trimmed := strings.TrimSpace(r.Description); trimmed != "" {
		description = &trimmed
	}

	return model.Service{
		ID:          id,
		Title:       r.Title,
		Description: description,
		ImagePath:   r.ImagePath,
		Order:       r.Order,
		Active:      r.Active,
		Metadata:    gModel.NewMetadata(now, user),
	}
}

type ServiceResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	ImagePath   string `json:"image_path"`
	Order       int    `json:"order"`
	Active      bool   `json:"active"`
	gDto.Metadata
}

func (r *ServiceResponse) FromModel(m model.Service) {
	r.ID = m.ID
	r.Title = m.Title
	r.ImagePath = m.ImagePath
	r.Order = m.Order
	r.Active = m.Active
	r.Metadata.FromModel(m.Metadata)

	if m.Description != nil {
		r.Description = *m.Description
	}
}

func (r *ServiceResponse) ToRequest() SaveServiceRequest {
	return SaveServiceRequest{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		ImagePath:   r.ImagePath,
		Order:       r.Order,
		Active:      r.Active,
	}
}

func FromModels(models []model.Service) []ServiceResponse {
	res := make([]ServiceResponse, len(models))
	for i, m := range models {
		res[i].FromModel(m)
	}

	return res
}
