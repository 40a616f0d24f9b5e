package dto

import (
	"time"

	"impressions/internal/domains/testimonial/model"
	gDto "impressions/shared/dto"
	gModel "impressions/shared/model"
)

type SaveTestimonialRequest struct {
	ID       string `json:"id"       form:"id"       validate:"omitempty,max=64"`
	Name     string `json:"name"     form:"name"     validate:"required,max=120"`
	Location string `json:"location" form:"location" validate:"max=120"`
	Message  string `json:"message"  form:"message"  validate:"required,max=2000"`
	Rating   int    `json:"rating"   form:"rating"   validate:"omitempty,gte=1,lte=5"`
	Active   bool   `json:"active"   form:"active"`
	Order    int    `json:"order"    form:"order"    validate:"gte=0"`
}

// ToModel builds the record. An omitted rating defaults to five stars.
func (r *SaveTestimonialRequest) ToModel(id, user string, now time.Time) model.Testimonial {
	rating := r.Rating
	if rating == 0 {
		rating = model.DefaultRating
	}

	return model.Testimonial{
		ID:       id,
		Name:     r.Name,
		Location: r.Location,
		Message:  r.Message,
		Rating:   rating,
		Active:   r.Active,
		Order:    r.Order,
		Metadata: gModel.NewMetadata(now, user),
	}
}

type TestimonialResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Message  string `json:"message"`
	Rating   int    `json:"rating"`
	Active   bool   `json:"active"`
	Order    int    `json:"order"`
	gDto.Metadata
}

func (r *TestimonialResponse) FromModel(m model.Testimonial) {
	r.ID = m.ID
	r.Name = m.Name
	r.Location = m.Location
	r.Message = m.Message
	r.Rating = m.Rating
	r.Active = m.Active
	r.Order = m.Order
	r.Metadata.FromModel(m.Metadata)
}

// Stars returns the rating as a fixed-length slice of filled flags, for rendering.
func (r *TestimonialResponse) Stars() []bool {
	stars := make([]bool, model.MaxRating)
	for i := range stars {
		stars[i] = i < r.Rating
	}

	return stars
}

func (r *TestimonialResponse) ToRequest() SaveTestimonialRequest {
	return SaveTestimonialRequest{
		ID:       r.ID,
		Name:     r.Name,
		Location: r.Location,
		Message:  r.Message,
		Rating:   r.Rating,
		Active:   r.Active,
		Order:    r.Order,
	}
}

func FromModels(models []model.Testimonial) []TestimonialResponse {
	res := make([]TestimonialResponse, len(models))
	for i, m := range models {
		res[i].FromModel(m)
	}

	return res
}
