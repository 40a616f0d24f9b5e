package dto_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"impressions/internal/domains/testimonial/model/dto"
	"impressions/shared/validator"
)

func TestSaveTestimonialRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		rating  int
		wantErr bool
	}{
		{name: "omitted rating", rating: 0},
		{name: "lowest rating", rating: 1},
		{name: "highest rating", rating: 5},
		{name: "above range", rating: 6, wantErr: true},
		{name: "negative", rating: -1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := dto.SaveTestimonialRequest{Name: "Priya", Message: "Lovely keepsake.", Rating: tt.rating}

			err := validator.ValidateStruct(&req)

			assert.Equal(t, tt.wantErr, err != nil)
		})
	}
}

func TestSaveTestimonialRequest_ToModel(t *testing.T) {
	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	req := dto.SaveTestimonialRequest{Name: "Priya", Message: "Lovely keepsake."}
	assert.Equal(t, 5, req.ToModel("t-1", "studio", now).Rating)

	req.Rating = 3
	assert.Equal(t, 3, req.ToModel("t-1", "studio", now).Rating)
}

func TestTestimonialResponse_Stars(t *testing.T) {
	res := dto.TestimonialResponse{Rating: 4}

	assert.Equal(t, []bool{true, true, true, true, false}, res.Stars())
}
