package dto_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"impressions/internal/domains/services/model"
	"impressions/internal/domains/services/model/dto"
)

func TestSaveServiceRequest_ToModel(t *testing.T) {
	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name            string
		description     string
		wantDescription *string
	}{
		{
			name:        "blank description is stored as null",
			description: "   ",
		},
		{
			name:            "description is trimmed",
			description:     "  Hand and foot casts in a shadow box frame. ",
			wantDescription: ptr("Hand and foot casts in a shadow box frame."),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := dto.SaveServiceRequest{Title: "3D casting", Description: tt.description, Order: 1, Active: true}

			record := req.ToModel("svc-1", "studio", now)

			assert.Equal(t, "svc-1", record.ID)
			assert.True(t, record.Active)
			assert.Equal(t, tt.wantDescription, record.Description)
		})
	}
}

func TestFromModels(t *testing.T) {
	assert.NotNil(t, dto.FromModels(nil))

	res := dto.FromModels([]model.Service{
		{ID: "a", Title: "Ink prints", Description: ptr("Clean ink prints on card."), Order: 2},
		{ID: "b", Title: "Ornaments"},
	})

	require.Len(t, res, 2)
	assert.Equal(t, "Clean ink prints on card.", res[0].Description)
	assert.Empty(t, res[1].Description)
	assert.Equal(t, "b", res[1].ToRequest().ID)
}

func ptr(s string) *string {
	return &s
}
