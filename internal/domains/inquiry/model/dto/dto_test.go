package dto_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"impressions/internal/domains/inquiry/model"
	"impressions/internal/domains/inquiry/model/dto"
	"impressions/shared/validator"
)

func sampleInquiries() []dto.InquiryResponse {
	return []dto.InquiryResponse{
		{ID: "1", Status: model.StatusNew},
		{ID: "2", Status: model.StatusBooked},
		{ID: "3", Status: model.StatusNew},
		{ID: "4", Status: model.StatusCompleted},
	}
}

func TestCreateInquiryRequest_ToModel(t *testing.T) {
	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	req := dto.CreateInquiryRequest{Name: " Ravi ", Phone: "+91 90000 00000", Message: "Booking for twins", Service: "  "}

	record := req.ToModel("inq-1", "system", now)

	assert.Equal(t, model.StatusNew, record.Status)
	assert.Equal(t, "Ravi", record.Name)
	assert.Nil(t, record.Email)
	assert.Nil(t, record.Service)
	assert.Nil(t, record.Notes)
	assert.Equal(t, now, record.CreatedAt)
}

func TestCreateInquiryRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     dto.CreateInquiryRequest
		wantErr bool
	}{
		{
			name: "minimal enquiry",
			req:  dto.CreateInquiryRequest{Name: "Ravi", Phone: "12345", Message: "Hello"},
		},
		{
			name:    "missing phone",
			req:     dto.CreateInquiryRequest{Name: "Ravi", Message: "Hello"},
			wantErr: true,
		},
		{
			name:    "bad email",
			req:     dto.CreateInquiryRequest{Name: "Ravi", Phone: "12345", Message: "Hello", Email: "not-an-email"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.req)

			assert.Equal(t, tt.wantErr, err != nil)
		})
	}
}

func TestUpdateInquiryStatusRequest_Validate(t *testing.T) {
	valid := dto.UpdateInquiryStatusRequest{Status: model.StatusContacted}
	require.NoError(t, validator.ValidateStruct(&valid))

	invalid := dto.UpdateInquiryStatusRequest{Status: "archived"}
	assert.Error(t, validator.ValidateStruct(&invalid))
}

func TestCountByStatus(t *testing.T) {
	counts := dto.CountByStatus(sampleInquiries())

	assert.Equal(t, map[model.Status]int{
		model.StatusNew:       2,
		model.StatusContacted: 0,
		model.StatusBooked:    1,
		model.StatusCompleted: 1,
	}, counts)
}

func TestFilterByStatus(t *testing.T) {
	tests := []struct {
		name    string
		filter  string
		wantIDs []string
	}{
		{name: "all", filter: model.StatusFilterAll, wantIDs: []string{"1", "2", "3", "4"}},
		{name: "empty filter", filter: "", wantIDs: []string{"1", "2", "3", "4"}},
		{name: "new only", filter: string(model.StatusNew), wantIDs: []string{"1", "3"}},
		{name: "no matches", filter: string(model.StatusContacted), wantIDs: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ids := []string{}
			for _, inquiry := range dto.FilterByStatus(sampleInquiries(), tt.filter) {
				ids = append(ids, inquiry.ID)
			}

			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestToggleStatusFilter(t *testing.T) {
	assert.Equal(t, "booked", dto.ToggleStatusFilter(model.StatusFilterAll, "booked"))
	assert.Equal(t, model.StatusFilterAll, dto.ToggleStatusFilter("booked", "booked"))
	assert.Equal(t, "new", dto.ToggleStatusFilter("booked", "new"))
}

func TestNewInquiryCreatedEvent(t *testing.T) {
	email := "parent@example.com"
	event := dto.NewInquiryCreatedEvent(model.Inquiry{ID: "inq-1", Name: "Ravi", Email: &email})

	assert.Equal(t, "inq-1", event.ID)
	assert.Equal(t, email, event.Email)
	assert.Empty(t, event.Service)
}
