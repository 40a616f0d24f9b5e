package dto

import (
	"strings"
	"time"

	"impressions/internal/domains/inquiry/model"
	"impressions/shared/constant"
	gDto "impressions/shared/dto"
	gModel "impressions/shared/model"
)

// CreateInquiryRequest is the public enquiry form. There is no status field: new
// enquiries always start as new.
type CreateInquiryRequest struct {
	Name    string `json:"name"    form:"name"    validate:"required,max=120"`
	Phone   string `json:"phone"   form:"phone"   validate:"required,max=32"`
	Email   string `json:"email"   form:"email"   validate:"omitempty,email,max=254"`
	Message string `json:"message" form:"message" validate:"required,max=2000"`
	Service string `json:"service" form:"service" validate:"max=120"`
}

func (r *CreateInquiryRequest) ToModel(id, user string, now time.Time) model.Inquiry {
	return model.Inquiry{
		ID:       id,
		Name:     strings.TrimSpace(r.Name),
		Phone:    strings.TrimSpace(r.Phone),
		Email:    optional(r.Email),
		Message:  r.Message,
		Service:  optional(r.Service),
		Status:   model.StatusNew,
		Metadata: gModel.NewMetadata(now, user),
	}
}

type UpdateInquiryStatusRequest struct {
	Status model.Status `json:"status" form:"status" validate:"enum"`
	Notes  *string      `json:"notes"  form:"notes"  validate:"omitempty,max=2000"`
}

// StatusPatch holds the only columns an admin may change on an enquiry. A nil
// Notes leaves the stored notes untouched.
type StatusPatch struct {
	Status model.Status `db:"status"`
	Notes  *string      `db:"notes"`
}

func (r *UpdateInquiryStatusRequest) ToPatch() StatusPatch {
	return StatusPatch{Status: r.Status, Notes: r.Notes}
}

type InquiryResponse struct {
	ID      string       `json:"id"`
	Name    string       `json:"name"`
	Phone   string       `json:"phone"`
	Email   string       `json:"email,omitempty"`
	Message string       `json:"message"`
	Service string       `json:"service,omitempty"`
	Status  model.Status `json:"status"`
	Notes   string       `json:"notes,omitempty"`
	gDto.Metadata
}

func (r *InquiryResponse) FromModel(m model.Inquiry) {
	r.ID = m.ID
	r.Name = m.Name
	r.Phone = m.Phone
	r.Email = deref(m.Email)
	r.Message = m.Message
	r.Service = deref(m.Service)
	r.Status = m.Status
	r.Notes = deref(m.Notes)
	r.Metadata.FromModel(m.Metadata)
}

func FromModels(models []model.Inquiry) []InquiryResponse {
	res := make([]InquiryResponse, len(models))
	for i, m := range models {
		res[i].FromModel(m)
	}

	return res
}

// InquiryCreatedEvent is published after a public enquiry is stored.
type InquiryCreatedEvent struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email,omitempty"`
	Service   string    `json:"service,omitempty"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

func NewInquiryCreatedEvent(m model.Inquiry) InquiryCreatedEvent {
	return InquiryCreatedEvent{
		ID:        m.ID,
		Name:      m.Name,
		Phone:     m.Phone,
		Email:     deref(m.Email),
		Service:   deref(m.Service),
		Message:   m.Message,
		CreatedAt: m.CreatedAt,
	}
}

// CountByStatus counts enquiries per status. Every status is present in the result.
func CountByStatus(inquiries []InquiryResponse) map[model.Status]int {
	counts := make(map[model.Status]int, len(model.Statuses()))
	for _, status := range model.Statuses() {
		counts[status] = 0
	}

	for _, inquiry := range inquiries {
		counts[inquiry.Status]++
	}

	return counts
}

// FilterByStatus keeps the enquiries with the given status. The empty filter and
// StatusFilterAll keep everything.
func FilterByStatus(inquiries []InquiryResponse, filter string) []InquiryResponse {
	if filter == constant.Empty || filter == model.StatusFilterAll {
		return inquiries
	}

	filtered := []InquiryResponse{}

	for _, inquiry := range inquiries {
		if string(inquiry.Status) == filter {
			filtered = append(filtered, inquiry)
		}
	}

	return filtered
}

// ToggleStatusFilter is the stat card behaviour: selecting the active status clears the filter.
func ToggleStatusFilter(current, selected string) string {
	if current == selected {
		return model.StatusFilterAll
	}

	return selected
}

func optional(value string) *string {
	trimmed := strings.TrimSpace(value)
	if trimmed == constant.Empty {
		return nil
	}

	return &trimmed
}

func deref(value *string) string {
	if value == nil {
		return constant.Empty
	}

	return *value
}
