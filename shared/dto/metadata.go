package dto

import (
	"time"

	"impressions/shared/constant"
	"impressions/shared/model"
	"impressions/shared/timezone"
)

// Metadata is the audit trail every admin-facing record carries. Timestamps
// are rendered in the studio's timezone.
type Metadata struct {
	CreatedAt  string `json:"created_at"`
	ModifiedAt string `json:"modified_at"`
	CreatedBy  string `json:"created_by"`
	ModifiedBy string `json:"modified_by"`
}

func (m *Metadata) FromModel(source model.Metadata) {
	m.CreatedAt = timezone.Format(source.CreatedAt, constant.DateFormat)
	m.ModifiedAt = timezone.Format(source.ModifiedAt, constant.DateFormat)
	m.CreatedBy = source.CreatedBy
	m.ModifiedBy = source.ModifiedBy
}

// Received is CreatedAt in the short form the admin tables show.
// Unparseable values are returned as stored.
func (m Metadata) Received() string {
	return display(m.CreatedAt)
}

// Edited is ModifiedAt in the same short form, or empty when the record was
// never touched after creation.
func (m Metadata) Edited() string {
	if m.ModifiedAt == "" || m.ModifiedAt == m.CreatedAt {
		return ""
	}

	return display(m.ModifiedAt)
}

func display(value string) string {
	parsed, err := time.Parse(constant.DateFormat, value)
	if err != nil {
		return value
	}

	return parsed.Format(constant.DisplayDateFormat)
}
