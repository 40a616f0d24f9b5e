package model

import "impressions/shared/model"

const (
	TableName  = "inquiries"
	EntityName = "inquiry"

	FieldID        = "id"
	FieldName      = "name"
	FieldPhone     = "phone"
	FieldEmail     = "email"
	FieldMessage   = "message"
	FieldService   = "service"
	FieldStatus    = "status"
	FieldNotes     = "notes"
	FieldCreatedAt = "created_at"
)

type Status string

const (
	StatusNew       Status = "new"
	StatusContacted Status = "contacted"
	StatusBooked    Status = "booked"
	StatusCompleted Status = "completed"
)

// StatusFilterAll is the admin list filter that shows every status.
const StatusFilterAll = "all"

// Statuses lists the lifecycle in display order. Any status may follow any other.
func Statuses() []Status {
	return []Status{StatusNew, StatusContacted, StatusBooked, StatusCompleted}
}

func (s Status) IsValid() bool {
	switch s {
	case StatusNew, StatusContacted, StatusBooked, StatusCompleted:
		return true
	}

	return false
}

// Inquiry is a customer enquiry. CreatedAt is set once on insert and never updated.
type Inquiry struct {
	ID      string  `db:"id"`
	Name    string  `db:"name"`
	Phone   string  `db:"phone"`
	Email   *string `db:"email"`
	Message string  `db:"message"`
	Service *string `db:"service"`
	Status  Status  `db:"status"`
	Notes   *string `db:"notes"`
	model.Metadata
}
