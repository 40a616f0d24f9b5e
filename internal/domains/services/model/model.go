package model

import "impressions/shared/model"

const (
	TableName  = "services"
	EntityName = "service"

	FieldID          = "id"
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldImagePath   = "image_path"
	FieldOrder       = "sort_order"
	FieldActive      = "active"
)

// Service is one offering on the public site. Inactive services stay editable in the admin panel.
type Service struct {
	ID          string  `db:"id"`
	Title       string  `db:"title"`
	Description *string `db:"description"`
	ImagePath   string  `db:"image_path"`
	Order       int     `db:"sort_order"`
	Active      bool    `db:"active"`
	model.Metadata
}
