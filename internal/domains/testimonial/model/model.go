package model

import "impressions/shared/model"

const (
	TableName  = "testimonials"
	EntityName = "testimonial"

	FieldID       = "id"
	FieldName     = "name"
	FieldLocation = "location"
	FieldMessage  = "message"
	FieldRating   = "rating"
	FieldActive   = "active"
	FieldOrder    = "sort_order"
)

const (
	MinRating     = 1
	MaxRating     = 5
	DefaultRating = MaxRating
)

type Testimonial struct {
	ID       string `db:"id"`
	Name     string `db:"name"`
	Location string `db:"location"`
	Message  string `db:"message"`
	Rating   int    `db:"rating"`
	Active   bool   `db:"active"`
	Order    int    `db:"sort_order"`
	model.Metadata
}
