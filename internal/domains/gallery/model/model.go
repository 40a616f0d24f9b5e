package model

import "impressions/shared/model"

const (
	TableName  = "gallery_images"
	EntityName = "gallery image"

	FieldID        = "id"
	FieldTitle     = "title"
	FieldCategory  = "category"
	FieldImagePath = "image_path"
	FieldFeatured  = "featured"
	FieldOrder     = "sort_order"
)

type Category string

const (
	CategoryFramed  Category = "Framed"
	CategoryPremium Category = "Premium"
	CategorySpecial Category = "Special"
)

// CategoryAll is the public gallery filter that disables category filtering.
const CategoryAll Category = "All"

func Categories() []Category {
	return []Category{CategoryFramed, CategoryPremium, CategorySpecial}
}

func (c Category) IsValid() bool {
	switch c {
	case CategoryFramed, CategoryPremium, CategorySpecial:
		return true
	}

	return false
}

// GalleryImage is one portfolio photo. Order is a display hint and need not be unique.
type GalleryImage struct {
	ID        string   `db:"id"`
	Title     string   `db:"title"`
	Category  Category `db:"category"`
	ImagePath string   `db:"image_path"`
	Featured  bool     `db:"featured"`
	Order     int      `db:"sort_order"`
	model.Metadata
}
