package dto

import (
	"time"

	"impressions/internal/domains/gallery/model"
	gDto "impressions/shared/dto"
	gModel "impressions/shared/model"
)

type SaveGalleryImageRequest struct {
	ID        string         `json:"id"         form:"id"         validate:"omitempty,max=64"`
	Title     string         `json:"title"      form:"title"      validate:"required,max=120"`
	Category  model.Category `json:"category"   form:"category"   validate:"enum"`
	ImagePath string         `json:"image_path" form:"image_path" validate:"required,max=2048"`
	Featured  bool           `json:"featured"   form:"featured"`
	Order     int            `json:"order"      form:"order"      validate:"gte=0"`
}

func (r *SaveGalleryImageRequest) ToModel(id, user string, now time.Time) model.GalleryImage {
	return model.GalleryImage{
		ID:        id,
		Title:     r.Title,
		Category:  r.Category,
		ImagePath: r.ImagePath,
		Featured:  r.Featured,
		Order:     r.Order,
		Metadata:  gModel.NewMetadata(now, user),
	}
}

type GalleryImageResponse struct {
	ID        string         `json:"id"`
	Title     string         `json:"title"`
	Category  model.Category `json:"category"`
	ImagePath string         `json:"image_path"`
	Featured  bool           `json:"featured"`
	Order     int            `json:"order"`
	gDto.Metadata
}

func (r *GalleryImageResponse) FromModel(m model.GalleryImage) {
	r.ID = m.ID
	r.Title = m.Title
	r.Category = m.Category
	r.ImagePath = m.ImagePath
	r.Featured = m.Featured
	r.Order = m.Order
	r.Metadata.FromModel(m.Metadata)
}

// ToRequest prefills the admin edit form.
func (r *GalleryImageResponse) ToRequest() SaveGalleryImageRequest {
	return SaveGalleryImageRequest{
		ID:        r.ID,
		Title:     r.Title,
		Category:  r.Category,
		ImagePath: r.ImagePath,
		Featured:  r.Featured,
		Order:     r.Order,
	}
}

func FromModels(models []model.GalleryImage) []GalleryImageResponse {
	res := make([]GalleryImageResponse, len(models))
	for i, m := range models {
		res[i].FromModel(m)
	}

	return res
}
