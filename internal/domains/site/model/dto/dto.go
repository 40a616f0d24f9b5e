package dto

import (
	galleryModel "impressions/internal/domains/gallery/model"
	galleryDto "impressions/internal/domains/gallery/model/dto"
	servicesDto "impressions/internal/domains/services/model/dto"
	testimonialDto "impressions/internal/domains/testimonial/model/dto"
)

type HomeResponse struct {
	Featured     []galleryDto.GalleryImageResponse     `json:"featured"`
	Services     []servicesDto.ServiceResponse         `json:"services"`
	Testimonials []testimonialDto.TestimonialResponse `json:"testimonials"`
}

func NewHomeResponse() HomeResponse {
	return HomeResponse{
		Featured:     []galleryDto.GalleryImageResponse{},
		Services:     []servicesDto.ServiceResponse{},
		Testimonials: []testimonialDto.TestimonialResponse{},
	}
}

type GalleryPageResponse struct {
	Images     []galleryDto.GalleryImageResponse `json:"images"`
	Categories []galleryModel.Category           `json:"categories"`
	Selected   galleryModel.Category             `json:"selected"`
}

// FilterCategories lists the public gallery tabs, All first.
func FilterCategories() []galleryModel.Category {
	return append([]galleryModel.Category{galleryModel.CategoryAll}, galleryModel.Categories()...)
}
