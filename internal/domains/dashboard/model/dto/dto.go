package dto

import inquiryDto "impressions/internal/domains/inquiry/model/dto"

const (
	WidgetGallery      = "gallery"
	WidgetServices     = "services"
	WidgetTestimonials = "testimonials"
	WidgetInquiries    = "inquiries"
)

// RecentInquiryLimit is the number of enquiries shown on the dashboard.
const RecentInquiryLimit = 5

// DashboardResponse holds the admin overview. Widgets whose collection could
// not be loaded are listed in Unavailable and left at their zero value.
type DashboardResponse struct {
	GalleryCount     int                          `json:"gallery_count"`
	ServiceCount     int                          `json:"service_count"`
	TestimonialCount int                          `json:"testimonial_count"`
	InquiryCount     int                          `json:"inquiry_count"`
	NewInquiries     int                          `json:"new_inquiries"`
	RecentInquiries  []inquiryDto.InquiryResponse `json:"recent_inquiries"`
	Unavailable      []string                     `json:"unavailable,omitempty"`
}

func (d *DashboardResponse) IsUnavailable(widget string) bool {
	for _, name := range d.Unavailable {
		if name == widget {
			return true
		}
	}

	return false
}
