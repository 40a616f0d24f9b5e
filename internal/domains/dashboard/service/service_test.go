package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"impressions/infras/otel/mocks"
	"impressions/internal/domains/dashboard/model/dto"
	"impressions/internal/domains/dashboard/service"
	galleryMocks "impressions/internal/domains/gallery/mocks"
	galleryDto "impressions/internal/domains/gallery/model/dto"
	inquiryMocks "impressions/internal/domains/inquiry/mocks"
	inquiryModel "impressions/internal/domains/inquiry/model"
	inquiryDto "impressions/internal/domains/inquiry/model/dto"
	servicesMocks "impressions/internal/domains/services/mocks"
	servicesDto "impressions/internal/domains/services/model/dto"
	testimonialMocks "impressions/internal/domains/testimonial/mocks"
	testimonialDto "impressions/internal/domains/testimonial/model/dto"
	"impressions/shared/failure"
)

type fixture struct {
	gallery     *galleryMocks.MockGalleryService
	services    *servicesMocks.MockServiceService
	testimonial *testimonialMocks.MockTestimonialService
	inquiry     *inquiryMocks.MockInquiryService
	svc         service.Dashboard
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)

	f := fixture{
		gallery:     galleryMocks.NewMockGalleryService(ctrl),
		services:    servicesMocks.NewMockServiceService(ctrl),
		testimonial: testimonialMocks.NewMockTestimonialService(ctrl),
		inquiry:     inquiryMocks.NewMockInquiryService(ctrl),
	}
	f.svc = service.New(f.gallery, f.services, f.testimonial, f.inquiry, mocks.NewOtel())

	return f
}

func inquiries(n int) []inquiryDto.InquiryResponse {
	res := make([]inquiryDto.InquiryResponse, n)
	for i := range res {
		res[i].ID = fmt.Sprintf("inq-%d", i)
		res[i].Status = inquiryModel.StatusContacted

		if i%2 == 0 {
			res[i].Status = inquiryModel.StatusNew
		}
	}

	return res
}

func TestDashboardService_Get(t *testing.T) {
	f := newFixture(t)

	f.gallery.EXPECT().List(gomock.Any()).Return(make([]galleryDto.GalleryImageResponse, 12), nil)
	f.services.EXPECT().List(gomock.Any()).Return(make([]servicesDto.ServiceResponse, 3), nil)
	f.testimonial.EXPECT().List(gomock.Any()).Return(make([]testimonialDto.TestimonialResponse, 4), nil)
	f.inquiry.EXPECT().List(gomock.Any()).Return(inquiries(7), nil)

	res, err := f.svc.Get(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 12, res.GalleryCount)
	assert.Equal(t, 3, res.ServiceCount)
	assert.Equal(t, 4, res.TestimonialCount)
	assert.Equal(t, 7, res.InquiryCount)
	assert.Equal(t, 4, res.NewInquiries)
	require.Len(t, res.RecentInquiries, dto.RecentInquiryLimit)
	assert.Equal(t, "inq-0", res.RecentInquiries[0].ID)
	assert.Empty(t, res.Unavailable)
}

func TestDashboardService_Get_PartialFailure(t *testing.T) {
	f := newFixture(t)

	galleryFailed := make(chan struct{})

	f.gallery.EXPECT().List(gomock.Any()).DoAndReturn(func(context.Context) ([]galleryDto.GalleryImageResponse, error) {
		defer close(galleryFailed)

		return []galleryDto.GalleryImageResponse{}, errors.New("timeout")
	})
	f.services.EXPECT().List(gomock.Any()).Return(make([]servicesDto.ServiceResponse, 2), nil)
	f.testimonial.EXPECT().List(gomock.Any()).DoAndReturn(func(context.Context) ([]testimonialDto.TestimonialResponse, error) {
		<-galleryFailed

		return make([]testimonialDto.TestimonialResponse, 1), nil
	})
	f.inquiry.EXPECT().List(gomock.Any()).Return([]inquiryDto.InquiryResponse{}, errors.New("timeout"))

	res, err := f.svc.Get(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{dto.WidgetGallery, dto.WidgetInquiries}, res.Unavailable)
	assert.True(t, res.IsUnavailable(dto.WidgetGallery))
	assert.False(t, res.IsUnavailable(dto.WidgetServices))
	assert.Equal(t, 2, res.ServiceCount)
	assert.Equal(t, 1, res.TestimonialCount, "widgets finishing after a failure still settle")
	assert.Zero(t, res.GalleryCount)
	assert.NotNil(t, res.RecentInquiries)
}

func TestDashboardService_Get_AllFailed(t *testing.T) {
	f := newFixture(t)

	backendDown := errors.New("connection refused")

	f.gallery.EXPECT().List(gomock.Any()).Return(nil, backendDown)
	f.services.EXPECT().List(gomock.Any()).Return(nil, backendDown)
	f.testimonial.EXPECT().List(gomock.Any()).Return(nil, backendDown)
	f.inquiry.EXPECT().List(gomock.Any()).Return(nil, backendDown)

	_, err := f.svc.Get(context.Background())

	assert.True(t, failure.IsCode(err, 503))
}
