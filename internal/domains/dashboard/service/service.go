package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"impressions/infras/otel"
	"impressions/internal/domains/dashboard/model/dto"
	gallerySvc "impressions/internal/domains/gallery/service"
	inquiryModel "impressions/internal/domains/inquiry/model"
	inquiryDto "impressions/internal/domains/inquiry/model/dto"
	inquirySvc "impressions/internal/domains/inquiry/service"
	servicesSvc "impressions/internal/domains/services/service"
	testimonialSvc "impressions/internal/domains/testimonial/service"
	"impressions/shared/constant"
	"impressions/shared/failure"
)

const widgetCount = 4

var errAllWidgetsFailed = errors.New("no dashboard data could be loaded")

type Dashboard interface {
	Get(ctx context.Context) (dto.DashboardResponse, error)
}

type serviceImpl struct {
	gallery     gallerySvc.Gallery
	services    servicesSvc.Service
	testimonial testimonialSvc.Testimonial
	inquiry     inquirySvc.Inquiry
	otel        otel.Otel
}

func New(
	gallery gallerySvc.Gallery,
	services servicesSvc.Service,
	testimonial testimonialSvc.Testimonial,
	inquiry inquirySvc.Inquiry,
	otel otel.Otel,
) Dashboard {
	return &serviceImpl{
		gallery:     gallery,
		services:    services,
		testimonial: testimonial,
		inquiry:     inquiry,
		otel:        otel,
	}
}

// Get loads the four collections concurrently. A failing collection blanks its
// own widget only; the call fails when every collection fails.
func (s *serviceImpl) Get(ctx context.Context) (res dto.DashboardResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".dashboard.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	var (
		mu     sync.Mutex
		group  errgroup.Group
		failed []string
	)

	widget := func(name string, load func() error) {
		group.Go(func() error {
			if err := load(); err != nil {
				log.Error().Err(err).Str("widget", name).Msg("failed to load dashboard widget")

				mu.Lock()
				failed = append(failed, name)
				mu.Unlock()
			}

			return nil
		})
	}

	res.RecentInquiries = []inquiryDto.InquiryResponse{}

	widget(dto.WidgetGallery, func() error {
		images, err := s.gallery.List(ctx)
		res.GalleryCount = len(images)

		return err
	})

	widget(dto.WidgetServices, func() error {
		services, err := s.services.List(ctx)
		res.ServiceCount = len(services)

		return err
	})

	widget(dto.WidgetTestimonials, func() error {
		testimonials, err := s.testimonial.List(ctx)
		res.TestimonialCount = len(testimonials)

		return err
	})

	widget(dto.WidgetInquiries, func() error {
		inquiries, err := s.inquiry.List(ctx)
		if err != nil {
			return err
		}

		res.InquiryCount = len(inquiries)
		res.NewInquiries = inquiryDto.CountByStatus(inquiries)[inquiryModel.StatusNew]
		res.RecentInquiries = inquiries[:min(len(inquiries), dto.RecentInquiryLimit)]

		return nil
	})

	_ = group.Wait()

	slices.Sort(failed)
	res.Unavailable = failed

	if len(failed) == widgetCount {
		return res, failure.Unavailable(errAllWidgetsFailed)
	}

	return res, nil
}
