package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"impressions/infras/otel"
	galleryModel "impressions/internal/domains/gallery/model"
	gallerySvc "impressions/internal/domains/gallery/service"
	servicesSvc "impressions/internal/domains/services/service"
	"impressions/internal/domains/site/model/dto"
	testimonialSvc "impressions/internal/domains/testimonial/service"
	"impressions/shared/constant"
)

type Site interface {
	Home(ctx context.Context) (dto.HomeResponse, error)
	Gallery(ctx context.Context, category string) (dto.GalleryPageResponse, error)
}

type serviceImpl struct {
	gallery     gallerySvc.Gallery
	services    servicesSvc.Service
	testimonial testimonialSvc.Testimonial
	otel        otel.Otel
}

func New(gallery gallerySvc.Gallery, services servicesSvc.Service, testimonial testimonialSvc.Testimonial, otel otel.Otel) Site {
	return &serviceImpl{
		gallery:     gallery,
		services:    services,
		testimonial: testimonial,
		otel:        otel,
	}
}

// Home loads the landing page sections concurrently. The first failure cancels
// the remaining fetches and the page renders empty sections with an error.
func (s *serviceImpl) Home(ctx context.Context) (res dto.HomeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".site.Home")
	defer scope.End()
	defer scope.TraceIfError(err)

	loaded := dto.NewHomeResponse()
	group, gctx := errgroup.WithContext(ctx)

	group.Go(func() (err error) {
		loaded.Featured, err = s.gallery.ListFeatured(gctx)

		return err
	})

	group.Go(func() (err error) {
		loaded.Services, err = s.services.ListActive(gctx)

		return err
	})

	group.Go(func() (err error) {
		loaded.Testimonials, err = s.testimonial.ListActive(gctx)

		return err
	})

	if err = group.Wait(); err != nil {
		log.Error().Err(err).Msg("failed to load home page")

		return dto.NewHomeResponse(), fmt.Errorf("failed to load home page: %w", err)
	}

	return loaded, nil
}

// Gallery lists the public gallery for one tab. Unknown categories show everything.
func (s *serviceImpl) Gallery(ctx context.Context, category string) (res dto.GalleryPageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".site.Gallery")
	defer scope.End()
	defer scope.TraceIfError(err)

	selected := galleryModel.Category(category)
	if !selected.IsValid() {
		selected = galleryModel.CategoryAll
	}

	res.Selected = selected
	res.Categories = dto.FilterCategories()

	res.Images, err = s.gallery.ListByCategory(ctx, selected)
	if err != nil {
		log.Error().Err(err).Str("category", string(selected)).Msg("failed to load gallery page")

		return res, fmt.Errorf("failed to load gallery page: %w", err)
	}

	return res, nil
}
