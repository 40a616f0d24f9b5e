// Package seed prepares a fresh installation: the admin account and, on
// request, placeholder content for an empty site.
package seed

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"impressions/config"
	galleryModel "impressions/internal/domains/gallery/model"
	galleryDto "impressions/internal/domains/gallery/model/dto"
	gallerySvc "impressions/internal/domains/gallery/service"
	servicesDto "impressions/internal/domains/services/model/dto"
	servicesSvc "impressions/internal/domains/services/service"
	testimonialDto "impressions/internal/domains/testimonial/model/dto"
	testimonialSvc "impressions/internal/domains/testimonial/service"
	userDto "impressions/internal/domains/user/model/dto"
	userSvc "impressions/internal/domains/user/service"
)

// samplePlaceholder is an embedded image until real photos are uploaded.
const samplePlaceholder = "/static/placeholder.svg"

type Seeder struct {
	config      *config.Config
	user        userSvc.User
	gallery     gallerySvc.Gallery
	services    servicesSvc.Service
	testimonial testimonialSvc.Testimonial
}

func New(
	config *config.Config,
	user userSvc.User,
	gallery gallerySvc.Gallery,
	services servicesSvc.Service,
	testimonial testimonialSvc.Testimonial,
) *Seeder {
	return &Seeder{
		config:      config,
		user:        user,
		gallery:     gallery,
		services:    services,
		testimonial: testimonial,
	}
}

// Run creates or resets the admin account from configuration, then adds the
// sample content when enabled. Collections that already hold rows are left alone.
func (s *Seeder) Run(ctx context.Context) error {
	if err := s.config.ValidateSeed(); err != nil {
		return fmt.Errorf("invalid seed configuration: %w", err)
	}

	created, err := s.user.EnsureAdmin(ctx, userDto.EnsureAdminRequest{
		Username: s.config.Seed.AdminUsername,
		Password: s.config.Seed.AdminPassword,
	})
	if err != nil {
		return fmt.Errorf("failed to ensure admin user: %w", err)
	}

	if created {
		log.Info().Str("username", s.config.Seed.AdminUsername).Msg("Admin user created")
	} else {
		log.Info().Str("username", s.config.Seed.AdminUsername).Msg("Admin user already existed, password reset")
	}

	if !s.config.Seed.SampleContent {
		return nil
	}

	if err = s.seedGallery(ctx); err != nil {
		return err
	}

	if err = s.seedServices(ctx); err != nil {
		return err
	}

	return s.seedTestimonials(ctx)
}

func (s *Seeder) seedGallery(ctx context.Context) error {
	existing, err := s.gallery.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list gallery images: %w", err)
	}

	if len(existing) > 0 {
		log.Info().Int("count", len(existing)).Msg("Gallery already has images, skipping samples")

		return nil
	}

	for _, image := range SampleGallery() {
		if _, err = s.gallery.Save(ctx, image); err != nil {
			return fmt.Errorf("failed to save sample image %q: %w", image.Title, err)
		}
	}

	log.Info().Int("count", len(SampleGallery())).Msg("Sample gallery images added")

	return nil
}

func (s *Seeder) seedServices(ctx context.Context) error {
	existing, err := s.services.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list services: %w", err)
	}

	if len(existing) > 0 {
		log.Info().Int("count", len(existing)).Msg("Services already exist, skipping samples")

		return nil
	}

	for _, service := range SampleServices() {
		if _, err = s.services.Save(ctx, service); err != nil {
			return fmt.Errorf("failed to save sample service %q: %w", service.Title, err)
		}
	}

	log.Info().Int("count", len(SampleServices())).Msg("Sample services added")

	return nil
}

func (s *Seeder) seedTestimonials(ctx context.Context) error {
	existing, err := s.testimonial.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list testimonials: %w", err)
	}

	if len(existing) > 0 {
		log.Info().Int("count", len(existing)).Msg("Testimonials already exist, skipping samples")

		return nil
	}

	for _, testimonial := range SampleTestimonials() {
		if _, err = s.testimonial.Save(ctx, testimonial); err != nil {
			return fmt.Errorf("failed to save sample testimonial from %q: %w", testimonial.Name, err)
		}
	}

	log.Info().Int("count", len(SampleTestimonials())).Msg("Sample testimonials added")

	return nil
}

func SampleGallery() []galleryDto.SaveGalleryImageRequest {
	return []galleryDto.SaveGalleryImageRequest{
		{Title: "Oak frame, hands and feet", Category: galleryModel.CategoryFramed, ImagePath: samplePlaceholder, Featured: true, Order: 0},
		{Title: "Brushed silver finish", Category: galleryModel.CategoryPremium, ImagePath: samplePlaceholder, Featured: true, Order: 1},
		{Title: "White shadow box", Category: galleryModel.CategoryFramed, ImagePath: samplePlaceholder, Order: 2},
		{Title: "Parent and baby hands", Category: galleryModel.CategorySpecial, ImagePath: samplePlaceholder, Featured: true, Order: 3},
		{Title: "Bronze effect casts", Category: galleryModel.CategoryPremium, ImagePath: samplePlaceholder, Order: 4},
		{Title: "Pet paw with baby foot", Category: galleryModel.CategorySpecial, ImagePath: samplePlaceholder, Order: 5},
	}
}

func SampleServices() []servicesDto.SaveServiceRequest {
	return []servicesDto.SaveServiceRequest{
		{Title: "Studio casting", Description: "A calm session at the studio, usually under an hour.", Order: 0, Active: true},
		{Title: "Home visit", Description: "We bring the kit to you for newborns and tired parents.", Order: 1, Active: true},
		{Title: "Framing and finishes", Description: "Choose a frame, a metallic finish and a name plate.", Order: 2, Active: true},
	}
}

func SampleTestimonials() []testimonialDto.SaveTestimonialRequest {
	return []testimonialDto.SaveTestimonialRequest{
		{Name: "Sample parent", Location: "Northside", Message: "Replace this placeholder with a real review from the admin.", Rating: 5, Active: true, Order: 0},
	}
}
