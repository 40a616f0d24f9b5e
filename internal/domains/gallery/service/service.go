package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Gallery=MockGalleryService

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"impressions/infras/otel"
	"impressions/infras/s3"
	"impressions/internal/domains/gallery/model"
	"impressions/internal/domains/gallery/model/dto"
	"impressions/internal/domains/gallery/repository"
	"impressions/shared"
	"impressions/shared/constant"
	gDto "impressions/shared/dto"
	"impressions/shared/failure"
	"impressions/shared/timezone"
)

type Gallery interface {
	List(ctx context.Context) ([]dto.GalleryImageResponse, error)
	ListFeatured(ctx context.Context) ([]dto.GalleryImageResponse, error)
	ListByCategory(ctx context.Context, category model.Category) ([]dto.GalleryImageResponse, error)
	Save(ctx context.Context, req dto.SaveGalleryImageRequest) (string, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo repository.Gallery
	otel otel.Otel
	s3   s3.S3
}

func New(repo repository.Gallery, otel otel.Otel, s3 s3.S3) Gallery {
	return &serviceImpl{
		repo: repo,
		otel: otel,
		s3:   s3,
	}
}

func (s *serviceImpl) list(ctx context.Context, filter gDto.FilterGroup) ([]dto.GalleryImageResponse, error) {
	images, err := s.repo.GetAll(ctx, gDto.OrderBy(model.FieldOrder, gDto.SortDirAsc), filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to list gallery images")

		return []dto.GalleryImageResponse{}, fmt.Errorf("failed to list gallery images: %w", err)
	}

	slices.SortStableFunc(images, func(a, b model.GalleryImage) int {
		return cmp.Compare(a.Order, b.Order)
	})

	return dto.FromModels(images), nil
}

func (s *serviceImpl) List(ctx context.Context) (res []dto.GalleryImageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".gallery.List")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.list(ctx, gDto.FilterGroup{})
}

func (s *serviceImpl) ListFeatured(ctx context.Context) (res []dto.GalleryImageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".gallery.ListFeatured")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.list(ctx, gDto.And(gDto.Eq(model.TableName, model.FieldFeatured, true)))
}

// ListByCategory lists one category. CategoryAll and the empty category list everything.
func (s *serviceImpl) ListByCategory(ctx context.Context, category model.Category) (res []dto.GalleryImageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".gallery.ListByCategory")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(model.FieldCategory, string(category))

	if category == constant.Empty || category == model.CategoryAll {
		return s.list(ctx, gDto.FilterGroup{})
	}

	if !category.IsValid() {
		return []dto.GalleryImageResponse{}, failure.BadRequestFromString(fmt.Sprintf("unknown gallery category %q", category))
	}

	return s.list(ctx, gDto.And(gDto.Eq(model.TableName, model.FieldCategory, category)))
}

// Save creates the image when req.ID is empty and otherwise replaces the stored record.
func (s *serviceImpl) Save(ctx context.Context, req dto.SaveGalleryImageRequest) (id string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".gallery.Save")
	defer scope.End()
	defer scope.TraceIfError(err)

	user := shared.UserFromContext(ctx)
	now := timezone.Now()

	if req.ID == constant.Empty {
		record := req.ToModel(uuid.NewString(), user, now)

		if err = s.repo.Insert(ctx, record); err != nil {
			log.Error().Err(err).Msg("failed to create gallery image")

			return constant.Empty, fmt.Errorf("failed to create gallery image: %w", err)
		}

		return record.ID, nil
	}

	filter := shared.FilterByID(req.ID, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Str("id", req.ID).Msg("failed to check gallery image existence")

		return constant.Empty, fmt.Errorf("failed to check gallery image: %w", err)
	}

	if !exist {
		return constant.Empty, failure.NotFound(model.EntityName + " not found")
	}

	fields := shared.RecordFields(req.ToModel(req.ID, user, now), user, model.FieldID)
	if err = s.repo.Update(ctx, fields, filter); err != nil {
		log.Error().Err(err).Str("id", req.ID).Msg("failed to update gallery image")

		return constant.Empty, fmt.Errorf("failed to update gallery image: %w", err)
	}

	return req.ID, nil
}

// Delete removes the record, then the uploaded object behind it when the image lives in the bucket.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".gallery.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	image, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to get gallery image")

		return fmt.Errorf("failed to get gallery image: %w", err)
	}

	if image.ID == constant.Empty {
		return failure.NotFound(model.EntityName + " not found")
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to delete gallery image")

		return fmt.Errorf("failed to delete gallery image: %w", err)
	}

	objectKey := s.s3.GetObjectNameFromURL(image.ImagePath)
	if objectKey == constant.Empty {
		return nil
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.s3.DeleteFile(c, objectKey); err != nil {
			log.Error().Err(err).Str("key", objectKey).Msg("failed to delete gallery object from S3")
		}
	}()

	return nil
}
