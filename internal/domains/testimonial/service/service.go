package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Testimonial=MockTestimonialService

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"impressions/infras/otel"
	"impressions/internal/domains/testimonial/model"
	"impressions/internal/domains/testimonial/model/dto"
	"impressions/internal/domains/testimonial/repository"
	"impressions/shared"
	"impressions/shared/constant"
	gDto "impressions/shared/dto"
	"impressions/shared/failure"
	"impressions/shared/timezone"
)

type Testimonial interface {
	List(ctx context.Context) ([]dto.TestimonialResponse, error)
	ListActive(ctx context.Context) ([]dto.TestimonialResponse, error)
	Save(ctx context.Context, req dto.SaveTestimonialRequest) (string, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo repository.Testimonial
	otel otel.Otel
}

func New(repo repository.Testimonial, otel otel.Otel) Testimonial {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) list(ctx context.Context, filter gDto.FilterGroup) ([]dto.TestimonialResponse, error) {
	testimonials, err := s.repo.GetAll(ctx, gDto.OrderBy(model.FieldOrder, gDto.SortDirAsc), filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to list testimonials")

		return []dto.TestimonialResponse{}, fmt.Errorf("failed to list testimonials: %w", err)
	}

	slices.SortStableFunc(testimonials, func(a, b model.Testimonial) int {
		return cmp.Compare(a.Order, b.Order)
	})

	return dto.FromModels(testimonials), nil
}

// List returns every testimonial, inactive ones included.
func (s *serviceImpl) List(ctx context.Context) (res []dto.TestimonialResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".testimonial.List")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.list(ctx, gDto.FilterGroup{})
}

func (s *serviceImpl) ListActive(ctx context.Context) (res []dto.TestimonialResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".testimonial.ListActive")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.list(ctx, gDto.And(gDto.Eq(model.TableName, model.FieldActive, true)))
}

func (s *serviceImpl) Save(ctx context.Context, req dto.SaveTestimonialRequest) (id string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".testimonial.Save")
	defer scope.End()
	defer scope.TraceIfError(err)

	user := shared.UserFromContext(ctx)
	now := timezone.Now()

	if req.ID == constant.Empty {
		record := req.ToModel(uuid.NewString(), user, now)

		if err = s.repo.Insert(ctx, record); err != nil {
			log.Error().Err(err).Msg("failed to create testimonial")

			return constant.Empty, fmt.Errorf("failed to create testimonial: %w", err)
		}

		return record.ID, nil
	}

	filter := shared.FilterByID(req.ID, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Str("id", req.ID).Msg("failed to check testimonial existence")

		return constant.Empty, fmt.Errorf("failed to check testimonial: %w", err)
	}

	if !exist {
		return constant.Empty, failure.NotFound(model.EntityName + " not found")
	}

	fields := shared.RecordFields(req.ToModel(req.ID, user, now), user, model.FieldID)
	if err = s.repo.Update(ctx, fields, filter); err != nil {
		log.Error().Err(err).Str("id", req.ID).Msg("failed to update testimonial")

		return constant.Empty, fmt.Errorf("failed to update testimonial: %w", err)
	}

	return req.ID, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".testimonial.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to check testimonial existence")

		return fmt.Errorf("failed to check testimonial: %w", err)
	}

	if !exist {
		return failure.NotFound(model.EntityName + " not found")
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to delete testimonial")

		return fmt.Errorf("failed to delete testimonial: %w", err)
	}

	return nil
}
