package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Service=MockServiceService

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"impressions/infras/otel"
	"impressions/internal/domains/services/model"
	"impressions/internal/domains/services/model/dto"
	"impressions/internal/domains/services/repository"
	"impressions/shared"
	"impressions/shared/constant"
	gDto "impressions/shared/dto"
	"impressions/shared/failure"
	"impressions/shared/timezone"
)

type Service interface {
	List(ctx context.Context) ([]dto.ServiceResponse, error)
	ListActive(ctx context.Context) ([]dto.ServiceResponse, error)
	Save(ctx context.Context, req dto.SaveServiceRequest) (string, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo repository.Service
	otel otel.Otel
}

func New(repo repository.Service, otel otel.Otel) Service {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) list(ctx context.Context, filter gDto.FilterGroup) ([]dto.ServiceResponse, error) {
	services, err := s.repo.GetAll(ctx, gDto.OrderBy(model.FieldOrder, gDto.SortDirAsc), filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to list services")

		return []dto.ServiceResponse{}, fmt.Errorf("failed to list services: %w", err)
	}

	slices.SortStableFunc(services, func(a, b model.Service) int {
		return cmp.Compare(a.Order, b.Order)
	})

	return dto.FromModels(services), nil
}

// List returns every service, inactive ones included, for the admin panel.
func (s *serviceImpl) List(ctx context.Context) (res []dto.ServiceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".services.List")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.list(ctx, gDto.FilterGroup{})
}

func (s *serviceImpl) ListActive(ctx context.Context) (res []dto.ServiceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".services.ListActive")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.list(ctx, gDto.And(gDto.Eq(model.TableName, model.FieldActive, true)))
}

func (s *serviceImpl) Save(ctx context.Context, req dto.SaveServiceRequest) (id string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".services.Save")
	defer scope.End()
	defer scope.TraceIfError(err)

	user := shared.UserFromContext(ctx)
	now := timezone.Now()

	if req.ID == constant.Empty {
		record := req.ToModel(uuid.NewString(), user, now)

		if err = s.repo.Insert(ctx, record); err != nil {
			log.Error().Err(err).Msg("failed to create service")

			return constant.Empty, fmt.Errorf("failed to create service: %w", err)
		}

		return record.ID, nil
	}

	filter := shared.FilterByID(req.ID, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Str("id", req.ID).Msg("failed to check service existence")

		return constant.Empty, fmt.Errorf("failed to check service: %w", err)
	}

	if !exist {
		return constant.Empty, failure.NotFound(model.EntityName + " not found")
	}

	fields := shared.RecordFields(req.ToModel(req.ID, user, now), user, model.FieldID)
	if err = s.repo.Update(ctx, fields, filter); err != nil {
		log.Error().Err(err).Str("id", req.ID).Msg("failed to update service")

		return constant.Empty, fmt.Errorf("failed to update service: %w", err)
	}

	return req.ID, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".services.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to check service existence")

		return fmt.Errorf("failed to check service: %w", err)
	}

	if !exist {
		return failure.NotFound(model.EntityName + " not found")
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to delete service")

		return fmt.Errorf("failed to delete service: %w", err)
	}

	return nil
}
