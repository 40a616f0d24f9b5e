package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Inquiry=MockInquiryService

import (
	"context"
	"fmt"
	"slices"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"impressions/config"
	"impressions/infras/kafka"
	"impressions/infras/otel"
	"impressions/internal/domains/inquiry/model"
	"impressions/internal/domains/inquiry/model/dto"
	"impressions/internal/domains/inquiry/repository"
	"impressions/shared"
	"impressions/shared/constant"
	gDto "impressions/shared/dto"
	"impressions/shared/failure"
	"impressions/shared/timezone"
)

type Inquiry interface {
	List(ctx context.Context) ([]dto.InquiryResponse, error)
	Create(ctx context.Context, req dto.CreateInquiryRequest) (string, error)
	UpdateStatus(ctx context.Context, id string, req dto.UpdateInquiryStatusRequest) error
}

type serviceImpl struct {
	repo   repository.Inquiry
	otel   otel.Otel
	kafka  kafka.Client
	config *config.Config
}

func New(repo repository.Inquiry, otel otel.Otel, kafka kafka.Client, config *config.Config) Inquiry {
	return &serviceImpl{
		repo:   repo,
		otel:   otel,
		kafka:  kafka,
		config: config,
	}
}

// List returns every enquiry, newest first.
func (s *serviceImpl) List(ctx context.Context) (res []dto.InquiryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".inquiry.List")
	defer scope.End()
	defer scope.TraceIfError(err)

	inquiries, err := s.repo.GetAll(ctx, gDto.OrderBy(model.FieldCreatedAt, gDto.SortDirDesc), gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to list inquiries")

		return []dto.InquiryResponse{}, fmt.Errorf("failed to list inquiries: %w", err)
	}

	slices.SortStableFunc(inquiries, func(a, b model.Inquiry) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	return dto.FromModels(inquiries), nil
}

// Create stores a public enquiry with status new and announces it on the
// inquiry-created topic. A failed publish does not fail the enquiry.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateInquiryRequest) (id string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".inquiry.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	record := req.ToModel(uuid.NewString(), shared.UserFromContext(ctx), timezone.Now())

	if err = s.repo.Insert(ctx, record); err != nil {
		log.Error().Err(err).Msg("failed to create inquiry")

		return constant.Empty, fmt.Errorf("failed to create inquiry: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		message := kafka.Message{Key: record.ID, Value: dto.NewInquiryCreatedEvent(record)}
		if err := s.kafka.SendMessages(c, s.config.Kafka.Topics.InquiryCreated, message); err != nil {
			log.Error().Err(err).Str("id", record.ID).Msg("failed to publish inquiry created event")
		}
	}()

	return record.ID, nil
}

// UpdateStatus patches status and, when given, notes. Other columns are never touched.
func (s *serviceImpl) UpdateStatus(ctx context.Context, id string, req dto.UpdateInquiryStatusRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".inquiry.UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !req.Status.IsValid() {
		return failure.BadRequestFromString(fmt.Sprintf("unknown inquiry status %q", req.Status))
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to check inquiry existence")

		return fmt.Errorf("failed to check inquiry: %w", err)
	}

	if !exist {
		return failure.NotFound(model.EntityName + " not found")
	}

	fields := shared.TransformFields(req.ToPatch(), shared.UserFromContext(ctx))
	if err = s.repo.Update(ctx, fields, filter); err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to update inquiry status")

		return fmt.Errorf("failed to update inquiry status: %w", err)
	}

	return nil
}
