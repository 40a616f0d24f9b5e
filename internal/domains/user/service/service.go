package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=User=MockUserService

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"impressions/infras/otel"
	"impressions/internal/domains/user/model"
	"impressions/internal/domains/user/model/dto"
	"impressions/internal/domains/user/repository"
	"impressions/shared"
	"impressions/shared/constant"
	gDto "impressions/shared/dto"
	"impressions/shared/failure"
	"impressions/shared/password"
	"impressions/shared/timezone"
	"impressions/shared/validator"
)

type User interface {
	EnsureAdmin(ctx context.Context, req dto.EnsureAdminRequest) (created bool, err error)
	Get(ctx context.Context, id string) (dto.AdminUserResponse, error)
}

type serviceImpl struct {
	repo repository.User
	otel otel.Otel
}

func New(repo repository.User, otel otel.Otel) User {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

// EnsureAdmin creates the admin account, or resets its password when the
// username already exists.
func (s *serviceImpl) EnsureAdmin(ctx context.Context, req dto.EnsureAdminRequest) (created bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".user.EnsureAdmin")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		return false, err //nolint:wrapcheck
	}

	hashedPassword, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return false, fmt.Errorf("failed to hash password: %w", err)
	}

	filter := gDto.And(gDto.Eq(model.TableName, model.FieldUsername, req.Username))

	existing, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Str("username", req.Username).Msg("failed to get admin user")

		return false, fmt.Errorf("failed to get admin user: %w", err)
	}

	user := shared.UserFromContext(ctx)

	if existing.ID == constant.Empty {
		if err = s.repo.Insert(ctx, req.ToModel(uuid.NewString(), hashedPassword, user, timezone.Now())); err != nil {
			log.Error().Err(err).Str("username", req.Username).Msg("failed to create admin user")

			return false, fmt.Errorf("failed to create admin user: %w", err)
		}

		return true, nil
	}

	fields := shared.TransformFields(dto.UpdatePasswordRequest{PasswordHash: hashedPassword}, user)
	if err = s.repo.Update(ctx, fields, shared.FilterByID(existing.ID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Str("username", req.Username).Msg("failed to update admin password")

		return false, fmt.Errorf("failed to update admin password: %w", err)
	}

	return false, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.AdminUserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".user.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to get admin user")

		return res, fmt.Errorf("failed to get admin user: %w", err)
	}

	if user.ID == constant.Empty {
		return res, failure.NotFound(model.EntityName + " not found")
	}

	res.FromModel(user)

	return res, nil
}
