package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"impressions/infras/otel"
	"impressions/infras/postgres"
	"impressions/internal/domains/user/model"
	gDto "impressions/shared/dto"
	gRepo "impressions/shared/repository"
)

type User interface {
	Insert(ctx context.Context, record model.AdminUser) error
	InsertBulk(ctx context.Context, records []model.AdminUser) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.AdminUser, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.AdminUser, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, fields map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.AdminUser]
}

func New(db *postgres.Connection, otel otel.Otel) User {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.AdminUser](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
