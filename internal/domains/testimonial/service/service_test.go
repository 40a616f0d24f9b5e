package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"impressions/infras/otel/mocks"
	testimonialMocks "impressions/internal/domains/testimonial/mocks"
	"impressions/internal/domains/testimonial/model"
	"impressions/internal/domains/testimonial/model/dto"
	"impressions/internal/domains/testimonial/service"
	gDto "impressions/shared/dto"
	"impressions/shared/failure"
)

func TestTestimonialService_ListActive(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockRepo := testimonialMocks.NewMockTestimonial(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	mockRepo.EXPECT().
		GetAll(gomock.Any(), gDto.OrderBy(model.FieldOrder, gDto.SortDirAsc), gDto.And(gDto.Eq(model.TableName, model.FieldActive, true))).
		Return([]model.Testimonial{
			{ID: "b", Name: "Sam", Rating: 4, Order: 2, Active: true},
			{ID: "a", Name: "Meera", Rating: 5, Order: 0, Active: true},
		}, nil)

	res, err := svc.ListActive(context.Background())

	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, "Meera", res[0].Name)
	assert.Equal(t, "Sam", res[1].Name)
}

func TestTestimonialService_Save(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockRepo := testimonialMocks.NewMockTestimonial(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	tests := []struct {
		name      string
		req       dto.SaveTestimonialRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "create with default rating",
			req:  dto.SaveTestimonialRequest{Name: "Anita", Location: "Pune", Message: "Beautiful work."},
			setupMock: func() {
				mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, record model.Testimonial) error {
					assert.Equal(t, model.DefaultRating, record.Rating)

					return nil
				})
			},
		},
		{
			name: "update keeps the chosen rating",
			req:  dto.SaveTestimonialRequest{ID: "t-1", Name: "Anita", Message: "Beautiful work.", Rating: 2},
			setupMock: func() {
				mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				mockRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
					assert.Equal(t, 2, fields[model.FieldRating])

					return nil
				})
			},
		},
		{
			name: "existence check fails",
			req:  dto.SaveTestimonialRequest{ID: "t-2", Name: "Anita", Message: "Beautiful work."},
			setupMock: func() {
				mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, errors.New("connection reset"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			id, err := svc.Save(context.Background(), tt.req)

			assert.Equal(t, tt.wantErr, err != nil)
			assert.Equal(t, tt.wantErr, id == "")
		})
	}
}

func TestTestimonialService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockRepo := testimonialMocks.NewMockTestimonial(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

	err := svc.Delete(context.Background(), "missing")

	assert.True(t, failure.IsCode(err, 404))
}
