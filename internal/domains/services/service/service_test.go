package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"impressions/infras/otel/mocks"
	serviceMocks "impressions/internal/domains/services/mocks"
	"impressions/internal/domains/services/model"
	"impressions/internal/domains/services/model/dto"
	"impressions/internal/domains/services/service"
	gDto "impressions/shared/dto"
	"impressions/shared/failure"
)

func TestServicesService_ListActive(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockRepo := serviceMocks.NewMockService(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	tests := []struct {
		name       string
		setupMock  func()
		wantTitles []string
		wantErr    bool
	}{
		{
			name: "only active services in display order",
			setupMock: func() {
				mockRepo.EXPECT().
					GetAll(gomock.Any(), gDto.OrderBy(model.FieldOrder, gDto.SortDirAsc), gDto.And(gDto.Eq(model.TableName, model.FieldActive, true))).
					Return([]model.Service{
						{ID: "2", Title: "Framing", Order: 3, Active: true},
						{ID: "1", Title: "3D casting", Order: 1, Active: true},
					}, nil)
			},
			wantTitles: []string{"3D casting", "Framing"},
		},
		{
			name: "backend unavailable",
			setupMock: func() {
				mockRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("dial tcp: timeout"))
			},
			wantTitles: []string{},
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.ListActive(context.Background())

			assert.Equal(t, tt.wantErr, err != nil)
			require.NotNil(t, res)

			titles := make([]string, 0, len(res))
			for _, item := range res {
				titles = append(titles, item.Title)
			}

			assert.Equal(t, tt.wantTitles, titles)
		})
	}
}

func TestServicesService_List(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockRepo := serviceMocks.NewMockService(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gDto.FilterGroup{}).
		Return([]model.Service{{ID: "1", Title: "Hidden", Active: false}}, nil)

	res, err := svc.List(context.Background())

	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.False(t, res[0].Active)
}

func TestServicesService_Save(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockRepo := serviceMocks.NewMockService(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	tests := []struct {
		name      string
		req       dto.SaveServiceRequest
		setupMock func()
		wantID    string
		wantCode  int
	}{
		{
			name: "create",
			req:  dto.SaveServiceRequest{Title: "Ink prints", Active: true},
			setupMock: func() {
				mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, record model.Service) error {
					assert.NotEmpty(t, record.ID)
					assert.Nil(t, record.Description)

					return nil
				})
			},
		},
		{
			name: "update clears the description",
			req:  dto.SaveServiceRequest{ID: "svc-1", Title: "Ink prints"},
			setupMock: func() {
				mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				mockRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
					assert.Contains(t, fields, model.FieldDescription)
					assert.Nil(t, fields[model.FieldDescription])
					assert.Equal(t, false, fields[model.FieldActive])

					return nil
				})
			},
			wantID: "svc-1",
		},
		{
			name: "update of a missing service",
			req:  dto.SaveServiceRequest{ID: "svc-9", Title: "Ink prints"},
			setupMock: func() {
				mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantCode: 404,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			id, err := svc.Save(context.Background(), tt.req)

			if tt.wantCode != 0 {
				assert.True(t, failure.IsCode(err, tt.wantCode))

				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, id)

			if tt.wantID != "" {
				assert.Equal(t, tt.wantID, id)
			}
		})
	}
}

func TestServicesService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockRepo := serviceMocks.NewMockService(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "deleted",
			setupMock: func() {
				mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				mockRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "not found",
			setupMock: func() {
				mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantErr: true,
		},
		{
			name: "backend error",
			setupMock: func() {
				mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				mockRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(errors.New("boom"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Delete(context.Background(), "svc-1")

			assert.Equal(t, tt.wantErr, err != nil)
		})
	}
}
