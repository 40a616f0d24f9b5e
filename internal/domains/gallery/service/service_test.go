package service_test

import (
	"context"
	"errors"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"impressions/infras/otel/mocks"
	s3Mocks "impressions/infras/s3/mocks"
	galleryMocks "impressions/internal/domains/gallery/mocks"
	"impressions/internal/domains/gallery/model"
	"impressions/internal/domains/gallery/model/dto"
	"impressions/internal/domains/gallery/service"
	"impressions/shared/constant"
	gDto "impressions/shared/dto"
	"impressions/shared/failure"
)

func TestGalleryService_List(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockRepo := galleryMocks.NewMockGallery(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel(), s3Mocks.NewMockS3(ctrl))

	tests := []struct {
		name      string
		setupMock func()
		wantIDs   []string
		wantErr   bool
	}{
		{
			name: "sorted ascending by order, ties keep backend order",
			setupMock: func() {
				mockRepo.EXPECT().
					GetAll(gomock.Any(), gDto.OrderBy(model.FieldOrder, gDto.SortDirAsc), gDto.FilterGroup{}).
					Return([]model.GalleryImage{
						{ID: "c", Order: 5},
						{ID: "a", Order: 0},
						{ID: "b1", Order: 2},
						{ID: "b2", Order: 2},
					}, nil)
			},
			wantIDs: []string{"a", "b1", "b2", "c"},
		},
		{
			name: "empty collection",
			setupMock: func() {
				mockRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
			},
			wantIDs: []string{},
		},
		{
			name: "backend rejects the query",
			setupMock: func() {
				mockRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("connection refused"))
			},
			wantIDs: []string{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.List(context.Background())

			assert.Equal(t, tt.wantErr, err != nil)
			require.NotNil(t, res)

			ids := make([]string, 0, len(res))
			for _, image := range res {
				ids = append(ids, image.ID)
			}

			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestGalleryService_ListFeatured(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockRepo := galleryMocks.NewMockGallery(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel(), s3Mocks.NewMockS3(ctrl))

	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gDto.And(gDto.Eq(model.TableName, model.FieldFeatured, true))).
		Return([]model.GalleryImage{{ID: "f", Featured: true}}, nil)

	res, err := svc.ListFeatured(context.Background())

	require.NoError(t, err)
	assert.Len(t, res, 1)
}

func TestGalleryService_ListByCategory(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockRepo := galleryMocks.NewMockGallery(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel(), s3Mocks.NewMockS3(ctrl))

	tests := []struct {
		name       string
		category   model.Category
		setupMock  func()
		wantStatus int
	}{
		{
			name:     "all categories",
			category: model.CategoryAll,
			setupMock: func() {
				mockRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gDto.FilterGroup{}).Return(nil, nil)
			},
		},
		{
			name:     "single category",
			category: model.CategoryPremium,
			setupMock: func() {
				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gDto.And(gDto.Eq(model.TableName, model.FieldCategory, model.CategoryPremium))).
					Return([]model.GalleryImage{{ID: "p", Category: model.CategoryPremium}}, nil)
			},
		},
		{
			name:       "unknown category",
			category:   "Gold",
			setupMock:  func() {},
			wantStatus: 400,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			_, err := svc.ListByCategory(context.Background(), tt.category)

			if tt.wantStatus == 0 {
				assert.NoError(t, err)

				return
			}

			assert.True(t, failure.IsCode(err, tt.wantStatus))
		})
	}
}

func TestGalleryService_Save(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockRepo := galleryMocks.NewMockGallery(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel(), s3Mocks.NewMockS3(ctrl))

	req := dto.SaveGalleryImageRequest{
		Title:     "Twin keepsake",
		Category:  model.CategorySpecial,
		ImagePath: "https://cdn.example.com/uploads/impression-1.jpg",
		Order:     4,
	}

	tests := []struct {
		name      string
		id        string
		setupMock func()
		wantID    string
		wantErr   bool
	}{
		{
			name: "create assigns an id",
			setupMock: func() {
				mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, record model.GalleryImage) error {
					assert.NotEmpty(t, record.ID)
					assert.Equal(t, "studio", record.CreatedBy)

					return nil
				})
			},
		},
		{
			name: "update replaces the whole record",
			id:   "img-1",
			setupMock: func() {
				mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				mockRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, fields map[string]any, filter gDto.FilterGroup) error {
					id, _ := filter.FieldValue(model.FieldID)
					assert.Equal(t, "img-1", id)
					assert.Equal(t, false, fields[model.FieldFeatured])
					assert.Equal(t, 4, fields[model.FieldOrder])
					assert.NotContains(t, fields, model.FieldID)
					assert.NotContains(t, fields, constant.FieldCreatedAt)

					return nil
				})
			},
			wantID: "img-1",
		},
		{
			name: "update of a missing record",
			id:   "gone",
			setupMock: func() {
				mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantErr: true,
		},
		{
			name: "insert failure",
			setupMock: func() {
				mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("insert failed"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUsername, "studio")
			saveReq := req
			saveReq.ID = tt.id

			id, err := svc.Save(ctx, saveReq)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Empty(t, id)

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

func TestGalleryService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockRepo := galleryMocks.NewMockGallery(ctrl)
	mockS3 := s3Mocks.NewMockS3(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel(), mockS3)

	tests := []struct {
		name        string
		setupMock   func(removed chan struct{})
		wantErr     bool
		wantRemoved bool
	}{
		{
			name: "removes the uploaded object",
			setupMock: func(removed chan struct{}) {
				mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.GalleryImage{ID: "img-1", ImagePath: "https://cdn.example.com/uploads/a.png"}, nil)
				mockRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
				mockS3.EXPECT().GetObjectNameFromURL("https://cdn.example.com/uploads/a.png").Return("uploads/a.png")
				mockS3.EXPECT().DeleteFile(gomock.Any(), "uploads/a.png").DoAndReturn(func(context.Context, string) error {
					close(removed)

					return nil
				})
			},
			wantRemoved: true,
		},
		{
			name: "external image is left alone",
			setupMock: func(chan struct{}) {
				mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.GalleryImage{ID: "img-2", ImagePath: "/gallery/impression-2.jpg"}, nil)
				mockRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
				mockS3.EXPECT().GetObjectNameFromURL(gomock.Any()).Return("")
			},
		},
		{
			name: "not found",
			setupMock: func(chan struct{}) {
				mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.GalleryImage{}, nil)
			},
			wantErr: true,
		},
		{
			name: "delete failure",
			setupMock: func(chan struct{}) {
				mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.GalleryImage{ID: "img-3"}, nil)
				mockRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(errors.New("locked"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			removed := make(chan struct{})
			tt.setupMock(removed)

			err := svc.Delete(context.Background(), "img")

			assert.Equal(t, tt.wantErr, err != nil)

			if tt.wantRemoved {
				select {
				case <-removed:
				case <-time.After(time.Second):
					t.Fatal("uploaded object was not removed")
				}
			}
		})
	}
}

// memoryGallery is an in-memory backend used to check Save and List together.
type memoryGallery struct {
	mu      sync.Mutex
	records []model.GalleryImage
}

func (m *memoryGallery) index(filter gDto.FilterGroup) int {
	id, _ := filter.FieldValue(model.FieldID)

	return slices.IndexFunc(m.records, func(r model.GalleryImage) bool { return r.ID == id })
}

func (m *memoryGallery) Insert(_ context.Context, record model.GalleryImage) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.records = append(m.records, record)

	return nil
}

func (m *memoryGallery) InsertBulk(ctx context.Context, records []model.GalleryImage) error {
	for _, record := range records {
		_ = m.Insert(ctx, record)
	}

	return nil
}

func (m *memoryGallery) Get(_ context.Context, filter gDto.FilterGroup, _ ...string) (model.GalleryImage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if i := m.index(filter); i >= 0 {
		return m.records[i], nil
	}

	return model.GalleryImage{}, nil
}

func (m *memoryGallery) GetAll(_ context.Context, _ gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.GalleryImage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return slices.Clone(m.records), nil
}

func (m *memoryGallery) Exist(_ context.Context, filter gDto.FilterGroup) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.index(filter) >= 0, nil
}

func (m *memoryGallery) Count(context.Context, gDto.FilterGroup) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.records), nil
}

func (m *memoryGallery) Update(_ context.Context, fields map[string]any, filter gDto.FilterGroup) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.index(filter)
	if i < 0 {
		return nil
	}

	record := &m.records[i]
	record.Title, _ = fields[model.FieldTitle].(string)
	record.Category, _ = fields[model.FieldCategory].(model.Category)
	record.ImagePath, _ = fields[model.FieldImagePath].(string)
	record.Featured, _ = fields[model.FieldFeatured].(bool)
	record.Order, _ = fields[model.FieldOrder].(int)

	return nil
}

func (m *memoryGallery) Delete(_ context.Context, filter gDto.FilterGroup) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if i := m.index(filter); i >= 0 {
		m.records = slices.Delete(m.records, i, i+1)
	}

	return nil
}

func TestGalleryService_SaveThenList(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := service.New(&memoryGallery{}, mocks.NewOtel(), s3Mocks.NewMockS3(ctrl))
	ctx := context.Background()

	id, err := svc.Save(ctx, dto.SaveGalleryImageRequest{Title: "Tiny feet", Category: model.CategoryFramed, ImagePath: "/a.jpg", Order: 2})
	require.NoError(t, err)

	_, err = svc.Save(ctx, dto.SaveGalleryImageRequest{Title: "Heart frame", Category: model.CategoryFramed, ImagePath: "/b.jpg", Order: 1})
	require.NoError(t, err)

	listed, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, "Heart frame", listed[0].Title)
	assert.Equal(t, id, listed[1].ID)

	edit := listed[1].ToRequest()
	edit.Title = "Tiny feet, framed"
	edit.Featured = true

	sameID, err := svc.Save(ctx, edit)
	require.NoError(t, err)
	assert.Equal(t, id, sameID)

	listed, err = svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 2, "update happens in place")
	assert.Equal(t, "Tiny feet, framed", listed[1].Title)
	assert.True(t, listed[1].Featured)
}
