package services_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"impressions/infras/otel/mocks"
	servicesMocks "impressions/internal/domains/services/mocks"
	"impressions/internal/domains/services/model/dto"
	"impressions/internal/handlers/services"
)

func TestHandler_Services(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := servicesMocks.NewMockServiceService(ctrl)

	handler := services.New(mockService, mocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	tests := []struct {
		name       string
		method     string
		target     string
		body       string
		setupMock  func()
		wantStatus int
	}{
		{
			name:   "list every service",
			method: http.MethodGet,
			target: "/services",
			setupMock: func() {
				mockService.EXPECT().List(gomock.Any()).Return([]dto.ServiceResponse{}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "list active services",
			method: http.MethodGet,
			target: "/services?active=true",
			setupMock: func() {
				mockService.EXPECT().ListActive(gomock.Any()).Return([]dto.ServiceResponse{}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "create",
			method: http.MethodPost,
			target: "/services",
			body:   `{"title":"3D hand casting","active":true}`,
			setupMock: func() {
				mockService.EXPECT().Save(gomock.Any(), dto.SaveServiceRequest{Title: "3D hand casting", Active: true}).Return("svc-1", nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "title required",
			method:     http.MethodPost,
			target:     "/services",
			body:       `{"description":"no title"}`,
			setupMock:  func() {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "delete",
			method: http.MethodDelete,
			target: "/services/svc-1",
			setupMock: func() {
				mockService.EXPECT().Delete(gomock.Any(), "svc-1").Return(nil)
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantStatus, recorder.Code)
		})
	}
}
