package inquiry_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"impressions/infras/otel/mocks"
	inquiryMocks "impressions/internal/domains/inquiry/mocks"
	"impressions/internal/domains/inquiry/model"
	"impressions/internal/domains/inquiry/model/dto"
	"impressions/internal/handlers/inquiry"
	"impressions/shared/failure"
)

func newRouter(t *testing.T) (*chi.Mux, *inquiryMocks.MockInquiryService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockService := inquiryMocks.NewMockInquiryService(ctrl)

	handler := inquiry.New(mockService, mocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return router, mockService
}

func TestHandler_CreateInquiry(t *testing.T) {
	router, mockService := newRouter(t)

	tests := []struct {
		name       string
		body       string
		setupMock  func()
		wantStatus int
	}{
		{
			name: "valid enquiry",
			body: `{"name":"Asha","phone":"+91 98450 00000","message":"Framed set for twins?","service":"Framed"}`,
			setupMock: func() {
				mockService.EXPECT().Create(gomock.Any(), dto.CreateInquiryRequest{
					Name:    "Asha",
					Phone:   "+91 98450 00000",
					Message: "Framed set for twins?",
					Service: "Framed",
				}).Return("inq-1", nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "status in the body is ignored",
			body: `{"name":"Asha","phone":"+91 98450 00000","message":"Already booked?","status":"booked"}`,
			setupMock: func() {
				mockService.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, req dto.CreateInquiryRequest) (string, error) {
					assert.Equal(t, dto.CreateInquiryRequest{Name: "Asha", Phone: "+91 98450 00000", Message: "Already booked?"}, req)
					assert.Equal(t, model.StatusNew, req.ToModel("inq-2", "system", time.Now()).Status)

					return "inq-2", nil
				})
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "missing phone",
			body:       `{"name":"Asha","message":"hello"}`,
			setupMock:  func() {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed email",
			body:       `{"name":"Asha","phone":"123","email":"not-an-email","message":"hello"}`,
			setupMock:  func() {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/inquiries", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantStatus, recorder.Code)
		})
	}
}

func TestHandler_GetInquiries(t *testing.T) {
	router, mockService := newRouter(t)

	stored := []dto.InquiryResponse{
		{ID: "a", Status: model.StatusNew},
		{ID: "b", Status: model.StatusBooked},
		{ID: "c", Status: model.StatusNew},
	}

	tests := []struct {
		name       string
		target     string
		setupMock  func()
		wantStatus int
		wantIDs    []string
	}{
		{
			name:   "no filter",
			target: "/inquiries",
			setupMock: func() {
				mockService.EXPECT().List(gomock.Any()).Return(stored, nil)
			},
			wantStatus: http.StatusOK,
			wantIDs:    []string{"a", "b", "c"},
		},
		{
			name:   "filter new",
			target: "/inquiries?status=new",
			setupMock: func() {
				mockService.EXPECT().List(gomock.Any()).Return(stored, nil)
			},
			wantStatus: http.StatusOK,
			wantIDs:    []string{"a", "c"},
		},
		{
			name:   "filter all",
			target: "/inquiries?status=all",
			setupMock: func() {
				mockService.EXPECT().List(gomock.Any()).Return(stored, nil)
			},
			wantStatus: http.StatusOK,
			wantIDs:    []string{"a", "b", "c"},
		},
		{
			name:       "unknown status",
			target:     "/inquiries?status=archived",
			setupMock:  func() {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, tt.target, nil))

			require.Equal(t, tt.wantStatus, recorder.Code)

			if tt.wantIDs == nil {
				return
			}

			var body struct {
				Data []dto.InquiryResponse `json:"data"`
			}
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))

			ids := make([]string, 0, len(body.Data))
			for _, item := range body.Data {
				ids = append(ids, item.ID)
			}

			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestHandler_UpdateStatus(t *testing.T) {
	router, mockService := newRouter(t)

	tests := []struct {
		name       string
		id         string
		body       string
		setupMock  func()
		wantStatus int
	}{
		{
			name: "booked with notes",
			id:   "inq-1",
			body: `{"status":"booked","notes":"Sunday 11am"}`,
			setupMock: func() {
				mockService.EXPECT().UpdateStatus(gomock.Any(), "inq-1", gomock.Any()).
					DoAndReturn(func(_ any, _ string, req dto.UpdateInquiryStatusRequest) error {
						assert.Equal(t, model.StatusBooked, req.Status)
						assert.Equal(t, "Sunday 11am", *req.Notes)

						return nil
					})
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "status outside the lifecycle",
			id:         "inq-1",
			body:       `{"status":"archived"}`,
			setupMock:  func() {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "missing enquiry",
			id:   "gone",
			body: `{"status":"contacted"}`,
			setupMock: func() {
				mockService.EXPECT().UpdateStatus(gomock.Any(), "gone", gomock.Any()).Return(failure.NotFound(model.EntityName + " not found"))
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPatch, "/inquiries/"+tt.id+"/status", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantStatus, recorder.Code)
		})
	}
}
