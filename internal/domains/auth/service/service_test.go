package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"impressions/config"
	"impressions/infras/jwt"
	jwtMocks "impressions/infras/jwt/mocks"
	"impressions/infras/otel/mocks"
	"impressions/internal/domains/auth/model/dto"
	"impressions/internal/domains/auth/service"
	userMocks "impressions/internal/domains/user/mocks"
	userModel "impressions/internal/domains/user/model"
	"impressions/shared/cache"
	cacheMocks "impressions/shared/cache/mocks"
	"impressions/shared/constant"
	gDto "impressions/shared/dto"
	"impressions/shared/failure"
	"impressions/shared/password"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT.AccessExpireMin = 60

	return cfg
}

func adminUser(t *testing.T, plain string) userModel.AdminUser {
	t.Helper()

	hash, err := password.Hash(plain)
	require.NoError(t, err)

	return userModel.AdminUser{ID: "admin-1", Username: "studio-admin", PasswordHash: hash, Role: constant.RoleAdmin}
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	svc := service.New(mockUserRepo, testConfig(), mocks.NewOtel(), mockJWT, mockCache)

	validUser := adminUser(t, "correct horse battery")
	token := &jwt.Token{AccessToken: "signed-token", TokenID: "tok-1", TokenType: "Bearer", ExpiresIn: 3600}

	tests := []struct {
		name      string
		req       dto.LoginRequest
		setupMock func()
		wantFail  error
		wantErr   bool
	}{
		{
			name: "successful login stores the session",
			req:  dto.LoginRequest{Username: "studio-admin", Password: "correct horse battery"},
			setupMock: func() {
				mockUserRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(validUser, nil)
				mockJWT.EXPECT().Generate(validUser.ID, validUser.Username, validUser.Role).Return(token, nil)
				mockCache.EXPECT().Save(gomock.Any(), "session:admin-1:tok-1", gomock.Any(), 3600).DoAndReturn(func(_ context.Context, _ string, value any, _ int) error {
					session, ok := value.(dto.Session)
					assert.True(t, ok)
					assert.Equal(t, "admin-1", session.UserID)

					return nil
				})
				mockUserRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
					assert.Contains(t, fields, userModel.FieldLastLogin)

					return nil
				})
			},
		},
		{
			name: "unknown user",
			req:  dto.LoginRequest{Username: "nobody", Password: "whatever"},
			setupMock: func() {
				mockUserRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.AdminUser{}, nil)
			},
			wantFail: failure.AuthenticationFailure,
		},
		{
			name: "wrong password",
			req:  dto.LoginRequest{Username: "studio-admin", Password: "wrong"},
			setupMock: func() {
				mockUserRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(validUser, nil)
			},
			wantFail: failure.AuthenticationFailure,
		},
		{
			name: "user lookup fails",
			req:  dto.LoginRequest{Username: "studio-admin", Password: "correct horse battery"},
			setupMock: func() {
				mockUserRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.AdminUser{}, errors.New("connection refused"))
			},
			wantErr: true,
		},
		{
			name: "session store unavailable",
			req:  dto.LoginRequest{Username: "studio-admin", Password: "correct horse battery"},
			setupMock: func() {
				mockUserRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(validUser, nil)
				mockJWT.EXPECT().Generate(gomock.Any(), gomock.Any(), gomock.Any()).Return(token, nil)
				mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis down"))
			},
			wantErr: true,
		},
		{
			name: "token generation error",
			req:  dto.LoginRequest{Username: "studio-admin", Password: "correct horse battery"},
			setupMock: func() {
				mockUserRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(validUser, nil)
				mockJWT.EXPECT().Generate(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("missing secret"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Login(context.Background(), tt.req)

			switch {
			case tt.wantFail != nil:
				assert.ErrorIs(t, err, tt.wantFail)
			case tt.wantErr:
				assert.Error(t, err)
			default:
				require.NoError(t, err)
				assert.Equal(t, "signed-token", res.AccessToken)
				assert.Equal(t, "Bearer", res.TokenType)
			}
		})
	}
}

func TestAuthService_IsAuthenticated(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)
	client, redisMock := redismock.NewClientMock()

	svc := service.New(mockUserRepo, testConfig(), mocks.NewOtel(), mockJWT, cache.NewRedisCache(client, mocks.NewOtel()))

	claims := &jwt.Claims{UserID: "admin-1", Username: "studio-admin", TokenID: "tok-1"}
	sessionJSON := `{"user_id":"admin-1","username":"studio-admin","role":"admin","issued_at":"2024-06-01T10:00:00Z"}`

	tests := []struct {
		name      string
		token     string
		setupMock func()
		want      bool
		wantErr   bool
	}{
		{
			name:  "live session",
			token: "signed-token",
			setupMock: func() {
				mockJWT.EXPECT().Validate("signed-token").Return(claims, nil)
				redisMock.ExpectGet("session:admin-1:tok-1").SetVal(sessionJSON)
				mockUserRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.AdminUser{ID: "admin-1", Username: "studio-admin"}, nil)
			},
			want: true,
		},
		{
			name:  "token still signed but session revoked on the backend",
			token: "signed-token",
			setupMock: func() {
				mockJWT.EXPECT().Validate("signed-token").Return(claims, nil)
				redisMock.ExpectGet("session:admin-1:tok-1").RedisNil()
			},
			want: false,
		},
		{
			name:  "user deleted after login",
			token: "signed-token",
			setupMock: func() {
				mockJWT.EXPECT().Validate("signed-token").Return(claims, nil)
				redisMock.ExpectGet("session:admin-1:tok-1").SetVal(sessionJSON)
				mockUserRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.AdminUser{}, nil)
			},
			want: false,
		},
		{
			name:  "expired or tampered token",
			token: "garbage",
			setupMock: func() {
				mockJWT.EXPECT().Validate("garbage").Return(nil, jwt.ErrInvalidToken)
			},
			want: false,
		},
		{
			name:      "no token at all",
			setupMock: func() {},
			want:      false,
		},
		{
			name:  "session store unreachable",
			token: "signed-token",
			setupMock: func() {
				mockJWT.EXPECT().Validate("signed-token").Return(claims, nil)
				redisMock.ExpectGet("session:admin-1:tok-1").SetErr(errors.New("i/o timeout"))
			},
			want:    false,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ok, err := svc.IsAuthenticated(context.Background(), tt.token)

			assert.Equal(t, tt.want, ok)
			assert.Equal(t, tt.wantErr, err != nil)
			assert.NoError(t, redisMock.ExpectationsWereMet())
		})
	}
}

func TestAuthService_CurrentUser(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	svc := service.New(mockUserRepo, testConfig(), mocks.NewOtel(), mockJWT, mockCache)

	mockJWT.EXPECT().Validate("signed-token").Return(&jwt.Claims{UserID: "admin-1", TokenID: "tok-1"}, nil)
	mockCache.EXPECT().Get(gomock.Any(), "session:admin-1:tok-1", gomock.Any()).Return(nil)
	mockUserRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.AdminUser{ID: "admin-1", Username: "studio-admin", Role: constant.RoleAdmin}, nil)

	current, err := svc.CurrentUser(context.Background(), "signed-token")

	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, "studio-admin", current.Username)
	assert.Equal(t, "tok-1", current.TokenID)

	mockJWT.EXPECT().Validate("expired").Return(nil, jwt.ErrExpiredToken)

	current, err = svc.CurrentUser(context.Background(), "expired")

	assert.NoError(t, err)
	assert.Nil(t, current)
}

func TestAuthService_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockJWT := jwtMocks.NewMockJWT(ctrl)
	client, redisMock := redismock.NewClientMock()

	svc := service.New(userMocks.NewMockUser(ctrl), testConfig(), mocks.NewOtel(), mockJWT, cache.NewRedisCache(client, mocks.NewOtel()))

	mockJWT.EXPECT().Validate("signed-token").Return(&jwt.Claims{UserID: "admin-1", TokenID: "tok-1"}, nil)
	redisMock.ExpectDel("session:admin-1:tok-1").SetVal(1)

	require.NoError(t, svc.Logout(context.Background(), "signed-token"))

	mockJWT.EXPECT().Validate("stale").Return(nil, jwt.ErrExpiredToken)

	assert.NoError(t, svc.Logout(context.Background(), "stale"), "logging out twice is harmless")
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestAuthService_LogoutAll(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	svc := service.New(mockUserRepo, testConfig(), mocks.NewOtel(), mockJWT, mockCache)

	mockJWT.EXPECT().Validate("signed-token").Return(&jwt.Claims{UserID: "admin-1", TokenID: "tok-1"}, nil)
	mockCache.EXPECT().Get(gomock.Any(), "session:admin-1:tok-1", gomock.Any()).Return(nil)
	mockUserRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.AdminUser{ID: "admin-1"}, nil)
	mockCache.EXPECT().Clear(gomock.Any(), "session:admin-1:").Return(nil)

	require.NoError(t, svc.LogoutAll(context.Background(), "signed-token"))

	mockJWT.EXPECT().Validate("stale").Return(nil, jwt.ErrExpiredToken)

	err := svc.LogoutAll(context.Background(), "stale")
	assert.ErrorIs(t, err, failure.SessionInvalid)
}

func TestSessionKey(t *testing.T) {
	assert.Equal(t, "session:admin-1:tok-1", service.SessionKey("admin-1", "tok-1"))
}
