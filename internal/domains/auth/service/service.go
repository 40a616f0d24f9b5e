package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"impressions/config"
	"impressions/infras/jwt"
	"impressions/infras/otel"
	"impressions/internal/domains/auth/model/dto"
	userModel "impressions/internal/domains/user/model"
	userRepo "impressions/internal/domains/user/repository"
	"impressions/shared"
	"impressions/shared/cache"
	"impressions/shared/constant"
	gDto "impressions/shared/dto"
	"impressions/shared/failure"
	"impressions/shared/password"
	"impressions/shared/timezone"
)

const sessionKeyPrefix = "session"

type Auth interface {
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	Logout(ctx context.Context, token string) error
	LogoutAll(ctx context.Context, token string) error
	IsAuthenticated(ctx context.Context, token string) (bool, error)
	CurrentUser(ctx context.Context, token string) (*dto.CurrentUser, error)
	Resolve(ctx context.Context, token string) (dto.CurrentUser, error)
}

type serviceImpl struct {
	userRepo   userRepo.User
	cfg        *config.Config
	otel       otel.Otel
	jwtService jwt.JWT
	cache      cache.RedisCache
}

func New(userRepo userRepo.User, cfg *config.Config, otel otel.Otel, jwt jwt.JWT, cache cache.RedisCache) Auth {
	return &serviceImpl{
		userRepo:   userRepo,
		cfg:        cfg,
		otel:       otel,
		jwtService: jwt,
		cache:      cache,
	}
}

func SessionKey(userID, tokenID string) string {
	return shared.BuildCacheKey(sessionKeyPrefix, userID, tokenID)
}

func sessionPrefix(userID string) string {
	return shared.BuildCacheKey(sessionKeyPrefix, userID) + ":"
}

func (s *serviceImpl) sessionTTL() int {
	return s.cfg.JWT.AccessExpireMin * constant.MinutesToSeconds
}

// Login verifies the credentials and opens a session. Unknown users and wrong
// passwords fail the same way.
func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth.Login")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.And(gDto.Eq(userModel.TableName, userModel.FieldUsername, req.Username))

	user, err := s.userRepo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get admin user")

		return res, fmt.Errorf("failed to get admin user: %w", err)
	}

	if user.ID == constant.Empty {
		return res, failure.AuthenticationFailure
	}

	if err = password.Verify(req.Password, user.PasswordHash); err != nil {
		if errors.Is(err, password.ErrInvalidPassword) {
			return res, failure.AuthenticationFailure
		}

		log.Error().Err(err).Msg("failed to verify password")

		return res, fmt.Errorf("failed to verify password: %w", err)
	}

	token, err := s.jwtService.Generate(user.ID, user.Username, user.Role)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate token")

		return res, fmt.Errorf("failed to generate token: %w", err)
	}

	now := timezone.Now()

	if err = s.cache.Save(ctx, SessionKey(user.ID, token.TokenID), dto.NewSession(user, now), s.sessionTTL()); err != nil {
		log.Error().Err(err).Msg("failed to store session")

		return res, failure.Unavailable(fmt.Errorf("failed to store session: %w", err))
	}

	lastLogin := shared.TransformFields(dto.UpdateLastLoginRequest{LastLogin: now}, user.Username)
	if err = s.userRepo.Update(ctx, lastLogin, shared.FilterByID(user.ID, userModel.FieldID, userModel.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update last login")

		return res, fmt.Errorf("failed to update last login: %w", err)
	}

	res.FromToken(token)

	return res, nil
}

// Logout revokes the session behind token. An already invalid token is not an error.
func (s *serviceImpl) Logout(ctx context.Context, token string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth.Logout")
	defer scope.End()
	defer scope.TraceIfError(err)

	claims, err := s.jwtService.Validate(token)
	if err != nil {
		return nil
	}

	if err = s.cache.Delete(ctx, SessionKey(claims.UserID, claims.TokenID)); err != nil {
		log.Error().Err(err).Str("user_id", claims.UserID).Msg("failed to revoke session")

		return fmt.Errorf("failed to revoke session: %w", err)
	}

	return nil
}

// LogoutAll revokes every session of the user owning token.
func (s *serviceImpl) LogoutAll(ctx context.Context, token string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth.LogoutAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	current, err := s.Resolve(ctx, token)
	if err != nil {
		return err
	}

	if err = s.cache.Clear(ctx, sessionPrefix(current.ID)); err != nil {
		log.Error().Err(err).Str("user_id", current.ID).Msg("failed to revoke sessions")

		return fmt.Errorf("failed to revoke sessions: %w", err)
	}

	return nil
}

// Resolve validates token against the session store and the user table. It
// returns failure.SessionInvalid when any of them rejects the token.
func (s *serviceImpl) Resolve(ctx context.Context, token string) (res dto.CurrentUser, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth.Resolve")
	defer scope.End()
	defer scope.TraceIfError(err)

	if token == constant.Empty {
		return res, failure.SessionInvalid
	}

	claims, err := s.jwtService.Validate(token)
	if err != nil {
		return res, failure.SessionInvalid
	}

	var session dto.Session

	if err = s.cache.Get(ctx, SessionKey(claims.UserID, claims.TokenID), &session); err != nil {
		if errors.Is(err, cache.Nil) {
			return res, failure.SessionInvalid
		}

		return res, failure.Unavailable(fmt.Errorf("failed to read session: %w", err))
	}

	user, err := s.userRepo.Get(ctx, shared.FilterByID(claims.UserID, userModel.FieldID, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Str("user_id", claims.UserID).Msg("failed to get session user")

		return res, fmt.Errorf("failed to get session user: %w", err)
	}

	if user.ID == constant.Empty {
		return res, failure.SessionInvalid
	}

	res.FromModel(user, claims.TokenID)

	return res, nil
}

// IsAuthenticated reports whether token maps to a live session. Rejected tokens
// are (false, nil); only backend failures return an error.
func (s *serviceImpl) IsAuthenticated(ctx context.Context, token string) (bool, error) {
	_, err := s.Resolve(ctx, token)
	if err == nil {
		return true, nil
	}

	if errors.Is(err, failure.SessionInvalid) {
		return false, nil
	}

	return false, err
}

// CurrentUser returns the session user, or nil when there is no valid session.
func (s *serviceImpl) CurrentUser(ctx context.Context, token string) (*dto.CurrentUser, error) {
	current, err := s.Resolve(ctx, token)
	if err != nil {
		if errors.Is(err, failure.SessionInvalid) {
			return nil, nil
		}

		return nil, err
	}

	return &current, nil
}
