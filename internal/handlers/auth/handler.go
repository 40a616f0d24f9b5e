package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"impressions/infras/otel"
	"impressions/internal/domains/auth/model/dto"
	"impressions/internal/domains/auth/service"
	"impressions/shared/constant"
	"impressions/shared/failure"
	"impressions/shared/validator"
	"impressions/transport/http/response"
)

type Handler struct {
	service service.Auth
	otel    otel.Otel
}

func New(service service.Auth, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", handler.Login)
		r.Post("/logout", handler.Logout)
		r.Post("/logout-all", handler.LogoutAll)
		r.Get("/me", handler.Me)
	})
}

func sessionToken(r *http.Request) string {
	token, _ := r.Context().Value(constant.ContextKeySessionToken).(string)

	return token
}

// Login handles admin login
// @Summary Login an admin
// @Description Verify the admin credentials and open a session.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login Request"
// @Success 200 {object} response.Data[dto.LoginResponse] "Logged in successfully"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/auth/login [post]
func (handler *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Login")
	defer scope.End()

	req := dto.LoginRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Login(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Str("username", req.Username).Msg("failed to login admin")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Admin logged in successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// Logout handles session revocation
// @Summary Logout
// @Description Revoke the session of the presented token.
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Message "Logged out successfully"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/auth/logout [post]
// @Security BearerAuth
func (handler *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Logout")
	defer scope.End()

	if err := handler.service.Logout(ctx, sessionToken(r)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to logout")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Logged out successfully")
}

// LogoutAll handles revocation of every session of the current admin
// @Summary Logout everywhere
// @Description Revoke every session of the admin that owns the presented token.
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Message "Logged out of every session"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/auth/logout-all [post]
// @Security BearerAuth
func (handler *Handler) LogoutAll(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".LogoutAll")
	defer scope.End()

	if err := handler.service.LogoutAll(ctx, sessionToken(r)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to logout all sessions")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Logged out of every session")
}

// Me handles the current admin lookup
// @Summary Current admin
// @Description Return the admin that owns the presented token.
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Data[dto.CurrentUser]
// @Failure 401 {object} response.Error
// @Router /v1/auth/me [get]
// @Security BearerAuth
func (handler *Handler) Me(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Me")
	defer scope.End()

	user, err := handler.service.CurrentUser(ctx, sessionToken(r))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get current admin")

		response.WithError(w, err)

		return
	}

	if user == nil {
		response.WithError(w, failure.SessionInvalid)

		return
	}

	response.WithJSON(w, http.StatusOK, user)
}
