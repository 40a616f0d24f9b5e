package web

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"

	authDto "impressions/internal/domains/auth/model/dto"
	"impressions/shared/constant"
	"impressions/shared/failure"
	"impressions/shared/validator"
)

type userContextKey struct{}

func currentUser(r *http.Request) *authDto.CurrentUser {
	user, _ := r.Context().Value(userContextKey{}).(*authDto.CurrentUser)

	return user
}

// userMessage keeps client errors and hides everything else.
func userMessage(err error) string {
	if code := failure.GetCode(err); code >= http.StatusBadRequest && code < http.StatusInternalServerError {
		return err.Error()
	}

	return "something went wrong, please try again"
}

// withUser loads the admin behind the gated session so pages can show who is
// signed in and writes are attributed to them.
func (h *Handler) withUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, _ := r.Context().Value(constant.ContextKeySessionToken).(string)

		user, err := h.svc.Auth.CurrentUser(r.Context(), token)
		if err != nil || user == nil {
			if err != nil {
				log.Error().Err(err).Msg("failed to load admin user")
			}

			h.redirect(w, r, constant.PathAdminLogin)

			return
		}

		ctx := context.WithValue(r.Context(), userContextKey{}, user)
		ctx = context.WithValue(ctx, constant.ContextKeyUserID, user.ID)
		ctx = context.WithValue(ctx, constant.ContextKeyUsername, user.Username)
		ctx = context.WithValue(ctx, constant.ContextKeyUserRole, user.Role)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handler) LoginPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, "login", h.page(w, r, adminSessionName, "Admin login", "login", nil))
}

// Login exchanges the credentials for a session token kept in the cookie.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, scope := h.otel.NewScope(r.Context(), constant.OtelWebScopeName, constant.OtelWebScopeName+".Login")
	defer scope.End()

	if err := r.ParseForm(); err != nil {
		scope.TraceError(err)
		h.addFlash(w, r, adminSessionName, FlashError, "Login form could not be read.")
		h.redirect(w, r, constant.PathAdminLogin)

		return
	}

	req := authDto.LoginRequest{
		Username: r.PostForm.Get("username"),
		Password: r.PostForm.Get("password"),
	}

	if err := validator.ValidateStruct(&req); err != nil {
		h.addFlash(w, r, adminSessionName, FlashError, "Enter your username and password.")
		h.redirect(w, r, constant.PathAdminLogin)

		return
	}

	res, err := h.svc.Auth.Login(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Str("username", req.Username).Msg("admin login failed")

		h.addFlash(w, r, adminSessionName, FlashError, userMessage(err))
		h.redirect(w, r, constant.PathAdminLogin)

		return
	}

	session := h.session(r, adminSessionName)
	session.Values[sessionKeyToken] = res.AccessToken
	session.AddFlash(Flash{Type: FlashSuccess, Message: "Welcome back, " + req.Username + "!"})

	if err = session.Save(r, w); err != nil {
		log.Error().Err(err).Msg("failed to save admin session")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)

		return
	}

	h.redirect(w, r, constant.PathAdmin)
}

// Logout revokes the session and drops the token from the cookie.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx, scope := h.otel.NewScope(r.Context(), constant.OtelWebScopeName, constant.OtelWebScopeName+".Logout")
	defer scope.End()

	session := h.session(r, adminSessionName)

	if token, _ := session.Values[sessionKeyToken].(string); token != "" {
		if err := h.svc.Auth.Logout(ctx, token); err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("failed to revoke admin session")
		}
	}

	delete(session.Values, sessionKeyToken)
	session.AddFlash(Flash{Type: FlashSuccess, Message: "You have been logged out."})
	h.saveSession(w, r, session)

	h.redirect(w, r, constant.PathAdminLogin)
}

func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	ctx, scope := h.otel.NewScope(r.Context(), constant.OtelWebScopeName, constant.OtelWebScopeName+".Dashboard")
	defer scope.End()

	dashboard, err := h.svc.Dashboard.Get(ctx)

	data := h.page(w, r, adminSessionName, "Dashboard", "dashboard", &dashboard)
	if err != nil {
		scope.TraceError(err)

		data.Error = "The dashboard could not be loaded."
	}

	h.render(w, http.StatusOK, "dashboard", data)
}
