package di

import (
	"time"

	"impressions/config"
	"impressions/infras/otel"
	authService "impressions/internal/domains/auth/service"
	"impressions/internal/web"
	"impressions/transport/http/middleware"
)

// ProvideGate guards the admin pages with the session token kept in the web cookie.
func ProvideGate(auth authService.Auth, pages *web.Handler, cfg *config.Config, otel otel.Otel) *middleware.Gate {
	timeout := time.Duration(cfg.App.AuthGate.TimeoutMs) * time.Millisecond

	return middleware.NewGate(auth, pages.SessionToken, timeout, otel)
}
