package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"impressions/infras/otel"
	"impressions/shared/constant"
)

// DefaultGateTimeout bounds a session check when no timeout is configured.
const DefaultGateTimeout = 5 * time.Second

type GateState int

const (
	GateChecking GateState = iota
	GateAuthenticated
	GateRedirecting
)

func (s GateState) String() string {
	switch s {
	case GateAuthenticated:
		return "authenticated"
	case GateRedirecting:
		return "redirecting"
	default:
		return "checking"
	}
}

type SessionChecker interface {
	IsAuthenticated(ctx context.Context, token string) (bool, error)
}

// TokenSource extracts the session token a request carries, or "".
type TokenSource func(r *http.Request) string

// Gate guards the admin pages. Every request is checked again; there is no
// cached verdict.
type Gate struct {
	checker SessionChecker
	token   TokenSource
	timeout time.Duration
	otel    otel.Otel
}

func NewGate(checker SessionChecker, token TokenSource, timeout time.Duration, otel otel.Otel) *Gate {
	if timeout <= 0 {
		timeout = DefaultGateTimeout
	}

	return &Gate{
		checker: checker,
		token:   token,
		timeout: timeout,
		otel:    otel,
	}
}

// Check races the session check against the timeout. It leaves GateChecking
// exactly once: a check that fails, errors, or has not answered when the timer
// fires ends in GateRedirecting.
func (g *Gate) Check(ctx context.Context, token string) GateState {
	ctx, scope := g.otel.NewScope(ctx, constant.OtelWebScopeName, constant.OtelWebScopeName+".gate.Check")
	defer scope.End()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	result := make(chan GateState, 1)

	go func() {
		ok, err := g.checker.IsAuthenticated(ctx, token)
		if err != nil {
			log.Warn().Err(err).Msg("session check failed")
		}

		if err != nil || !ok {
			result <- GateRedirecting

			return
		}

		result <- GateAuthenticated
	}()

	timer := time.NewTimer(g.timeout)
	defer timer.Stop()

	state := GateChecking

	select {
	case state = <-result:
	case <-timer.C:
		log.Warn().Dur("timeout", g.timeout).Msg("session check timed out")

		state = GateRedirecting
	case <-ctx.Done():
		state = GateRedirecting
	}

	scope.SetAttribute("gate.state", state.String())

	return state
}

// Middleware redirects to the login page unless the session is live. The login
// page itself is never gated.
func (g *Gate) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == constant.PathAdminLogin {
			next.ServeHTTP(w, r)

			return
		}

		token := g.token(r)
		state := g.Check(r.Context(), token)
		observeGate(state)

		if state != GateAuthenticated {
			http.Redirect(w, r, constant.PathAdminLogin, http.StatusSeeOther)

			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), constant.ContextKeySessionToken, token)))
	})
}
