package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"impressions/infras/otel/mocks"
	"impressions/shared/constant"
	"impressions/transport/http/middleware"
)

type checkerFunc func(ctx context.Context, token string) (bool, error)

func (f checkerFunc) IsAuthenticated(ctx context.Context, token string) (bool, error) {
	return f(ctx, token)
}

func staticToken(token string) middleware.TokenSource {
	return func(*http.Request) string { return token }
}

func TestGate_Check(t *testing.T) {
	tests := []struct {
		name    string
		checker checkerFunc
		want    middleware.GateState
	}{
		{
			name:    "live session",
			checker: func(context.Context, string) (bool, error) { return true, nil },
			want:    middleware.GateAuthenticated,
		},
		{
			name:    "no session",
			checker: func(context.Context, string) (bool, error) { return false, nil },
			want:    middleware.GateRedirecting,
		},
		{
			name:    "check errors",
			checker: func(context.Context, string) (bool, error) { return true, errors.New("redis down") },
			want:    middleware.GateRedirecting,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gate := middleware.NewGate(tt.checker, staticToken("token"), time.Second, mocks.NewOtel())

			assert.Equal(t, tt.want, gate.Check(context.Background(), "token"))
		})
	}
}

func TestGate_CheckTimesOutAtBoundary(t *testing.T) {
	const timeout = 100 * time.Millisecond

	checkerExited := make(chan struct{})

	never := checkerFunc(func(ctx context.Context, _ string) (bool, error) {
		defer close(checkerExited)

		<-ctx.Done()

		return true, nil
	})

	gate := middleware.NewGate(never, staticToken("token"), timeout, mocks.NewOtel())

	start := time.Now()
	state := gate.Check(context.Background(), "token")
	elapsed := time.Since(start)

	assert.Equal(t, middleware.GateRedirecting, state)
	assert.GreaterOrEqual(t, elapsed, timeout, "not before the timeout")
	assert.Less(t, elapsed, timeout+time.Second, "not indefinitely after the timeout")

	select {
	case <-checkerExited:
	case <-time.After(time.Second):
		t.Fatal("in-flight check was not cancelled")
	}
}

func TestGate_LateAnswerIsIgnored(t *testing.T) {
	release := make(chan struct{})

	late := checkerFunc(func(context.Context, string) (bool, error) {
		<-release

		return true, nil
	})

	gate := middleware.NewGate(late, staticToken("token"), 20*time.Millisecond, mocks.NewOtel())

	assert.Equal(t, middleware.GateRedirecting, gate.Check(context.Background(), "token"))

	close(release)
}

func TestNewGate_DefaultTimeout(t *testing.T) {
	gate := middleware.NewGate(checkerFunc(func(context.Context, string) (bool, error) { return true, nil }), staticToken(""), 0, mocks.NewOtel())

	assert.Equal(t, middleware.GateAuthenticated, gate.Check(context.Background(), ""))
}

func TestGate_Middleware(t *testing.T) {
	var gotToken string

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotToken, _ = r.Context().Value(constant.ContextKeySessionToken).(string)

		w.WriteHeader(http.StatusOK)
	})

	allow := checkerFunc(func(_ context.Context, token string) (bool, error) { return token == "good", nil })

	tests := []struct {
		name         string
		path         string
		token        string
		wantStatus   int
		wantLocation string
	}{
		{name: "authenticated", path: "/admin/gallery", token: "good", wantStatus: http.StatusOK},
		{name: "rejected", path: "/admin/gallery", token: "bad", wantStatus: http.StatusSeeOther, wantLocation: constant.PathAdminLogin},
		{name: "no token", path: "/admin", token: "", wantStatus: http.StatusSeeOther, wantLocation: constant.PathAdminLogin},
		{name: "login bypasses the gate", path: constant.PathAdminLogin, token: "", wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotToken = ""

			gate := middleware.NewGate(allow, staticToken(tt.token), time.Second, mocks.NewOtel())

			recorder := httptest.NewRecorder()
			gate.Middleware(next).ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.wantStatus, recorder.Code)
			assert.Equal(t, tt.wantLocation, recorder.Header().Get("Location"))

			if tt.wantStatus == http.StatusOK && tt.path != constant.PathAdminLogin {
				assert.Equal(t, tt.token, gotToken)
			}
		})
	}
}
