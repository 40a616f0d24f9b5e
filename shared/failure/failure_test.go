package failure_test

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"

	"impressions/shared/failure"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{Code: http.StatusBadRequest, Message: "title is required"}

	if f.Error() != "title is required" {
		t.Errorf("expected error message to be 'title is required', got %s", f.Error())
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{name: "bad request", err: failure.BadRequest(errors.New("bad body")), code: http.StatusBadRequest, message: "bad body"},
		{name: "bad request from string", err: failure.BadRequestFromString("rating out of range"), code: http.StatusBadRequest, message: "rating out of range"},
		{name: "unauthorized", err: failure.Unauthorized("token expired"), code: http.StatusUnauthorized, message: "token expired"},
		{name: "internal", err: failure.InternalError(errors.New("query failed")), code: http.StatusInternalServerError, message: "query failed"},
		{name: "unavailable", err: failure.Unavailable(errors.New("redis down")), code: http.StatusServiceUnavailable, message: "redis down"},
		{name: "not found", err: failure.NotFound("gallery image not found"), code: http.StatusNotFound, message: "gallery image not found"},
		{name: "conflict", err: failure.Conflict("username taken"), code: http.StatusConflict, message: "username taken"},
		{name: "forbidden", err: failure.Forbidden("admins only"), code: http.StatusForbidden, message: "admins only"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f *failure.Failure
			if !errors.As(tt.err, &f) {
				t.Fatalf("expected *failure.Failure, got %T", tt.err)
			}

			if f.Code != tt.code {
				t.Errorf("expected code %d, got %d", tt.code, f.Code)
			}

			if f.Message != tt.message {
				t.Errorf("expected message %q, got %q", tt.message, f.Message)
			}
		})
	}
}

func TestNilErrorsStayNil(t *testing.T) {
	if failure.BadRequest(nil) != nil {
		t.Error("expected BadRequest(nil) to be nil")
	}

	if failure.InternalError(nil) != nil {
		t.Error("expected InternalError(nil) to be nil")
	}

	if failure.Unavailable(nil) != nil {
		t.Error("expected Unavailable(nil) to be nil")
	}
}

func TestGetCode(t *testing.T) {
	wrapped := fmt.Errorf("login: %w", failure.AuthenticationFailure)

	if code := failure.GetCode(wrapped); code != http.StatusUnauthorized {
		t.Errorf("expected wrapped failure code 401, got %d", code)
	}

	if code := failure.GetCode(errors.New("plain")); code != http.StatusInternalServerError {
		t.Errorf("expected plain error code 500, got %d", code)
	}
}

func TestSentinelFailures(t *testing.T) {
	wrapped := fmt.Errorf("gate: %w", failure.SessionInvalid)

	if !errors.Is(wrapped, failure.SessionInvalid) {
		t.Error("expected wrapped SessionInvalid to match with errors.Is")
	}

	if errors.Is(wrapped, failure.AuthenticationFailure) {
		t.Error("expected SessionInvalid not to match AuthenticationFailure")
	}

	if !failure.IsCode(wrapped, http.StatusUnauthorized) {
		t.Error("expected IsCode to see 401 through wrapping")
	}
}

func TestFromBodyError(t *testing.T) {
	body := http.MaxBytesReader(nil, io.NopCloser(strings.NewReader(strings.Repeat("x", 3<<20))), 2<<20)

	_, err := io.ReadAll(body)

	tooLarge := failure.FromBodyError(err)
	if !failure.IsCode(tooLarge, http.StatusRequestEntityTooLarge) {
		t.Errorf("expected code 413, got %d", failure.GetCode(tooLarge))
	}

	if tooLarge.Error() != "request is larger than 2 MB" {
		t.Errorf("unexpected message %q", tooLarge.Error())
	}

	if code := failure.GetCode(failure.FromBodyError(errors.New("unexpected EOF"))); code != http.StatusBadRequest {
		t.Errorf("expected code 400, got %d", code)
	}
}
