package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestStatusDerivedFromType(t *testing.T) {
	cases := []struct {
		errorType ErrorType
		want      int
	}{
		{ErrorTypeNotFound, http.StatusNotFound},
		{ErrorTypeValidation, http.StatusBadRequest},
		{ErrorTypeUnauthorized, http.StatusUnauthorized},
		{ErrorTypeConflict, http.StatusConflict},
		{ErrorTypeExternal, http.StatusBadGateway},
		{ErrorTypeDatabase, http.StatusInternalServerError},
		{ErrorTypeInternal, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := New(tc.errorType, "x").Status(); got != tc.want {
			t.Fatalf("%s: expected status %d, got %d", tc.errorType, tc.want, got)
		}
	}
}

func TestUpstreamKeepsExplicitStatus(t *testing.T) {
	err := Upstream(429, errors.New("rate limit exceeded"))
	if err.Status() != 429 {
		t.Fatalf("expected status 429, got %d", err.Status())
	}
	detail, ok := err.Detail.(map[string]string)
	if !ok {
		t.Fatalf("unexpected detail shape: %T", err.Detail)
	}
	if detail["message"] != "rate limit exceeded" {
		t.Fatalf("unexpected detail message: %q", detail["message"])
	}
}

func TestUpstreamDefaultsTo500(t *testing.T) {
	err := Upstream(0, errors.New("connection refused"))
	if err.Status() != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", err.Status())
	}
}

func TestGetUnwrapsThroughWrapping(t *testing.T) {
	inner := NotFound("no messages")
	wrapped := fmt.Errorf("loading history: %w", inner)
	got := Get(wrapped)
	if got != inner {
		t.Fatalf("expected Get to find the inner AppError")
	}
	if Get(errors.New("plain")) != nil {
		t.Fatalf("expected nil for a plain error")
	}
}

func TestIsType(t *testing.T) {
	if !IsType(NotFound("gone"), ErrorTypeNotFound) {
		t.Fatalf("expected NotFound type match")
	}
	if IsType(NotFound("gone"), ErrorTypeExternal) {
		t.Fatalf("unexpected type match")
	}
}

func TestStackCaptured(t *testing.T) {
	err := New(ErrorTypeInternal, "boom")
	if len(err.Stack) == 0 {
		t.Fatalf("expected a captured stack")
	}
}
