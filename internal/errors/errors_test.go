// Package apperrors provides tests for application error types.
package apperrors

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestConfigError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		err         error
		expected    string
		checkTypeAs bool
	}{
		{
			name:     "Error returns message",
			err:      ConfigError{Message: "invalid data directory"},
			expected: "invalid data directory",
		},
		{
			name:     "NewConfigError creates formatted error",
			err:      NewConfigError("cannot create data dir %q", "./output"),
			expected: `cannot create data dir "./output"`,
		},
		{
			name:        "ConfigError type assertion",
			err:         NewConfigError("test error"),
			expected:    "test error",
			checkTypeAs: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if tt.err.Error() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, tt.err.Error())
			}
			if tt.checkTypeAs {
				var configErr ConfigError
				if !errors.As(tt.err, &configErr) {
					t.Error("expected error to be ConfigError type")
				}
			}
		})
	}
}

func TestInitializationError(t *testing.T) {
	t.Parallel()
	cause := errors.New("connection refused")
	err := NewInitializationError("data collection agent", cause)

	t.Run("Error names the component and cause", func(t *testing.T) {
		t.Parallel()
		want := "initializing data collection agent: connection refused"
		if err.Error() != want {
			t.Errorf("expected %q, got %q", want, err.Error())
		}
	})

	t.Run("Unwrap exposes the cause", func(t *testing.T) {
		t.Parallel()
		if !errors.Is(err, cause) {
			t.Error("expected errors.Is to match the wrapped cause")
		}
	})

	t.Run("errors.As recovers the typed error", func(t *testing.T) {
		t.Parallel()
		wrapped := fmt.Errorf("run aborted: %w", err)
		var initErr InitializationError
		if !errors.As(wrapped, &initErr) {
			t.Fatal("expected error chain to contain InitializationError")
		}
		if initErr.Component != "data collection agent" {
			t.Errorf("Component = %q, want %q", initErr.Component, "data collection agent")
		}
	})
}

func TestCollectionError(t *testing.T) {
	t.Parallel()
	cause := errors.New("HTTP 503")
	err := CollectionError{Operation: "news collection", Cause: cause}

	if err.Error() != "news collection failed: HTTP 503" {
		t.Errorf("unexpected message: %q", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("expected errors.Is to match the wrapped cause")
	}
}

func TestWrapError(t *testing.T) {
	t.Parallel()

	t.Run("nil error returns nil", func(t *testing.T) {
		t.Parallel()
		if WrapError(nil, "context") != nil {
			t.Error("WrapError(nil) should return nil")
		}
	})

	t.Run("wrapped error preserves chain", func(t *testing.T) {
		t.Parallel()
		base := errors.New("base")
		wrapped := WrapError(base, "stage %d", 1)
		if wrapped.Error() != "stage 1: base" {
			t.Errorf("unexpected message: %q", wrapped.Error())
		}
		if !errors.Is(wrapped, base) {
			t.Error("expected errors.Is to match the base error")
		}
	})
}

func TestIsContextError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"canceled", context.Canceled, true},
		{"deadline exceeded", context.DeadlineExceeded, true},
		{"wrapped canceled", fmt.Errorf("run: %w", context.Canceled), true},
		{"plain error", errors.New("boom"), false},
		{"nil", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := IsContextError(tt.err); got != tt.want {
				t.Errorf("IsContextError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestExitCodeFor(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil is success", nil, ExitSuccess},
		{"interrupt is a clean stop", context.Canceled, ExitSuccess},
		{"initialization failure", NewInitializationError("news utility", errors.New("boom")), ExitErrorInit},
		{"configuration failure", NewConfigError("bad dir"), ExitErrorConfig},
		{"anything else is generic", errors.New("boom"), ExitErrorGeneric},
		{"wrapped init failure", fmt.Errorf("fatal: %w", NewInitializationError("agent", errors.New("x"))), ExitErrorInit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ExitCodeFor(tt.err); got != tt.want {
				t.Errorf("ExitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
