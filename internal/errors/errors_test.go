package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromStatus_BaseMapping(t *testing.T) {
	tcs := []struct {
		name     string
		status   int
		wantCode string
	}{
		{"bad_request", http.StatusBadRequest, "bad_request"},
		{"unauth", http.StatusUnauthorized, "unauthenticated"},
		{"perm_denied", http.StatusForbidden, "permission_denied"},
		{"not_found", http.StatusNotFound, "not_found"},
		{"conflict", http.StatusConflict, "conflict"},
		{"invalid_argument", http.StatusUnprocessableEntity, "invalid_argument"},
		{"res_exhausted", http.StatusTooManyRequests, "resource_exhausted"},
		{"unavailable", http.StatusServiceUnavailable, "unavailable"},
		{"deadline", http.StatusGatewayTimeout, "deadline_exceeded"},
		{"internal", http.StatusInternalServerError, "internal"},
		{"teapot_defaults_internal", http.StatusTeapot, "internal"},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			got := FromStatus(tc.status, "")
			require.Equal(t, tc.status, got.Status)
			require.Equal(t, tc.wantCode, got.Code)
			require.NotEmpty(t, got.Message)
			require.Empty(t, got.Detail)
		})
	}
}

func TestFromStatus_DetailKeptSeparateFromGeneric(t *testing.T) {
	got := FromStatus(http.StatusUnauthorized, "Incorrect email or password")
	require.Equal(t, "Incorrect email or password", got.Detail)
	// Generic-сообщение не подменяется detail-ом.
	require.Equal(t, "unauthenticated", got.Message)
}

func TestUserMessage(t *testing.T) {
	withDetail := FromStatus(http.StatusBadRequest, "Email already registered")
	require.Equal(t, "Email already registered", UserMessage(withDetail, "fallback"))

	// Обёрнутая ошибка тоже распознаётся.
	wrapped := fmt.Errorf("op: %w", withDetail)
	require.Equal(t, "Email already registered", UserMessage(wrapped, "fallback"))

	// Не-APIError — возвращаем fallback.
	require.Equal(t, "fallback", UserMessage(fmt.Errorf("dial tcp: refused"), "fallback"))
}

// Ответ без detail (голый 401/409) обязан давать fallback вызывающей страницы,
// а не generic-фразу кода статуса.
func TestUserMessage_NoDetail_FallsBackToCallerText(t *testing.T) {
	bare401 := FromStatus(http.StatusUnauthorized, "")
	require.Equal(t, "Invalid email or password", UserMessage(bare401, "Invalid email or password"))

	bare409 := fmt.Errorf("signup: %w", FromStatus(http.StatusConflict, ""))
	require.Equal(t, "Signup failed. Try again.", UserMessage(bare409, "Signup failed. Try again."))

	// Сетевая недоступность тоже без detail — страница показывает свой текст.
	require.Equal(t, "fallback", UserMessage(Unreachable(), "fallback"))
}

func TestIsUnauthenticated(t *testing.T) {
	require.True(t, IsUnauthenticated(FromStatus(http.StatusUnauthorized, "")))
	require.True(t, IsUnauthenticated(fmt.Errorf("me: %w", FromStatus(http.StatusUnauthorized, ""))))
	require.False(t, IsUnauthenticated(FromStatus(http.StatusForbidden, "")))
	require.False(t, IsUnauthenticated(fmt.Errorf("plain")))
}
