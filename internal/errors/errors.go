// errors стандартизирует ошибки вызовов бэкенда.
// На вход — HTTP-статус апстрима и detail из тела (формат {"detail": "..."}),
// на выход:
//   - стабильный машиночитаемый код;
//   - generic-сообщение для логов (без утечки деталей);
//   - detail апстрима отдельным полем — страницы показывают его, а при его
//     отсутствии подставляют собственный fallback-текст.
//
// Таксономия по контракту фронта: validation (до сети), authentication (401),
// authorization (403), остальное — транзиентные ошибки апстрима.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError — ошибка вызова бэкенда, видимая хендлерам.
type APIError struct {
	Status  int    // HTTP-статус апстрима
	Code    string // стабильный код для логов/тестов
	Message string // generic-описание по статусу
	Detail  string // человекочитаемый detail апстрима; пустой, если его не было
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("backend: %s (%d): %s", e.Code, e.Status, e.Detail)
	}

	return fmt.Sprintf("backend: %s (%d): %s", e.Code, e.Status, e.Message)
}

// FromStatus строит APIError по статусу апстрима.
// detail — сообщение из тела ответа; пустота фиксируется как «detail не было»,
// generic-фраза его не подменяет.
func FromStatus(status int, detail string) *APIError {
	code, msg := baseFromStatus(status)
	return &APIError{Status: status, Code: code, Message: msg, Detail: detail}
}

// Unreachable — бэкенд не ответил (сетевая ошибка, таймаут).
// Причину пишет в лог вызывающая сторона; наружу уходит безопасная фраза.
func Unreachable() *APIError {
	return &APIError{
		Status:  http.StatusServiceUnavailable,
		Code:    "unavailable",
		Message: "service unavailable",
	}
}

// IsUnauthenticated — ошибка аутентификации (просроченный/битый токен или кука).
func IsUnauthenticated(err error) bool {
	var api *APIError
	return errors.As(err, &api) && api.Status == http.StatusUnauthorized
}

// UserMessage возвращает сообщение для показа пользователю:
// detail апстрима, если он был, иначе переданный fallback. Generic-фразы из
// Message на страницу не попадают — fallback задаёт контекст самой страницы
// («Invalid email or password», «Signup failed. Try again.»).
func UserMessage(err error, fallback string) string {
	var api *APIError
	if errors.As(err, &api) && api.Detail != "" {
		return api.Detail
	}

	return fallback
}

// baseFromStatus — маппинг HTTP-статуса апстрима в (код, generic-сообщение).
// Покрывает реальные коды FastAPI-бэкенда: 400 (дубликат email),
// 401 (credentials/refresh), 403 (роль), 404, 422 (валидация схемы), 5xx.
func baseFromStatus(status int) (string, string) {
	switch status {
	case http.StatusBadRequest:
		return "bad_request", "invalid request"
	case http.StatusUnauthorized:
		return "unauthenticated", "unauthenticated"
	case http.StatusForbidden:
		return "permission_denied", "permission denied"
	case http.StatusNotFound:
		return "not_found", "not found"
	case http.StatusConflict:
		return "conflict", "conflict"
	case http.StatusUnprocessableEntity:
		return "invalid_argument", "invalid argument"
	case http.StatusTooManyRequests:
		return "resource_exhausted", "too many requests"
	case http.StatusServiceUnavailable:
		return "unavailable", "service unavailable"
	case http.StatusGatewayTimeout:
		return "deadline_exceeded", "deadline exceeded"
	default:
		return "internal", "internal error"
	}
}
