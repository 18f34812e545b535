package handlers

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/pribylovaa/auth-frontend/internal/backend"
	apierrors "github.com/pribylovaa/auth-frontend/internal/errors"
	"github.com/pribylovaa/auth-frontend/internal/web"
)

// Handlers агрегирует зависимости контроллеров страниц.
type Handlers struct {
	API      *backend.Client
	Render   *web.Renderer
	validate *validator.Validate
}

func New(api *backend.Client, rnd *web.Renderer) *Handlers {
	return &Handlers{API: api, Render: rnd, validate: validator.New()}
}

// errStatus — HTTP-статус страницы по ошибке вызова бэкенда.
func errStatus(err error) int {
	var api *apierrors.APIError
	if errors.As(err, &api) {
		return api.Status
	}

	return http.StatusInternalServerError
}

// formMessage переводит первую ошибку валидатора в сообщение формы.
func formMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return msgCredentialsRequired
	}

	switch verrs[0].Tag() {
	case "min":
		return msgPasswordTooShort
	case "email":
		return msgEmailInvalid
	default:
		return msgCredentialsRequired
	}
}
