// Модели REST-контракта бэкенда и формы страниц аутентификации.
package models

// LoginForm — форма входа; проверяется валидатором до похода в бэкенд.
type LoginForm struct {
	Email    string `validate:"required"`
	Password string `validate:"required"`
}

// SignupForm — форма регистрации; минимальная длина пароля проверяется локально.
type SignupForm struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
}

// TokenResponse — ответ /auth/login и /auth/refresh.
// Refresh-токен в теле не приходит: его бэкенд выставляет HTTP-only кукой.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type,omitempty"`
}

// Profile — ответ /protected/me: идентичность текущего пользователя.
type Profile struct {
	Email string   `json:"email"`
	Roles []string `json:"roles"`
}
