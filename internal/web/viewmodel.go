package web

import "github.com/pribylovaa/auth-frontend/internal/models"

// Layout — общие данные шапки страницы.
type Layout struct {
	Title         string
	Authenticated bool
	Email         string
	// MetaRefresh — значение meta http-equiv="refresh" ("2;url=/login");
	// пустое — без авторедиректа.
	MetaRefresh string
}

// FormPage — страницы логина и регистрации.
type FormPage struct {
	Layout
	Error   string
	Success string
	// Email — введённое значение, возвращаемое в форму после ошибки.
	FormEmail string
}

// DashboardPage — страница пользователя.
type DashboardPage struct {
	Layout
	WelcomeEmail string
}

// AdminPage — админская таблица пользователей.
type AdminPage struct {
	Layout
	Error string
	Users []AdminUser
	// ToggleRoles — фиксированный набор переключаемых ролей.
	ToggleRoles []string
}

// AdminUser — строка таблицы; IsSelf блокирует кнопки мутаций в разметке.
type AdminUser struct {
	models.User
	IsSelf bool
}
