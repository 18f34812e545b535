package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pribylovaa/auth-frontend/internal/backend"
	"github.com/pribylovaa/auth-frontend/internal/http/handlers"
	"github.com/pribylovaa/auth-frontend/internal/http/middleware"
	"github.com/pribylovaa/auth-frontend/internal/web"
)

// Options — параметры сборки HTTP-роутера.
type Options struct {
	Logger  *slog.Logger
	Timeout time.Duration
}

// NewRouter собирает http.Handler с chi и подключёнными middleware/роутами.
func NewRouter(api *backend.Client, rnd *web.Renderer, opts Options) http.Handler {
	root := chi.NewRouter()

	// Middleware (внешний -> внутренний).
	root.Use(
		middleware.Recover(),            // безопасно ловим паники
		middleware.RequestID(),          // формируем/прокидываем X-Request-Id (до логирования!)
		middleware.Logging(opts.Logger), // кладём request-scoped логгер в контекст и логируем
		middleware.Metrics(),            // счётчики и латентность по шаблону роута
	)
	if opts.Timeout > 0 {
		root.Use(middleware.Timeout(opts.Timeout)) // общий дедлайн запроса
	}
	root.Use(
		middleware.Guard(api.CookieName()), // edge-редирект по отсутствию refresh-куки
		middleware.SessionProvider(api),    // Store + Bootstrap до хендлера
	)

	// Зависимости контроллеров страниц.
	h := handlers.New(api, rnd)

	registerRoutes(root, h)
	return root
}

// registerRoutes — единая точка регистрации всех страниц.
func registerRoutes(r chi.Router, h *handlers.Handlers) {
	r.Get("/", h.Home)

	// auth
	r.Get("/login", h.LoginPage)
	r.Post("/login", h.Login)
	r.Get("/signup", h.SignupPage)
	r.Post("/signup", h.Signup)
	r.Post("/logout", h.Logout)

	// protected
	r.Get("/dashboard", h.Dashboard)

	// admin
	r.Get("/admin", h.Admin)
	r.Post("/admin/users/{id}/role", h.SetUserRole)
	r.Post("/admin/users/{id}/delete", h.DeleteUser)
}
