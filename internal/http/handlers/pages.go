package handlers

import (
	"log/slog"
	"net/http"

	"github.com/pribylovaa/auth-frontend/internal/session"
	"github.com/pribylovaa/auth-frontend/internal/web"
	"github.com/pribylovaa/auth-frontend/pkg/log"
)

// Home — входная точка: аутентифицированных уводим на /dashboard,
// остальных — на /login.
func (h *Handlers) Home(w http.ResponseWriter, r *http.Request) {
	if session.From(r.Context()).Snapshot().Authenticated() {
		http.Redirect(w, r, "/dashboard", http.StatusFound)
		return
	}

	http.Redirect(w, r, "/login", http.StatusFound)
}

// Dashboard — страница обычного пользователя. Провайдер сессии гарантирует
// ready=true до входа сюда, так что по ролям можно решать сразу: админ
// уходит на /admin. Провал дозапроса идентичности не фатален — страница
// рендерится без приветствия.
func (h *Handlers) Dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sess := session.From(ctx).Snapshot()

	if sess.HasRole("admin") {
		http.Redirect(w, r, "/admin", http.StatusFound)
		return
	}

	data := web.DashboardPage{
		Layout: web.Layout{
			Title:         "Dashboard",
			Authenticated: sess.Authenticated(),
			Email:         sess.Email,
		},
	}

	me, err := h.API.Me(ctx)
	if err != nil {
		log.From(ctx).Warn("dashboard_identity_fetch_failed", slog.String("err", err.Error()))
	} else {
		data.WelcomeEmail = me.Email
	}

	h.Render.Page(w, r, http.StatusOK, "dashboard.html", data)
}
