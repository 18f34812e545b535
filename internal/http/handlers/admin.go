package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	apierrors "github.com/pribylovaa/auth-frontend/internal/errors"
	"github.com/pribylovaa/auth-frontend/internal/models"
	"github.com/pribylovaa/auth-frontend/internal/session"
	"github.com/pribylovaa/auth-frontend/internal/web"
)

// Сообщения админской страницы.
const (
	msgSelfRole     = "You cannot change your own role"
	msgSelfDelete   = "You cannot delete your own account"
	msgUsersFailed  = "Failed to load users"
	msgRoleFailed   = "Failed to update role"
	msgDeleteFailed = "Failed to delete user"
	msgUserNotFound = "User not found"
	msgUnknownRole  = "Unknown role"
)

// toggleRoles — фиксированный набор переключаемых ролей.
var toggleRoles = []string{"user", "admin"}

func adminData(sess session.Snapshot, users []models.User, errMsg string) web.AdminPage {
	rows := make([]web.AdminUser, 0, len(users))
	for _, u := range users {
		rows = append(rows, web.AdminUser{
			User:   u,
			IsSelf: u.Email == sess.Email,
		})
	}

	return web.AdminPage{
		Layout: web.Layout{
			Title:         "Admin",
			Authenticated: sess.Authenticated(),
			Email:         sess.Email,
		},
		Error:       errMsg,
		Users:       rows,
		ToggleRoles: toggleRoles,
	}
}

// requireAdmin — ролевая проверка страницы: не-админ уводится на /dashboard.
// Проверка клиентская, UX-слой; авторитетно роли проверяет бэкенд.
func (h *Handlers) requireAdmin(w http.ResponseWriter, r *http.Request) (session.Snapshot, bool) {
	sess := session.From(r.Context()).Snapshot()
	if !sess.HasRole("admin") {
		http.Redirect(w, r, "/dashboard", http.StatusFound)
		return sess, false
	}

	return sess, true
}

// Admin — таблица пользователей.
func (h *Handlers) Admin(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.requireAdmin(w, r)
	if !ok {
		return
	}

	users, err := h.API.ListUsers(r.Context())
	if err != nil {
		h.Render.Page(w, r, errStatus(err), "admin.html",
			adminData(sess, nil, apierrors.UserMessage(err, msgUsersFailed)))
		return
	}

	h.Render.Page(w, r, http.StatusOK, "admin.html", adminData(sess, users, ""))
}

// SetUserRole — смена роли пользователя: снять все текущие роли, затем
// назначить выбранную. Замена намеренно неатомарна (два и более вызовов);
// при частичном провале локальная копия списка НЕ обновляется — на странице
// остаются прежние роли, даже если бэкенд уже потерял старую.
func (h *Handlers) SetUserRole(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sess, ok := h.requireAdmin(w, r)
	if !ok {
		return
	}

	_ = r.ParseForm()
	id := chi.URLParam(r, "id")
	role := r.PostFormValue("role")

	if !allowedRole(role) {
		h.Render.Page(w, r, http.StatusBadRequest, "admin.html", adminData(sess, nil, msgUnknownRole))
		return
	}

	users, err := h.API.ListUsers(ctx)
	if err != nil {
		h.Render.Page(w, r, errStatus(err), "admin.html",
			adminData(sess, nil, apierrors.UserMessage(err, msgUsersFailed)))
		return
	}

	idx := findUser(users, id)
	if idx < 0 {
		h.Render.Page(w, r, http.StatusNotFound, "admin.html", adminData(sess, users, msgUserNotFound))
		return
	}

	// Самомутация блокируется до каких-либо сетевых вызовов мутаций.
	if users[idx].Email == sess.Email {
		h.Render.Page(w, r, http.StatusOK, "admin.html", adminData(sess, users, msgSelfRole))
		return
	}

	for _, current := range users[idx].Roles {
		if err := h.API.RevokeRole(ctx, users[idx].ID, current); err != nil {
			h.Render.Page(w, r, errStatus(err), "admin.html",
				adminData(sess, users, apierrors.UserMessage(err, msgRoleFailed)))
			return
		}
	}

	if err := h.API.AssignRole(ctx, users[idx].ID, role); err != nil {
		h.Render.Page(w, r, errStatus(err), "admin.html",
			adminData(sess, users, apierrors.UserMessage(err, msgRoleFailed)))
		return
	}

	// Оптимистичное обновление копии — только после полного успеха.
	users[idx].Roles = []string{role}

	h.Render.Page(w, r, http.StatusOK, "admin.html", adminData(sess, users, ""))
}

// DeleteUser — удаление пользователя с блокировкой самоудаления.
func (h *Handlers) DeleteUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sess, ok := h.requireAdmin(w, r)
	if !ok {
		return
	}

	id := chi.URLParam(r, "id")

	users, err := h.API.ListUsers(ctx)
	if err != nil {
		h.Render.Page(w, r, errStatus(err), "admin.html",
			adminData(sess, nil, apierrors.UserMessage(err, msgUsersFailed)))
		return
	}

	idx := findUser(users, id)
	if idx < 0 {
		h.Render.Page(w, r, http.StatusNotFound, "admin.html", adminData(sess, users, msgUserNotFound))
		return
	}

	if users[idx].Email == sess.Email {
		h.Render.Page(w, r, http.StatusOK, "admin.html", adminData(sess, users, msgSelfDelete))
		return
	}

	if err := h.API.DeleteUser(ctx, users[idx].ID); err != nil {
		h.Render.Page(w, r, errStatus(err), "admin.html",
			adminData(sess, users, apierrors.UserMessage(err, msgDeleteFailed)))
		return
	}

	users = append(users[:idx], users[idx+1:]...)

	h.Render.Page(w, r, http.StatusOK, "admin.html", adminData(sess, users, ""))
}

func allowedRole(role string) bool {
	for _, r := range toggleRoles {
		if r == role {
			return true
		}
	}

	return false
}

func findUser(users []models.User, id string) int {
	for i := range users {
		if users[i].ID == id {
			return i
		}
	}

	return -1
}
