package handlers

import (
	"log/slog"
	"net/http"

	apierrors "github.com/pribylovaa/auth-frontend/internal/errors"
	"github.com/pribylovaa/auth-frontend/internal/models"
	"github.com/pribylovaa/auth-frontend/internal/session"
	"github.com/pribylovaa/auth-frontend/internal/web"
	"github.com/pribylovaa/auth-frontend/pkg/log"
)

// Сообщения форм. Тексты фиксированы — их проверяют тесты страниц.
const (
	msgCredentialsRequired = "Email and password are required"
	msgPasswordTooShort    = "Password must be at least 6 characters"
	msgEmailInvalid        = "Enter a valid email address"
	msgLoginFailed         = "Invalid email or password"
	msgSignupFailed        = "Signup failed. Try again."
	msgSignupOK            = "Account created successfully. Please login."
)

// signupRedirect — авторедирект со страницы успешной регистрации.
// Задержка фиксированная: пользователь должен успеть увидеть подтверждение.
const signupRedirect = "2;url=/login"

func loginData(errMsg, email string) web.FormPage {
	return web.FormPage{
		Layout:    web.Layout{Title: "Login"},
		Error:     errMsg,
		FormEmail: email,
	}
}

func (h *Handlers) LoginPage(w http.ResponseWriter, r *http.Request) {
	h.Render.Page(w, r, http.StatusOK, "login.html", loginData("", ""))
}

// Login — обмен учётных данных на токен и ролевой роутинг:
// админ уходит на /admin, остальные — на /dashboard. Провал дозапроса
// ролей не фатален: токен считается валидным, маршрут — общий.
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	_ = r.ParseForm()
	form := models.LoginForm{
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
	}

	if err := h.validate.Struct(form); err != nil {
		h.Render.Page(w, r, http.StatusBadRequest, "login.html", loginData(formMessage(err), form.Email))
		return
	}

	st := session.From(ctx)

	tok, err := h.API.Login(ctx, form.Email, form.Password)
	if err != nil {
		h.Render.Page(w, r, errStatus(err), "login.html",
			loginData(apierrors.UserMessage(err, msgLoginFailed), form.Email))
		return
	}

	// Токен — первым: дозапрос идентичности идёт уже под ним.
	st.SetToken(tok.AccessToken)

	me, err := h.API.Me(ctx)
	if err != nil {
		log.From(ctx).Warn("login_identity_fetch_failed", slog.String("err", err.Error()))
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	st.SetRoles(me.Roles)
	st.SetEmail(me.Email)

	if st.Snapshot().HasRole("admin") {
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func signupData(errMsg, successMsg, email string) web.FormPage {
	data := web.FormPage{
		Layout:    web.Layout{Title: "Sign up"},
		Error:     errMsg,
		Success:   successMsg,
		FormEmail: email,
	}
	if successMsg != "" {
		data.MetaRefresh = signupRedirect
	}

	return data
}

func (h *Handlers) SignupPage(w http.ResponseWriter, r *http.Request) {
	h.Render.Page(w, r, http.StatusOK, "signup.html", signupData("", "", ""))
}

// Signup — регистрация: локальная валидация до любого похода в сеть,
// при успехе — подтверждение с отложенным редиректом на /login.
func (h *Handlers) Signup(w http.ResponseWriter, r *http.Request) {
	_ = r.ParseForm()
	form := models.SignupForm{
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
	}

	if err := h.validate.Struct(form); err != nil {
		h.Render.Page(w, r, http.StatusBadRequest, "signup.html", signupData(formMessage(err), "", form.Email))
		return
	}

	if err := h.API.Signup(r.Context(), form.Email, form.Password); err != nil {
		h.Render.Page(w, r, errStatus(err), "signup.html",
			signupData(apierrors.UserMessage(err, msgSignupFailed), "", form.Email))
		return
	}

	h.Render.Page(w, r, http.StatusOK, "signup.html", signupData("", msgSignupOK, ""))
}

// Logout — серверная инвалидация (best-effort: токен или кука могли уже
// протухнуть), сброс сессии и редирект на /login.
func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.API.Logout(ctx); err != nil {
		log.From(ctx).Warn("logout_backend_failed", slog.String("err", err.Error()))
	}

	session.From(ctx).Logout()

	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
