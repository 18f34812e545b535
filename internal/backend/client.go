// backend — единственная транспортная обёртка над REST-бэкендом.
//
// Поведение каждого вызова:
//   - перед отправкой читает access-токен из внедрённого источника и, если он
//     есть, добавляет bearer-авторизацию; иначе запрос уходит анонимным;
//   - пересылает refresh-куку входящего запроса как есть;
//   - ретранслирует Set-Cookie refresh-куки из ответа обратно браузеру;
//   - не ретраит, не кеширует и не ставит вызовы в очередь; ошибка апстрима
//     отдаётся вызывающему как apierrors.APIError.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/pribylovaa/auth-frontend/internal/config"
	apierrors "github.com/pribylovaa/auth-frontend/internal/errors"
	"github.com/pribylovaa/auth-frontend/internal/models"
	"github.com/pribylovaa/auth-frontend/pkg/log"
)

// maxErrorBody — потолок чтения тела ошибочного ответа.
const maxErrorBody = 64 << 10

// Client — HTTP-клиент бэкенда. Процессо-широкий и безопасный для
// конкурентного использования: учётные данные приходят через контекст.
type Client struct {
	base       *url.URL
	cookieName string
	httpc      *http.Client
	log        *slog.Logger
}

// New создаёт клиент по конфигурации. Базовый адрес валидируется на старте.
func New(cfg config.BackendConfig, l *slog.Logger) (*Client, error) {
	const op = "internal/backend/New"

	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("%s: parse base url: %w", op, err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("%s: base url %q has no scheme or host", op, cfg.BaseURL)
	}

	if l == nil {
		l = slog.Default()
	}

	return &Client{
		base:       base,
		cookieName: cfg.CookieName,
		// Дедлайн задаёт контекст запроса (Timeout-мидлвар); собственного
		// таймаута у транспорта нет.
		httpc: &http.Client{},
		log:   l,
	}, nil
}

// CookieName — имя refresh-куки; его же проверяет Route Guard.
func (c *Client) CookieName() string { return c.cookieName }

// --- Операции контракта бэкенда ---

type credentialsBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login — обмен учётных данных на access-токен.
// Refresh-кука приходит Set-Cookie-заголовком и ретранслируется браузеру.
func (c *Client) Login(ctx context.Context, email, password string) (models.TokenResponse, error) {
	var out models.TokenResponse
	err := c.do(ctx, http.MethodPost, &out, credentialsBody{Email: email, Password: password}, "auth", "login")
	return out, err
}

// Signup — создание аккаунта.
func (c *Client) Signup(ctx context.Context, email, password string) error {
	return c.do(ctx, http.MethodPost, nil, credentialsBody{Email: email, Password: password}, "auth", "signup")
}

// Refresh — обмен refresh-куки на новый access-токен (тело не передаётся).
func (c *Client) Refresh(ctx context.Context) (models.TokenResponse, error) {
	var out models.TokenResponse
	err := c.do(ctx, http.MethodPost, &out, nil, "auth", "refresh")
	return out, err
}

// Logout — серверная инвалидация сессии.
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, nil, nil, "auth", "logout")
}

// Me — идентичность текущего пользователя (email + роли).
func (c *Client) Me(ctx context.Context) (models.Profile, error) {
	var out models.Profile
	err := c.do(ctx, http.MethodGet, &out, nil, "protected", "me")
	return out, err
}

// ListUsers — список пользователей (админ).
func (c *Client) ListUsers(ctx context.Context) ([]models.User, error) {
	var out []models.User
	err := c.do(ctx, http.MethodGet, &out, nil, "admin", "users")
	return out, err
}

// AssignRole — назначение роли пользователю (админ).
func (c *Client) AssignRole(ctx context.Context, userID, role string) error {
	return c.do(ctx, http.MethodPost, nil, nil, "admin", "users", userID, "roles", role)
}

// RevokeRole — снятие роли с пользователя (админ).
func (c *Client) RevokeRole(ctx context.Context, userID, role string) error {
	return c.do(ctx, http.MethodDelete, nil, nil, "admin", "users", userID, "roles", role)
}

// DeleteUser — удаление пользователя (админ).
func (c *Client) DeleteUser(ctx context.Context, userID string) error {
	return c.do(ctx, http.MethodDelete, nil, nil, "admin", "users", userID)
}

// do — единая точка исходящих вызовов: авторизация, кука, request id,
// одна финальная запись лога на вызов, разбор ошибки апстрима.
func (c *Client) do(ctx context.Context, method string, out any, in any, elem ...string) error {
	u := c.base.JoinPath(elem...)

	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("%s %s: marshal body: %w", method, u.Path, err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return fmt.Errorf("%s %s: build request: %w", method, u.Path, err)
	}

	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	// request id из контекста; если мидлвар не отработал — генерируем свой.
	rid, _ := ctx.Value(CtxRequestID).(string)
	if rid == "" {
		rid = uuid.NewString()
	}
	req.Header.Set("X-Request-Id", rid)

	creds := CredentialsFrom(ctx)
	if tok := creds.Token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	if ck := creds.RefreshCookie(); ck != nil {
		req.AddCookie(ck)
	}

	l := log.From(ctx).With(
		slog.String("request_id", rid),
		slog.String("method", method),
		slog.String("path", u.Path),
	)

	start := time.Now()
	resp, err := c.httpc.Do(req)
	if err != nil {
		l.Warn("backend",
			slog.String("err", err.Error()),
			slog.Duration("dur", time.Since(start)),
		)
		return fmt.Errorf("%s %s: %w", method, u.Path, apierrors.Unreachable())
	}
	defer func() { _ = resp.Body.Close() }()

	// Ротация/удаление refresh-куки — сразу браузеру.
	for _, ck := range resp.Cookies() {
		if ck.Name == c.cookieName {
			creds.relayCookie(ck)
		}
	}

	l.Info("backend",
		slog.Int("status", resp.StatusCode),
		slog.Duration("dur", time.Since(start)),
	)

	if resp.StatusCode >= http.StatusBadRequest {
		detail := decodeDetail(resp.Body)
		return fmt.Errorf("%s %s: %w", method, u.Path, apierrors.FromStatus(resp.StatusCode, detail))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("%s %s: decode response: %w", method, u.Path, err)
		}
	}

	return nil
}

// decodeDetail вытаскивает человекочитаемый detail из тела ошибки
// (формат бэкенда: {"detail": "..."}; detail-массивы валидации пропускаем).
func decodeDetail(r io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(r, maxErrorBody))
	if err != nil {
		return ""
	}

	var payload struct {
		Detail any `json:"detail"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return ""
	}

	if s, ok := payload.Detail.(string); ok {
		return s
	}

	return ""
}
