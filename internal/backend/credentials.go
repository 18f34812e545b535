package backend

import (
	"context"
	"net/http"
)

// CtxKey — ключи контекста, которые выставляют HTTP-мидлвары
// и читает клиент бэкенда.
type CtxKey string

// CtxRequestID — сквозной X-Request-Id запроса.
const CtxRequestID CtxKey = "request_id"

// TokenSource — источник текущего access-токена. Клиент читает токен
// непосредственно перед отправкой каждого запроса, поэтому логин,
// выставивший токен в Session Store, сразу виден последующим вызовам.
type TokenSource interface {
	Token() string
}

// CookieRelay получает Set-Cookie refresh-куки из ответов бэкенда
// для ретрансляции браузеру (ротация при refresh, удаление при logout).
type CookieRelay func(*http.Cookie)

// Credentials — ambient-учётные данные одного запроса браузера.
// Источник внедряется снаружи (провайдером сессии), а не берётся из
// глобального состояния — так его можно подменить в тестах.
type Credentials struct {
	tokens  TokenSource
	refresh *http.Cookie
	relay   CookieRelay
}

func NewCredentials(tokens TokenSource, refresh *http.Cookie, relay CookieRelay) *Credentials {
	return &Credentials{tokens: tokens, refresh: refresh, relay: relay}
}

// Token — текущий bearer-токен; пустая строка — запрос уйдёт без Authorization.
func (c *Credentials) Token() string {
	if c == nil || c.tokens == nil {
		return ""
	}

	return c.tokens.Token()
}

// RefreshCookie — refresh-кука входящего запроса (может отсутствовать).
// Значение куки клиент не интерпретирует, только пересылает.
func (c *Credentials) RefreshCookie() *http.Cookie {
	if c == nil {
		return nil
	}

	return c.refresh
}

func (c *Credentials) relayCookie(ck *http.Cookie) {
	if c == nil || c.relay == nil || ck == nil {
		return
	}

	c.relay(ck)
}

type credsCtxKey struct{}

// WithCredentials кладёт учётные данные запроса в контекст.
func WithCredentials(ctx context.Context, creds *Credentials) context.Context {
	if creds == nil {
		return ctx
	}

	return context.WithValue(ctx, credsCtxKey{}, creds)
}

// CredentialsFrom достаёт учётные данные из контекста (или nil —
// тогда запрос уходит неаутентифицированным и без куки).
func CredentialsFrom(ctx context.Context) *Credentials {
	if v := ctx.Value(credsCtxKey{}); v != nil {
		if c, ok := v.(*Credentials); ok {
			return c
		}
	}

	return nil
}
