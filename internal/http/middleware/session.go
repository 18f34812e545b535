package middleware

import (
	"net/http"

	"github.com/pribylovaa/auth-frontend/internal/backend"
	"github.com/pribylovaa/auth-frontend/internal/session"
)

// SessionProvider собирает сессию загрузки страницы:
//  1. создаёт пустой Store (живёт ровно один запрос — персистентности нет);
//  2. собирает учётные данные: источник токена — Store, refresh-кука — из
//     запроса браузера, ретрансляция Set-Cookie — в ответ браузеру;
//  3. прогоняет Bootstrap (refresh -> me -> ready) строго до хендлера —
//     контроллеры всегда наблюдают ready=true.
func SessionProvider(api *backend.Client) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			st := session.NewStore()

			var refresh *http.Cookie
			if ck, err := r.Cookie(api.CookieName()); err == nil {
				refresh = ck
			}

			creds := backend.NewCredentials(st, refresh, func(ck *http.Cookie) {
				http.SetCookie(w, ck)
			})

			ctx := backend.WithCredentials(r.Context(), creds)
			ctx = session.Into(ctx, st)

			session.Bootstrap(ctx, api, st)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
