package middleware

import (
	"net/http"
	"strings"
)

// loginPath — точка входа для неаутентифицированных запросов.
const loginPath = "/login"

// protectedPrefixes — защищённые разделы; сравнение по префиксу пути.
var protectedPrefixes = []string{"/dashboard", "/admin"}

// Guard — edge-проверка до рендера страницы: запрос к защищённому пути без
// refresh-куки редиректится на /login. Проверка сознательно грубая — наличие
// куки не гарантирует живую сессию; настоящую авторизацию подтверждают
// Bootstrap и ролевые проверки самих страниц. Двухслойность нужна, чтобы не
// ходить в бэкенд на каждый запрос ради edge-решения.
func Guard(cookieName string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !isProtected(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			if _, err := r.Cookie(cookieName); err != nil {
				http.Redirect(w, r, loginPath, http.StatusFound)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func isProtected(path string) bool {
	for _, p := range protectedPrefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}

	return false
}
