package middleware

import (
	"context"
	"net/http"
	"time"
)

// Timeout ограничивает обработку страницы одним дедлайном на весь конвейер:
// Bootstrap и вызовы бэкенда из хендлера наследуют его через контекст
// (собственного таймаута у API-клиента нет). Дедлайн, выставленный выше по
// стеку, не перекрывается; d<=0 отключает мидлвар целиком.
func Timeout(d time.Duration) Middleware {
	return func(next http.Handler) http.Handler {
		if d <= 0 {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := r.Context().Deadline(); ok {
				next.ServeHTTP(w, r)
				return
			}

			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
