// log — прокладка request-scoped логгера через context.
// Хендлеры и клиент бэкенда достают логгер через From и получают
// записи, уже обогащённые request_id и прочими атрибутами запроса.
package log

import (
	"context"
	"log/slog"
)

type ctxKey struct{}

// Into кладёт логгер в контекст. Нулевой логгер не кладём,
// чтобы From всегда возвращал рабочий экземпляр.
func Into(ctx context.Context, l *slog.Logger) context.Context {
	if l == nil {
		return ctx
	}

	return context.WithValue(ctx, ctxKey{}, l)
}

// From достаёт логгер из контекста (или возвращает slog.Default()).
func From(ctx context.Context) *slog.Logger {
	if v := ctx.Value(ctxKey{}); v != nil {
		if l, ok := v.(*slog.Logger); ok && l != nil {
			return l
		}
	}

	return slog.Default()
}
