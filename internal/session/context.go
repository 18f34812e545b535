package session

import "context"

type ctxKey struct{}

// Into кладёт Store в контекст запроса (делает провайдер сессии).
func Into(ctx context.Context, st *Store) context.Context {
	if st == nil {
		return ctx
	}

	return context.WithValue(ctx, ctxKey{}, st)
}

// From достаёт Store из контекста. Если провайдер не отработал,
// возвращает завершённую разлогиненную сессию — контроллеры не обязаны
// проверять nil.
func From(ctx context.Context) *Store {
	if v := ctx.Value(ctxKey{}); v != nil {
		if st, ok := v.(*Store); ok && st != nil {
			return st
		}
	}

	st := NewStore()
	st.Logout()
	return st
}
