package session

import (
	"context"
	"log/slog"

	"github.com/pribylovaa/auth-frontend/internal/backend"
	"github.com/pribylovaa/auth-frontend/pkg/log"
)

// Bootstrap — однократная попытка восстановления сессии на загрузку страницы.
// Шаги строго последовательны:
//  1. refresh: обмен refresh-куки на новый access-токен;
//  2. me: роли и email под новым токеном;
//  3. ready — всегда, после успеха или провала (deferred).
//
// Провал любого шага не фатален: частичное состояние сбрасывается целиком
// (Logout), приложение деградирует до анонимной сессии. Никаких ретраев;
// пользователь увидит лишь редирект на /login от последующего роутинга.
func Bootstrap(ctx context.Context, api *backend.Client, st *Store) {
	defer st.SetReady()

	tok, err := api.Refresh(ctx)
	if err != nil {
		log.From(ctx).Debug("session_bootstrap_anonymous", slog.String("err", err.Error()))
		st.Logout()
		return
	}
	st.SetToken(tok.AccessToken)

	me, err := api.Me(ctx)
	if err != nil {
		log.From(ctx).Debug("session_bootstrap_identity_failed", slog.String("err", err.Error()))
		st.Logout()
		return
	}

	st.SetRoles(me.Roles)
	st.SetEmail(me.Email)
}
