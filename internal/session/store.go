// session — клиентское состояние аутентификации.
//
// Store живёт ровно одну загрузку страницы: провайдер создаёт его на входе
// запроса, Bootstrap наполняет, контроллеры читают. Никакой персистентности —
// следующая загрузка начинается с пустого состояния и нового Bootstrap.
package session

import "sync"

// Snapshot — мгновенный снимок сессии.
// Ready — one-way защёлка: попытка восстановления сессии завершена
// (успехом или нет); до неё решения по ролям принимать нельзя.
type Snapshot struct {
	AccessToken string
	Roles       []string
	Email       string
	Ready       bool
}

// Authenticated — в сессии есть access-токен.
func (s Snapshot) Authenticated() bool { return s.AccessToken != "" }

// HasRole — проверка вхождения роли.
func (s Snapshot) HasRole(role string) bool {
	for _, r := range s.Roles {
		if r == role {
			return true
		}
	}

	return false
}

// Store — владелец состояния сессии. Все операции синхронные и не могут
// завершиться ошибкой; подписчики уведомляются на каждую запись.
type Store struct {
	mu   sync.Mutex
	snap Snapshot
	subs []func(Snapshot)
}

func NewStore() *Store { return &Store{} }

// SetToken заменяет access-токен.
func (s *Store) SetToken(token string) {
	s.mutate(func(sn *Snapshot) bool {
		sn.AccessToken = token
		return true
	})
}

// SetRoles заменяет набор ролей (копией — чтобы вызывающий не делил слайс со Store).
func (s *Store) SetRoles(roles []string) {
	cp := make([]string, len(roles))
	copy(cp, roles)
	s.mutate(func(sn *Snapshot) bool {
		sn.Roles = cp
		return true
	})
}

// SetEmail заменяет email.
func (s *Store) SetEmail(email string) {
	s.mutate(func(sn *Snapshot) bool {
		sn.Email = email
		return true
	})
}

// SetReady взводит защёлку готовности. Повторные вызовы — no-op:
// защёлка не сбрасывается и подписчиков повторно не дёргает. Проверка и
// запись идут под одной блокировкой, так что уведомление ровно одно даже
// при конкурентных вызовах.
func (s *Store) SetReady() {
	s.mutate(func(sn *Snapshot) bool {
		if sn.Ready {
			return false
		}
		sn.Ready = true
		return true
	})
}

// Logout сбрасывает токен/роли/email и взводит Ready: разлогин — это
// завершённое, а не «неизвестное» состояние. Идемпотентен.
func (s *Store) Logout() {
	s.mutate(func(sn *Snapshot) bool {
		*sn = Snapshot{Ready: true}
		return true
	})
}

// Snapshot возвращает копию текущего состояния.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapLocked()
}

// Token — текущий access-токен; реализует источник токена для API-клиента.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snap.AccessToken
}

// OnChange регистрирует подписчика; он получает снимок после каждой записи.
func (s *Store) OnChange(fn func(Snapshot)) {
	if fn == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// mutate применяет запись и уведомляет подписчиков вне блокировки.
// apply возвращает false, если запись отвергнута (защёлка уже взведена) —
// тогда подписчики не дёргаются.
func (s *Store) mutate(apply func(*Snapshot) bool) {
	s.mu.Lock()
	if !apply(&s.snap) {
		s.mu.Unlock()
		return
	}
	snap := s.snapLocked()
	subs := s.subs
	s.mu.Unlock()

	for _, fn := range subs {
		fn(snap)
	}
}

// snapLocked — копия снимка под блокировкой (роли копируются).
func (s *Store) snapLocked() Snapshot {
	out := s.snap
	if len(s.snap.Roles) > 0 {
		out.Roles = make([]string, len(s.snap.Roles))
		copy(out.Roles, s.snap.Roles)
	}

	return out
}
