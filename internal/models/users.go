package models

// User — запись списка /admin/users. Копия на клиенте transient и может
// устаревать; после подтверждённой мутации обновляется оптимистически.
type User struct {
	ID       string   `json:"id"`
	Email    string   `json:"email"`
	IsActive bool     `json:"is_active"`
	Roles    []string `json:"roles"`
}

// HasRole — проверка вхождения роли.
func (u User) HasRole(role string) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}

	return false
}
