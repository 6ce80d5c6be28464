package authz

import "ops-dashboard/internal/entities"

// Role — тег роли, управляющий видимостью операций.
type Role string

const (
	RoleAnon    Role = "anon"
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleClient  Role = "client"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleClient:
		return true
	}
	return false
}

// ResolveRole вычисляет роль принципала.
// Цепочка запасных вариантов нужна потому, что профиль создаётся вместе с
// пользователем только в штатном пути регистрации; пользователи, заведённые
// в обход него, профиля могут не иметь. Разрешение всегда завершается тегом.
func ResolveRole(user *entities.User) Role {
	if user == nil {
		return RoleAnon
	}
	if user.Profile != nil && Role(user.Profile.Role).Valid() {
		return Role(user.Profile.Role)
	}
	if user.IsSuperuser {
		return RoleAdmin
	}
	if user.IsStaff {
		return RoleManager
	}
	return RoleClient
}
