package seeders

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"ops-dashboard/internal/authz"
	"ops-dashboard/internal/entities"
	"ops-dashboard/internal/repositories"
)

// SeedDemoUsers заводит демо-пользователей admin / manager / client.
// Повторный запуск безопасен: логин уникален, роль в профиле обновляется.
func SeedDemoUsers(db *pgxpool.Pool) error {
	ctx := context.Background()
	userRepo := repositories.NewUserRepository(db)

	demo := []struct {
		login    string
		password string
		fio      string
		role     authz.Role
	}{
		{"admin", "admin123", "Администратор системы", authz.RoleAdmin},
		{"manager", "manager123", "Дежурный менеджер", authz.RoleManager},
		{"client", "client123", "Клиент портала", authz.RoleClient},
	}

	for _, d := range demo {
		hashed, err := bcrypt.GenerateFromPassword([]byte(d.password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("не удалось захешировать пароль %q: %w", d.login, err)
		}

		user := entities.User{
			Login:       d.login,
			Password:    string(hashed),
			Fio:         d.fio,
			IsStaff:     d.role == authz.RoleAdmin || d.role == authz.RoleManager,
			IsSuperuser: d.role == authz.RoleAdmin,
		}
		if _, err := userRepo.CreateUser(ctx, user, string(d.role)); err != nil {
			return fmt.Errorf("не удалось создать пользователя %q: %w", d.login, err)
		}
		log.Printf("  - Пользователь %s/%s готов", d.login, d.password)
	}
	return nil
}
