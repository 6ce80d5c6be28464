package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"ops-dashboard/internal/dto"
	"ops-dashboard/internal/entities"
	apperrors "ops-dashboard/pkg/errors"
)

type UserRepositoryInterface interface {
	FindByID(ctx context.Context, id uint64) (*entities.User, error)
	FindByLogin(ctx context.Context, login string) (*entities.User, error)
	ListShort(ctx context.Context) ([]dto.ShortUserDTO, error)
	// CreateUser заводит принципала и его профиль одной транзакцией и
	// возвращает созданный профиль — явный шаг вместо реактивного слушателя.
	CreateUser(ctx context.Context, user entities.User, role string) (*entities.Profile, error)
}

type UserRepository struct {
	storage *pgxpool.Pool
}

func NewUserRepository(storage *pgxpool.Pool) UserRepositoryInterface {
	return &UserRepository{storage: storage}
}

const userSelect = `
	SELECT u.id, u.login, u.password, u.fio, u.is_staff, u.is_superuser, u.created_at,
	       p.id, p.role
	FROM users u
	LEFT JOIN profiles p ON p.user_id = u.id`

func (r *UserRepository) scanUser(row pgx.Row) (*entities.User, error) {
	var user entities.User
	var profileID sql.NullInt64
	var profileRole sql.NullString

	err := row.Scan(
		&user.ID, &user.Login, &user.Password, &user.Fio,
		&user.IsStaff, &user.IsSuperuser, &user.CreatedAt,
		&profileID, &profileRole,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("ошибка сканирования пользователя: %w", err)
	}

	if profileID.Valid {
		user.Profile = &entities.Profile{
			ID:     uint64(profileID.Int64),
			UserID: user.ID,
			Role:   profileRole.String,
		}
	}
	return &user, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uint64) (*entities.User, error) {
	return r.scanUser(r.storage.QueryRow(ctx, userSelect+` WHERE u.id = $1`, id))
}

func (r *UserRepository) FindByLogin(ctx context.Context, login string) (*entities.User, error) {
	return r.scanUser(r.storage.QueryRow(ctx, userSelect+` WHERE u.login = $1`, login))
}

func (r *UserRepository) ListShort(ctx context.Context) ([]dto.ShortUserDTO, error) {
	rows, err := r.storage.Query(ctx, `SELECT id, fio FROM users ORDER BY fio`)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения списка пользователей: %w", err)
	}
	defer rows.Close()

	users := make([]dto.ShortUserDTO, 0)
	for rows.Next() {
		var u dto.ShortUserDTO
		if err := rows.Scan(&u.ID, &u.Fio); err != nil {
			return nil, fmt.Errorf("ошибка сканирования пользователя в списке: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *UserRepository) CreateUser(ctx context.Context, user entities.User, role string) (*entities.Profile, error) {
	tx, err := r.storage.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("ошибка начала транзакции: %w", err)
	}
	defer tx.Rollback(ctx)

	var userID uint64
	err = tx.QueryRow(ctx,
		`INSERT INTO users (login, password, fio, is_staff, is_superuser)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (login) DO UPDATE SET is_staff = EXCLUDED.is_staff, is_superuser = EXCLUDED.is_superuser
		 RETURNING id`,
		user.Login, user.Password, user.Fio, user.IsStaff, user.IsSuperuser,
	).Scan(&userID)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания пользователя: %w", err)
	}

	profile := &entities.Profile{UserID: userID, Role: role}
	err = tx.QueryRow(ctx,
		`INSERT INTO profiles (user_id, role) VALUES ($1, $2)
		 ON CONFLICT (user_id) DO UPDATE SET role = EXCLUDED.role
		 RETURNING id`,
		userID, role,
	).Scan(&profile.ID)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания профиля: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("ошибка коммита транзакции: %w", err)
	}
	return profile, nil
}
