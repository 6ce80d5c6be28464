package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"ops-dashboard/internal/dto"
	"ops-dashboard/internal/entities"
)

type ShiftRepositoryInterface interface {
	Count(ctx context.Context) (uint64, error)
	List(ctx context.Context) ([]dto.ShiftDTO, error)
	Create(ctx context.Context, shift entities.Shift) error
}

type ShiftRepository struct {
	storage *pgxpool.Pool
}

func NewShiftRepository(storage *pgxpool.Pool) ShiftRepositoryInterface {
	return &ShiftRepository{storage: storage}
}

func (r *ShiftRepository) Count(ctx context.Context) (uint64, error) {
	var total uint64
	if err := r.storage.QueryRow(ctx, `SELECT COUNT(*) FROM shifts`).Scan(&total); err != nil {
		return 0, fmt.Errorf("ошибка подсчёта смен: %w", err)
	}
	return total, nil
}

func (r *ShiftRepository) List(ctx context.Context) ([]dto.ShiftDTO, error) {
	rows, err := r.storage.Query(ctx,
		`SELECT s.id, e.id, e.fio, s.date, s.shift, s.comment, s.phone
		 FROM shifts s
		 JOIN users e ON s.employee_id = e.id
		 ORDER BY s.date`,
	)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения графика смен: %w", err)
	}
	defer rows.Close()

	shifts := make([]dto.ShiftDTO, 0)
	for rows.Next() {
		var sh dto.ShiftDTO
		var date time.Time
		if err := rows.Scan(&sh.ID, &sh.Employee.ID, &sh.Employee.Fio, &date, &sh.Shift, &sh.Comment, &sh.Phone); err != nil {
			return nil, fmt.Errorf("ошибка сканирования смены: %w", err)
		}
		sh.Date = date.Format("2006-01-02")
		shifts = append(shifts, sh)
	}
	return shifts, rows.Err()
}

func (r *ShiftRepository) Create(ctx context.Context, shift entities.Shift) error {
	_, err := r.storage.Exec(ctx,
		`INSERT INTO shifts (employee_id, date, shift, comment, phone) VALUES ($1, $2, $3, $4, $5)`,
		shift.EmployeeID, shift.Date, shift.Shift, shift.Comment, shift.Phone,
	)
	if err != nil {
		return fmt.Errorf("ошибка создания смены: %w", err)
	}
	return nil
}
