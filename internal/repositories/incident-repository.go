package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"ops-dashboard/internal/dto"
	"ops-dashboard/internal/entities"
)

// Закрытые инциденты в исходных данных помечены свободным текстом.
const incidentClosedStatus = "Закрыт"

type IncidentRepositoryInterface interface {
	Count(ctx context.Context) (uint64, error)
	CountOpen(ctx context.Context) (uint64, error)
	List(ctx context.Context, limit, offset uint64) ([]dto.IncidentDTO, error)
	Create(ctx context.Context, incident entities.Incident) error
}

type IncidentRepository struct {
	storage *pgxpool.Pool
}

func NewIncidentRepository(storage *pgxpool.Pool) IncidentRepositoryInterface {
	return &IncidentRepository{storage: storage}
}

func (r *IncidentRepository) Count(ctx context.Context) (uint64, error) {
	var total uint64
	if err := r.storage.QueryRow(ctx, `SELECT COUNT(*) FROM incidents`).Scan(&total); err != nil {
		return 0, fmt.Errorf("ошибка подсчёта инцидентов: %w", err)
	}
	return total, nil
}

func (r *IncidentRepository) CountOpen(ctx context.Context) (uint64, error) {
	var total uint64
	err := r.storage.QueryRow(ctx,
		`SELECT COUNT(*) FROM incidents WHERE status <> $1`, incidentClosedStatus,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("ошибка подсчёта открытых инцидентов: %w", err)
	}
	return total, nil
}

func (r *IncidentRepository) List(ctx context.Context, limit, offset uint64) ([]dto.IncidentDTO, error) {
	rows, err := r.storage.Query(ctx,
		`SELECT id, title, description, status, criticality, detected_at, closed_at, order_id
		 FROM incidents
		 ORDER BY detected_at DESC
		 LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения списка инцидентов: %w", err)
	}
	defer rows.Close()

	incidents := make([]dto.IncidentDTO, 0)
	for rows.Next() {
		var inc dto.IncidentDTO
		var detectedAt time.Time
		var closedAt sql.NullTime
		var orderID sql.NullInt64

		err := rows.Scan(&inc.ID, &inc.Title, &inc.Description, &inc.Status, &inc.Criticality,
			&detectedAt, &closedAt, &orderID)
		if err != nil {
			return nil, fmt.Errorf("ошибка сканирования инцидента: %w", err)
		}

		inc.DetectedAt = detectedAt.Format(time.RFC3339)
		if closedAt.Valid {
			inc.ClosedAt = closedAt.Time.Format(time.RFC3339)
		}
		if orderID.Valid {
			inc.OrderID = uint64(orderID.Int64)
		}
		incidents = append(incidents, inc)
	}
	return incidents, rows.Err()
}

func (r *IncidentRepository) Create(ctx context.Context, incident entities.Incident) error {
	_, err := r.storage.Exec(ctx,
		`INSERT INTO incidents (title, description, status, criticality, detected_at, closed_at, order_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		incident.Title, incident.Description, incident.Status, incident.Criticality,
		incident.DetectedAt, incident.ClosedAt, incident.OrderID,
	)
	if err != nil {
		return fmt.Errorf("ошибка создания инцидента: %w", err)
	}
	return nil
}
