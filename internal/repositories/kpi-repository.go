package repositories

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"ops-dashboard/internal/entities"
)

type KPIRepositoryInterface interface {
	Count(ctx context.Context) (uint64, error)
	ListSince(ctx context.Context, since time.Time) ([]entities.KPIRecord, error)
	ListAPI(ctx context.Context, metric string, limit uint64) ([]entities.KPIRecord, error)
	Create(ctx context.Context, record entities.KPIRecord) error
}

type KPIRepository struct {
	storage *pgxpool.Pool
}

func NewKPIRepository(storage *pgxpool.Pool) KPIRepositoryInterface {
	return &KPIRepository{storage: storage}
}

func (r *KPIRepository) Count(ctx context.Context) (uint64, error) {
	var total uint64
	if err := r.storage.QueryRow(ctx, `SELECT COUNT(*) FROM kpi_records`).Scan(&total); err != nil {
		return 0, fmt.Errorf("ошибка подсчёта KPI: %w", err)
	}
	return total, nil
}

func (r *KPIRepository) queryRecords(ctx context.Context, query string, args ...interface{}) ([]entities.KPIRecord, error) {
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения KPI: %w", err)
	}
	defer rows.Close()

	records := make([]entities.KPIRecord, 0)
	for rows.Next() {
		var rec entities.KPIRecord
		if err := rows.Scan(&rec.ID, &rec.Metric, &rec.Value, &rec.Timestamp, &rec.ServiceName); err != nil {
			return nil, fmt.Errorf("ошибка сканирования KPI-записи: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *KPIRepository) ListSince(ctx context.Context, since time.Time) ([]entities.KPIRecord, error) {
	return r.queryRecords(ctx,
		`SELECT id, metric, value, ts, service_name FROM kpi_records WHERE ts >= $1 ORDER BY ts`,
		since,
	)
}

func (r *KPIRepository) ListAPI(ctx context.Context, metric string, limit uint64) ([]entities.KPIRecord, error) {
	b := psql.Select("id", "metric", "value", "ts", "service_name").
		From("kpi_records").
		OrderBy("ts DESC").
		Limit(limit)
	if metric != "" {
		b = b.Where(sq.Eq{"metric": metric})
	}
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки API-запроса KPI: %w", err)
	}
	return r.queryRecords(ctx, query, args...)
}

func (r *KPIRepository) Create(ctx context.Context, record entities.KPIRecord) error {
	_, err := r.storage.Exec(ctx,
		`INSERT INTO kpi_records (metric, value, ts, service_name) VALUES ($1, $2, $3, $4)`,
		record.Metric, record.Value, record.Timestamp, record.ServiceName,
	)
	if err != nil {
		return fmt.Errorf("ошибка создания KPI-записи: %w", err)
	}
	return nil
}
