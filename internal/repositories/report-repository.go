package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"ops-dashboard/internal/dto"
	"ops-dashboard/internal/entities"
	apperrors "ops-dashboard/pkg/errors"
)

type ReportRepositoryInterface interface {
	List(ctx context.Context) ([]dto.ReportDTO, error)
	Find(ctx context.Context, id uint64) (*entities.Report, error)
	Create(ctx context.Context, report entities.Report) (uint64, error)
}

type ReportRepository struct {
	storage *pgxpool.Pool
}

func NewReportRepository(storage *pgxpool.Pool) ReportRepositoryInterface {
	return &ReportRepository{storage: storage}
}

func (r *ReportRepository) List(ctx context.Context) ([]dto.ReportDTO, error) {
	rows, err := r.storage.Query(ctx,
		`SELECT rep.id, rep.report_type, rep.period_from, rep.period_to,
		        a.id, a.fio, rep.file, rep.created_at
		 FROM reports rep
		 JOIN users a ON rep.author_id = a.id
		 ORDER BY rep.created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения списка отчётов: %w", err)
	}
	defer rows.Close()

	reports := make([]dto.ReportDTO, 0)
	for rows.Next() {
		var rep dto.ReportDTO
		var periodFrom, periodTo, createdAt time.Time
		err := rows.Scan(&rep.ID, &rep.ReportType, &periodFrom, &periodTo,
			&rep.Author.ID, &rep.Author.Fio, &rep.File, &createdAt)
		if err != nil {
			return nil, fmt.Errorf("ошибка сканирования отчёта: %w", err)
		}
		rep.PeriodFrom = periodFrom.Format("2006-01-02")
		rep.PeriodTo = periodTo.Format("2006-01-02")
		rep.CreatedAt = createdAt.Format(time.RFC3339)
		reports = append(reports, rep)
	}
	return reports, rows.Err()
}

func (r *ReportRepository) Find(ctx context.Context, id uint64) (*entities.Report, error) {
	var rep entities.Report
	err := r.storage.QueryRow(ctx,
		`SELECT id, report_type, period_from, period_to, author_id, file, created_at
		 FROM reports WHERE id = $1`,
		id,
	).Scan(&rep.ID, &rep.ReportType, &rep.PeriodFrom, &rep.PeriodTo, &rep.AuthorID, &rep.File, &rep.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("ошибка поиска отчёта: %w", err)
	}
	return &rep, nil
}

func (r *ReportRepository) Create(ctx context.Context, report entities.Report) (uint64, error) {
	var id uint64
	err := r.storage.QueryRow(ctx,
		`INSERT INTO reports (report_type, period_from, period_to, author_id, file)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		report.ReportType, report.PeriodFrom, report.PeriodTo, report.AuthorID, report.File,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("ошибка создания отчёта: %w", err)
	}
	return id, nil
}
