package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"ops-dashboard/internal/dto"
	"ops-dashboard/internal/repositories"
)

// Верхняя граница плоской выдачи /api/kpi.
const kpiAPILimit = 500

type KPIServiceInterface interface {
	Dashboard(ctx context.Context) (*dto.KPIDashboardDTO, error)
	ListAPI(ctx context.Context, metric string) ([]dto.KPIRecordDTO, error)
}

type KPIService struct {
	kpiRepo repositories.KPIRepositoryInterface
	logger  *zap.Logger
}

func NewKPIService(kpiRepo repositories.KPIRepositoryInterface, logger *zap.Logger) KPIServiceInterface {
	return &KPIService{kpiRepo: kpiRepo, logger: logger}
}

func (s *KPIService) Dashboard(ctx context.Context) (*dto.KPIDashboardDTO, error) {
	since := time.Now().AddDate(0, 0, -30)
	records, err := s.kpiRepo.ListSince(ctx, since)
	if err != nil {
		return nil, err
	}

	result := &dto.KPIDashboardDTO{
		Records: make([]dto.KPIRecordDTO, 0, len(records)),
		Series:  make(map[string][]dto.KPIPointDTO),
	}
	for _, rec := range records {
		ts := rec.Timestamp.Format(time.RFC3339)
		result.Records = append(result.Records, dto.KPIRecordDTO{
			Metric:      rec.Metric,
			Value:       rec.Value,
			Timestamp:   ts,
			ServiceName: rec.ServiceName,
		})
		result.Series[rec.Metric] = append(result.Series[rec.Metric], dto.KPIPointDTO{
			Timestamp: ts,
			Value:     rec.Value,
		})
	}
	return result, nil
}

func (s *KPIService) ListAPI(ctx context.Context, metric string) ([]dto.KPIRecordDTO, error) {
	records, err := s.kpiRepo.ListAPI(ctx, metric, kpiAPILimit)
	if err != nil {
		return nil, err
	}

	items := make([]dto.KPIRecordDTO, 0, len(records))
	for _, rec := range records {
		items = append(items, dto.KPIRecordDTO{
			Metric:      rec.Metric,
			Value:       rec.Value,
			Timestamp:   rec.Timestamp.Format(time.RFC3339),
			ServiceName: rec.ServiceName,
		})
	}
	return items, nil
}
