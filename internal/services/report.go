package services

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"ops-dashboard/internal/docgen"
	"ops-dashboard/internal/dto"
	"ops-dashboard/internal/entities"
	"ops-dashboard/internal/repositories"
	apperrors "ops-dashboard/pkg/errors"
)

type ReportServiceInterface interface {
	List(ctx context.Context) ([]dto.ReportDTO, error)
	Create(ctx context.Context, authorID uint64, data dto.CreateReportDTO) (uint64, error)
	// Download возвращает абсолютный путь файла и имя для выдачи клиенту.
	Download(ctx context.Context, id uint64) (fullPath string, fileName string, err error)
}

type ReportService struct {
	reportRepo repositories.ReportRepositoryInterface
	generator  *docgen.Generator
	logger     *zap.Logger
}

func NewReportService(
	reportRepo repositories.ReportRepositoryInterface,
	generator *docgen.Generator,
	logger *zap.Logger,
) ReportServiceInterface {
	return &ReportService{
		reportRepo: reportRepo,
		generator:  generator,
		logger:     logger,
	}
}

func (s *ReportService) List(ctx context.Context) ([]dto.ReportDTO, error) {
	return s.reportRepo.List(ctx)
}

func (s *ReportService) Create(ctx context.Context, authorID uint64, data dto.CreateReportDTO) (uint64, error) {
	periodFrom, err := time.Parse("2006-01-02", data.PeriodFrom)
	if err != nil {
		return 0, apperrors.ErrBadRequest
	}
	periodTo, err := time.Parse("2006-01-02", data.PeriodTo)
	if err != nil {
		return 0, apperrors.ErrBadRequest
	}

	display := entities.ReportTypeDisplay[data.ReportType]
	content := docgen.Content{
		Heading: "Отчёт по сервисам",
		Paragraphs: []string{
			fmt.Sprintf("Тип: %s", display),
			fmt.Sprintf("Период: %s – %s", data.PeriodFrom, data.PeriodTo),
		},
	}

	baseName := fmt.Sprintf("report_%s_%s_%s", data.ReportType, data.PeriodFrom, data.PeriodTo)
	ref, err := s.generator.Generate("reports", baseName, content)
	if err != nil {
		return 0, fmt.Errorf("ошибка генерации файла отчёта: %w", err)
	}

	id, err := s.reportRepo.Create(ctx, entities.Report{
		ReportType: data.ReportType,
		PeriodFrom: periodFrom,
		PeriodTo:   periodTo,
		AuthorID:   authorID,
		File:       ref,
	})
	if err != nil {
		return 0, err
	}

	s.logger.Info("сформирован отчёт",
		zap.Uint64("reportID", id), zap.String("file", ref))
	return id, nil
}

func (s *ReportService) Download(ctx context.Context, id uint64) (string, string, error) {
	report, err := s.reportRepo.Find(ctx, id)
	if err != nil {
		return "", "", err
	}
	// Запись без файла или с удалённым файлом отдаётся как 404.
	if report.File == "" || !s.generator.Exists(report.File) {
		return "", "", apperrors.ErrNotFound
	}
	return s.generator.FullPath(report.File), filepath.Base(report.File), nil
}
