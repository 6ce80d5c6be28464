package services

import (
	"context"

	"go.uber.org/zap"

	"ops-dashboard/internal/dto"
	"ops-dashboard/internal/repositories"
	"ops-dashboard/pkg/utils"
)

type IncidentServiceInterface interface {
	List(ctx context.Context, page uint64) ([]dto.IncidentDTO, *utils.Pagination, error)
}

type IncidentService struct {
	incidentRepo repositories.IncidentRepositoryInterface
	logger       *zap.Logger
}

func NewIncidentService(incidentRepo repositories.IncidentRepositoryInterface, logger *zap.Logger) IncidentServiceInterface {
	return &IncidentService{incidentRepo: incidentRepo, logger: logger}
}

func (s *IncidentService) List(ctx context.Context, page uint64) ([]dto.IncidentDTO, *utils.Pagination, error) {
	total, err := s.incidentRepo.Count(ctx)
	if err != nil {
		return nil, nil, err
	}

	clamped, offset, totalPages := utils.ClampPage(page, total, utils.PageSize)
	incidents, err := s.incidentRepo.List(ctx, utils.PageSize, offset)
	if err != nil {
		return nil, nil, err
	}

	pagination := &utils.Pagination{
		TotalCount: total,
		TotalPages: totalPages,
		Page:       clamped,
		Limit:      utils.PageSize,
	}
	return incidents, pagination, nil
}
