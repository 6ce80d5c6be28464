package services

import (
	"context"

	"go.uber.org/zap"

	"ops-dashboard/internal/dto"
	"ops-dashboard/internal/repositories"
)

type DashboardServiceInterface interface {
	GetSummary(ctx context.Context) (*dto.HomeSummaryDTO, error)
}

type DashboardService struct {
	orderRepo    repositories.OrderRepositoryInterface
	incidentRepo repositories.IncidentRepositoryInterface
	kpiRepo      repositories.KPIRepositoryInterface
	logger       *zap.Logger
}

func NewDashboardService(
	orderRepo repositories.OrderRepositoryInterface,
	incidentRepo repositories.IncidentRepositoryInterface,
	kpiRepo repositories.KPIRepositoryInterface,
	logger *zap.Logger,
) DashboardServiceInterface {
	return &DashboardService{
		orderRepo:    orderRepo,
		incidentRepo: incidentRepo,
		kpiRepo:      kpiRepo,
		logger:       logger,
	}
}

func (s *DashboardService) GetSummary(ctx context.Context) (*dto.HomeSummaryDTO, error) {
	openOrders, err := s.orderRepo.CountOpen(ctx)
	if err != nil {
		return nil, err
	}
	openIncidents, err := s.incidentRepo.CountOpen(ctx)
	if err != nil {
		return nil, err
	}
	kpiCount, err := s.kpiRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.HomeSummaryDTO{
		OpenOrders:    openOrders,
		OpenIncidents: openIncidents,
		KPICount:      kpiCount,
	}, nil
}
