package services

import (
	"context"

	"go.uber.org/zap"

	"ops-dashboard/internal/dto"
	"ops-dashboard/internal/repositories"
)

type ShiftServiceInterface interface {
	List(ctx context.Context) ([]dto.ShiftDTO, error)
}

type ShiftService struct {
	shiftRepo repositories.ShiftRepositoryInterface
	logger    *zap.Logger
}

func NewShiftService(shiftRepo repositories.ShiftRepositoryInterface, logger *zap.Logger) ShiftServiceInterface {
	return &ShiftService{shiftRepo: shiftRepo, logger: logger}
}

func (s *ShiftService) List(ctx context.Context) ([]dto.ShiftDTO, error) {
	return s.shiftRepo.List(ctx)
}
