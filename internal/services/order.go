package services

import (
	"context"

	"github.com/aarondl/null/v8"
	"go.uber.org/zap"

	"ops-dashboard/internal/authz"
	"ops-dashboard/internal/dto"
	"ops-dashboard/internal/entities"
	"ops-dashboard/internal/repositories"
	apperrors "ops-dashboard/pkg/errors"
	"ops-dashboard/pkg/utils"
)

// Верхняя граница плоской выдачи /api/queue.
const orderAPILimit = 200

type OrderServiceInterface interface {
	List(ctx context.Context, filter dto.OrderFilter) ([]dto.OrderDTO, *utils.Pagination, error)
	ListOwn(ctx context.Context, initiatorID uint64) ([]dto.OrderDTO, error)
	ListAPI(ctx context.Context, status, priority string) ([]dto.OrderAPIItemDTO, error)
	Find(ctx context.Context, id uint64, actorID uint64, role authz.Role) (*dto.OrderDTO, error)
	Create(ctx context.Context, initiatorID uint64, data dto.CreateOrderDTO) (*dto.OrderDTO, error)
	Update(ctx context.Context, id uint64, data dto.UpdateOrderDTO) (*dto.OrderDTO, error)
	Choices(ctx context.Context) (*dto.OrderChoicesDTO, error)
}

type OrderService struct {
	orderRepo repositories.OrderRepositoryInterface
	userRepo  repositories.UserRepositoryInterface
	logger    *zap.Logger
}

func NewOrderService(
	orderRepo repositories.OrderRepositoryInterface,
	userRepo repositories.UserRepositoryInterface,
	logger *zap.Logger,
) OrderServiceInterface {
	return &OrderService{
		orderRepo: orderRepo,
		userRepo:  userRepo,
		logger:    logger,
	}
}

func (s *OrderService) List(ctx context.Context, filter dto.OrderFilter) ([]dto.OrderDTO, *utils.Pagination, error) {
	total, err := s.orderRepo.Count(ctx, filter.Status, filter.Priority)
	if err != nil {
		return nil, nil, err
	}

	page, offset, totalPages := utils.ClampPage(filter.Page, total, utils.PageSize)
	orders, err := s.orderRepo.List(ctx, filter.Status, filter.Priority, utils.PageSize, offset)
	if err != nil {
		return nil, nil, err
	}

	pagination := &utils.Pagination{
		TotalCount: total,
		TotalPages: totalPages,
		Page:       page,
		Limit:      utils.PageSize,
	}
	return orders, pagination, nil
}

func (s *OrderService) ListOwn(ctx context.Context, initiatorID uint64) ([]dto.OrderDTO, error) {
	return s.orderRepo.ListByInitiator(ctx, initiatorID)
}

func (s *OrderService) ListAPI(ctx context.Context, status, priority string) ([]dto.OrderAPIItemDTO, error) {
	return s.orderRepo.ListAPI(ctx, status, priority, orderAPILimit)
}

func (s *OrderService) Find(ctx context.Context, id uint64, actorID uint64, role authz.Role) (*dto.OrderDTO, error) {
	order, err := s.orderRepo.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	// Строковая проверка после ролевой: клиент видит только свои заявки.
	if !authz.OwnsOrder(role, actorID, order.Initiator.ID) {
		s.logger.Warn("клиент запросил чужую заявку",
			zap.Uint64("actorID", actorID), zap.Uint64("orderID", id))
		return nil, apperrors.ErrForbidden
	}
	return order, nil
}

func (s *OrderService) Create(ctx context.Context, initiatorID uint64, data dto.CreateOrderDTO) (*dto.OrderDTO, error) {
	order := entities.Order{
		Title:       data.Title,
		Description: data.Description,
		// Инициатор всегда текущий принципал; присланным в запросе данным
		// здесь доверять нельзя.
		InitiatorID: initiatorID,
		Status:      data.Status,
		Priority:    data.Priority,
	}
	if order.Status == "" {
		order.Status = entities.OrderStatusNew
	}
	if order.Priority == "" {
		order.Priority = entities.OrderPriorityMedium
	}
	if data.ExecutorID != 0 {
		order.ExecutorID = null.Uint64From(data.ExecutorID)
	}

	id, err := s.orderRepo.Create(ctx, order)
	if err != nil {
		return nil, err
	}
	return s.orderRepo.Find(ctx, id)
}

func (s *OrderService) Update(ctx context.Context, id uint64, data dto.UpdateOrderDTO) (*dto.OrderDTO, error) {
	if err := s.orderRepo.Update(ctx, id, data); err != nil {
		return nil, err
	}
	return s.orderRepo.Find(ctx, id)
}

func (s *OrderService) Choices(ctx context.Context) (*dto.OrderChoicesDTO, error) {
	executors, err := s.userRepo.ListShort(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.OrderChoicesDTO{
		Statuses: []string{
			entities.OrderStatusNew,
			entities.OrderStatusInProgress,
			entities.OrderStatusDone,
		},
		Priorities: []string{
			entities.OrderPriorityLow,
			entities.OrderPriorityMedium,
			entities.OrderPriorityHigh,
		},
		Executors: executors,
	}, nil
}
