package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"ops-dashboard/internal/authz"
	"ops-dashboard/internal/dto"
	"ops-dashboard/internal/entities"
	apperrors "ops-dashboard/pkg/errors"
	"ops-dashboard/pkg/utils"
)

func TestOrderServiceCreateForcesInitiator(t *testing.T) {
	orderRepo := &fakeOrderRepo{}
	svc := NewOrderService(orderRepo, newFakeUserRepo(), zap.NewNop())

	_, err := svc.Create(context.Background(), 42, dto.CreateOrderDTO{
		Title: "Недоступен портал клиентов",
	})
	require.NoError(t, err)
	require.Len(t, orderRepo.created, 1)

	created := orderRepo.created[0]
	// Инициатор берётся из контекста запроса, а не из полей формы.
	assert.Equal(t, uint64(42), created.InitiatorID)
	assert.Equal(t, entities.OrderStatusNew, created.Status)
	assert.Equal(t, entities.OrderPriorityMedium, created.Priority)
	assert.False(t, created.ExecutorID.Valid)
}

func TestOrderServiceCreateKeepsExplicitFields(t *testing.T) {
	orderRepo := &fakeOrderRepo{}
	svc := NewOrderService(orderRepo, newFakeUserRepo(), zap.NewNop())

	_, err := svc.Create(context.Background(), 42, dto.CreateOrderDTO{
		Title:      "Уточнение прав доступа",
		Status:     entities.OrderStatusDone,
		Priority:   entities.OrderPriorityLow,
		ExecutorID: 7,
	})
	require.NoError(t, err)

	created := orderRepo.created[0]
	assert.Equal(t, entities.OrderStatusDone, created.Status)
	assert.Equal(t, entities.OrderPriorityLow, created.Priority)
	assert.Equal(t, uint64(7), created.ExecutorID.Uint64)
}

func TestOrderServiceFindOwnership(t *testing.T) {
	orderRepo := &fakeOrderRepo{
		findResult: &dto.OrderDTO{ID: 1, Initiator: dto.ShortUserDTO{ID: 5}},
	}
	svc := NewOrderService(orderRepo, newFakeUserRepo(), zap.NewNop())
	ctx := context.Background()

	// Клиент-инициатор видит заявку.
	order, err := svc.Find(ctx, 1, 5, authz.RoleClient)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), order.ID)

	// Чужой клиент получает отказ.
	_, err = svc.Find(ctx, 1, 6, authz.RoleClient)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	// Менеджер видит любую заявку.
	_, err = svc.Find(ctx, 1, 6, authz.RoleManager)
	assert.NoError(t, err)
}

func TestOrderServiceFindNotFound(t *testing.T) {
	svc := NewOrderService(&fakeOrderRepo{}, newFakeUserRepo(), zap.NewNop())

	_, err := svc.Find(context.Background(), 99, 1, authz.RoleAdmin)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestOrderServiceListClampsPage(t *testing.T) {
	orderRepo := &fakeOrderRepo{total: 45}
	svc := NewOrderService(orderRepo, newFakeUserRepo(), zap.NewNop())

	_, pagination, err := svc.List(context.Background(), dto.OrderFilter{Page: 99})
	require.NoError(t, err)

	// Запрос за последней страницей возвращает последнюю.
	assert.Equal(t, uint64(3), pagination.Page)
	assert.Equal(t, uint64(3), pagination.TotalPages)
	assert.Equal(t, uint64(45), pagination.TotalCount)
	assert.Equal(t, uint64(utils.PageSize), orderRepo.lastLimit)
	assert.Equal(t, uint64(40), orderRepo.lastOffset)
}

func TestOrderServiceListAPIBound(t *testing.T) {
	orderRepo := &fakeOrderRepo{}
	svc := NewOrderService(orderRepo, newFakeUserRepo(), zap.NewNop())

	_, err := svc.ListAPI(context.Background(), "", "")
	require.NoError(t, err)
	assert.Equal(t, uint64(200), orderRepo.lastLimit)
}
