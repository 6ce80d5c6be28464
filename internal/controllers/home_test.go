package controllers

import (
	"context"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"ops-dashboard/internal/authz"
	"ops-dashboard/internal/dto"
)

type fakeDashboardService struct{}

func (f *fakeDashboardService) GetSummary(ctx context.Context) (*dto.HomeSummaryDTO, error) {
	return &dto.HomeSummaryDTO{OpenOrders: 2, OpenIncidents: 1, KPICount: 14}, nil
}

func TestHomeRedirectsClient(t *testing.T) {
	ctrl := NewHomeController(&fakeDashboardService{}, &fakeOrderService{}, zap.NewNop())

	c, rec := newOrderTestContext(t, http.MethodGet, "/", "", 3, authz.RoleClient)

	require.NoError(t, ctrl.Home(c))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/client/", rec.Header().Get(echo.HeaderLocation))
}

func TestHomeSummaryForStaff(t *testing.T) {
	ctrl := NewHomeController(&fakeDashboardService{}, &fakeOrderService{}, zap.NewNop())

	c, rec := newOrderTestContext(t, http.MethodGet, "/", "", 1, authz.RoleManager)

	require.NoError(t, ctrl.Home(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"open_orders":2`)
}

func TestClientHomeRedirectsStaff(t *testing.T) {
	ctrl := NewHomeController(&fakeDashboardService{}, &fakeOrderService{}, zap.NewNop())

	c, rec := newOrderTestContext(t, http.MethodGet, "/client/", "", 1, authz.RoleAdmin)

	require.NoError(t, ctrl.ClientHome(c))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get(echo.HeaderLocation))
}

func TestClientHomeListsOwnOrders(t *testing.T) {
	ctrl := NewHomeController(&fakeDashboardService{}, &fakeOrderService{}, zap.NewNop())

	c, rec := newOrderTestContext(t, http.MethodGet, "/client/", "", 3, authz.RoleClient)

	require.NoError(t, ctrl.ClientHome(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
