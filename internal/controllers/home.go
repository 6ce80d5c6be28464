package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"ops-dashboard/internal/authz"
	"ops-dashboard/internal/services"
	"ops-dashboard/pkg/utils"
)

type HomeController struct {
	dashboardService services.DashboardServiceInterface
	orderService     services.OrderServiceInterface
	logger           *zap.Logger
}

func NewHomeController(
	dashboardService services.DashboardServiceInterface,
	orderService services.OrderServiceInterface,
	logger *zap.Logger,
) *HomeController {
	return &HomeController{
		dashboardService: dashboardService,
		orderService:     orderService,
		logger:           logger,
	}
}

// Home — сводка главной панели. Клиент перенаправляется на свой кабинет.
func (ctrl *HomeController) Home(c echo.Context) error {
	role, err := utils.GetRoleFromCtx(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	if role == authz.RoleClient {
		return c.Redirect(http.StatusFound, "/client/")
	}

	summary, err := ctrl.dashboardService.GetSummary(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, summary, "Сводка панели", http.StatusOK)
}

// ClientHome — кабинет клиента со списком его заявок. Не-клиенты
// перенаправляются на общую панель.
func (ctrl *HomeController) ClientHome(c echo.Context) error {
	ctx := c.Request().Context()

	role, err := utils.GetRoleFromCtx(ctx)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	if role != authz.RoleClient {
		return c.Redirect(http.StatusFound, "/")
	}

	userID, err := utils.GetUserIDFromCtx(ctx)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	orders, err := ctrl.orderService.ListOwn(ctx, userID)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, orders, "Мои заявки", http.StatusOK, uint64(len(orders)))
}
