package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"ops-dashboard/internal/services"
	"ops-dashboard/pkg/utils"
)

type KPIController struct {
	kpiService services.KPIServiceInterface
	logger     *zap.Logger
}

func NewKPIController(kpiService services.KPIServiceInterface, logger *zap.Logger) *KPIController {
	return &KPIController{kpiService: kpiService, logger: logger}
}

// Dashboard — записи за последние 30 дней и ряды по метрикам.
func (ctrl *KPIController) Dashboard(c echo.Context) error {
	dashboard, err := ctrl.kpiService.Dashboard(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, dashboard, "Панель KPI", http.StatusOK)
}

// API — плоская выдача KPI-записей для интеграций.
func (ctrl *KPIController) API(c echo.Context) error {
	items, err := ctrl.kpiService.ListAPI(c.Request().Context(), c.QueryParam("metric"))
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return c.JSON(http.StatusOK, echo.Map{"results": items})
}
