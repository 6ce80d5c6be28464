package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"ops-dashboard/internal/services"
	"ops-dashboard/pkg/utils"
)

type IncidentController struct {
	incidentService services.IncidentServiceInterface
	logger          *zap.Logger
}

func NewIncidentController(incidentService services.IncidentServiceInterface, logger *zap.Logger) *IncidentController {
	return &IncidentController{incidentService: incidentService, logger: logger}
}

func (ctrl *IncidentController) List(c echo.Context) error {
	page := utils.ParsePage(c.QueryParams())

	incidents, pagination, err := ctrl.incidentService.List(c.Request().Context(), page)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	body := echo.Map{"incidents": incidents, "pagination": pagination}
	return utils.SuccessResponse(c, body, "Журнал инцидентов", http.StatusOK, pagination.TotalCount)
}
