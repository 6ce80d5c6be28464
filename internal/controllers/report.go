package controllers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"ops-dashboard/internal/dto"
	"ops-dashboard/internal/services"
	apperrors "ops-dashboard/pkg/errors"
	"ops-dashboard/pkg/utils"
)

type ReportController struct {
	reportService services.ReportServiceInterface
	logger        *zap.Logger
}

func NewReportController(reportService services.ReportServiceInterface, logger *zap.Logger) *ReportController {
	return &ReportController{reportService: reportService, logger: logger}
}

func (ctrl *ReportController) errorResponse(c echo.Context, err error) error {
	return utils.ErrorResponse(c, err, ctrl.logger)
}

func (ctrl *ReportController) List(c echo.Context) error {
	reports, err := ctrl.reportService.List(c.Request().Context())
	if err != nil {
		return ctrl.errorResponse(c, err)
	}
	return utils.SuccessResponse(c, reports, "Панель отчётов", http.StatusOK, uint64(len(reports)))
}

func (ctrl *ReportController) Create(c echo.Context) error {
	var payload dto.CreateReportDTO

	if err := c.Bind(&payload); err != nil {
		ctrl.logger.Error("Create: ошибка привязки данных отчёта", zap.Error(err))
		return ctrl.errorResponse(c, apperrors.ErrBadRequest)
	}
	if err := c.Validate(&payload); err != nil {
		return ctrl.errorResponse(c, err)
	}

	userID, err := utils.GetUserIDFromCtx(c.Request().Context())
	if err != nil {
		return ctrl.errorResponse(c, err)
	}

	id, err := ctrl.reportService.Create(c.Request().Context(), userID, payload)
	if err != nil {
		return ctrl.errorResponse(c, err)
	}
	return utils.SuccessResponse(c, echo.Map{"id": id}, "Отчёт сформирован", http.StatusCreated)
}

func (ctrl *ReportController) Download(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return ctrl.errorResponse(c, apperrors.ErrBadRequest)
	}

	fullPath, fileName, err := ctrl.reportService.Download(c.Request().Context(), id)
	if err != nil {
		return ctrl.errorResponse(c, err)
	}
	return c.Attachment(fullPath, fileName)
}
