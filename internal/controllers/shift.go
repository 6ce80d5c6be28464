package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"ops-dashboard/internal/services"
	"ops-dashboard/pkg/utils"
)

type ShiftController struct {
	shiftService services.ShiftServiceInterface
	logger       *zap.Logger
}

func NewShiftController(shiftService services.ShiftServiceInterface, logger *zap.Logger) *ShiftController {
	return &ShiftController{shiftService: shiftService, logger: logger}
}

func (ctrl *ShiftController) List(c echo.Context) error {
	shifts, err := ctrl.shiftService.List(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, shifts, "График смен", http.StatusOK, uint64(len(shifts)))
}
